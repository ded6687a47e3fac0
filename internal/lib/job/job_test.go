package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	to, name string
	err      error
}

func (f *fakeSender) SendAuthorWelcomeEmail(to, authorName string) error {
	f.to, f.name = to, authorName
	return f.err
}

func newTestService(sender WelcomeSender) *JobService {
	logger := zerolog.Nop()
	return &JobService{logger: &logger, emails: sender}
}

func TestNewAuthorWelcomeTask(t *testing.T) {
	task, err := NewAuthorWelcomeTask("a@x.io", "Alice")
	require.NoError(t, err)
	assert.Equal(t, TaskAuthorWelcome, task.Type())

	var p AuthorWelcomePayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	assert.Equal(t, AuthorWelcomePayload{To: "a@x.io", AuthorName: "Alice"}, p)
}

func TestHandleAuthorWelcomeTask(t *testing.T) {
	t.Run("Sends", func(t *testing.T) {
		sender := &fakeSender{}
		task, err := NewAuthorWelcomeTask("a@x.io", "Alice")
		require.NoError(t, err)

		require.NoError(t, newTestService(sender).handleAuthorWelcomeTask(context.Background(), task))
		assert.Equal(t, "a@x.io", sender.to)
		assert.Equal(t, "Alice", sender.name)
	})

	t.Run("SendFailureIsRetried", func(t *testing.T) {
		sender := &fakeSender{err: errors.New("provider down")}
		task, err := NewAuthorWelcomeTask("a@x.io", "Alice")
		require.NoError(t, err)

		err = newTestService(sender).handleAuthorWelcomeTask(context.Background(), task)
		require.Error(t, err)
		assert.False(t, errors.Is(err, asynq.SkipRetry))
	})

	t.Run("BadPayloadSkipsRetry", func(t *testing.T) {
		task := asynq.NewTask(TaskAuthorWelcome, []byte("{"))

		err := newTestService(&fakeSender{}).handleAuthorWelcomeTask(context.Background(), task)
		assert.True(t, errors.Is(err, asynq.SkipRetry))
	})
}
