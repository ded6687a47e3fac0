package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskAuthorWelcome is the task type name stored in Redis.
	TaskAuthorWelcome = "email:author_welcome"
)

type AuthorWelcomePayload struct {
	To         string `json:"to"`
	AuthorName string `json:"author_name"`
}

// NewAuthorWelcomeTask builds the task that emails a newly created author.
func NewAuthorWelcomeTask(to, authorName string) (*asynq.Task, error) {
	payload, err := json.Marshal(AuthorWelcomePayload{
		To:         to,
		AuthorName: authorName,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskAuthorWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
