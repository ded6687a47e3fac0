package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deppfellow/go-blog/internal/config"
	"github.com/deppfellow/go-blog/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// WelcomeSender delivers the author welcome email.
type WelcomeSender interface {
	SendAuthorWelcomeEmail(to, authorName string) error
}

// InitHandlers sets up the dependencies the task handlers need.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	j.emails = email.NewClient(cfg, logger)
}

func (j *JobService) handleAuthorWelcomeTask(ctx context.Context, t *asynq.Task) error {
	var p AuthorWelcomePayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		// Retrying cannot fix a malformed payload.
		return fmt.Errorf("failed to unmarshal author welcome payload: %v: %w", err, asynq.SkipRetry)
	}

	j.logger.Info().
		Str("type", TaskAuthorWelcome).
		Str("to", p.To).
		Msg("Processing author welcome email task")

	if err := j.emails.SendAuthorWelcomeEmail(p.To, p.AuthorName); err != nil {
		j.logger.Error().
			Str("type", TaskAuthorWelcome).
			Str("to", p.To).
			Err(err).
			Msg("Failed to send author welcome email")
		return err
	}

	j.logger.Info().
		Str("type", TaskAuthorWelcome).
		Str("to", p.To).
		Msg("Successfully sent author welcome email")

	return nil
}
