package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// handleWelcomeEmailTask delivers the subscriber welcome email.
// Returning an error makes Asynq schedule a retry.
func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal welcome email payload: %w", err)
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("processing welcome email task")

	if err := j.emailClient.SendWelcomeEmail(p.To); err != nil {
		j.logger.Error().
			Str("type", "welcome").
			Str("to", p.To).
			Err(err).
			Msg("failed to send welcome email")
		return err
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("successfully sent welcome email")

	return nil
}

// handleContactNotificationTask delivers the contact-form notification to
// the configured operator address.
func (j *JobService) handleContactNotificationTask(ctx context.Context, t *asynq.Task) error {
	var p ContactNotificationPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal contact notification payload: %w", err)
	}

	j.logger.Info().
		Str("type", "contact_notification").
		Str("from", p.Email).
		Msg("processing contact notification task")

	if err := j.emailClient.SendContactNotification(p.Name, p.Email, p.Message); err != nil {
		j.logger.Error().
			Str("type", "contact_notification").
			Str("from", p.Email).
			Err(err).
			Msg("failed to send contact notification")
		return err
	}

	j.logger.Info().
		Str("type", "contact_notification").
		Str("from", p.Email).
		Msg("successfully sent contact notification")

	return nil
}
