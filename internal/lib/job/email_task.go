package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskWelcomeEmail is the task type for subscriber welcome emails.
	TaskWelcomeEmail = "email:welcome"

	// TaskContactNotification is the task type for contact-form operator
	// notifications.
	TaskContactNotification = "email:contact_notification"
)

// WelcomeEmailPayload is the JSON payload for a welcome email task.
type WelcomeEmailPayload struct {
	To string `json:"to"`
}

// ContactNotificationPayload is the JSON payload for a contact notification
// task. Name and Message may be empty; the email renderer substitutes
// placeholders.
type ContactNotificationPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// NewWelcomeEmailTask constructs the Asynq task for a welcome email.
// Delivery retries belong here, at the mail integration, not in the request
// path: up to 3 attempts, 30 seconds per attempt.
func NewWelcomeEmailTask(to string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{To: to})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWelcomeEmail,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("critical"),
		asynq.Timeout(30*time.Second),
	), nil
}

// NewContactNotificationTask constructs the Asynq task for a contact
// notification email.
func NewContactNotificationTask(name, email, message string) (*asynq.Task, error) {
	payload, err := json.Marshal(ContactNotificationPayload{
		Name:    name,
		Email:   email,
		Message: message,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskContactNotification,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
