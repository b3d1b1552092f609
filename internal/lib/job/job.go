// Package job provides background job processing using Asynq.
//
// Email dispatch is the only job family: request handlers enqueue email
// tasks and return immediately, and the worker server delivers them with
// retries. This keeps mail strictly best-effort from the request's point of
// view — an enqueue failure is logged by the caller and never escalates.
package job

import (
	"time"

	"github.com/focusflow/backend/internal/config"
	"github.com/focusflow/backend/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// JobService holds the Asynq client (enqueue side) and server (worker side),
// along with the email client used by task handlers.
type JobService struct {
	Client *asynq.Client

	server      *asynq.Server
	emailClient *email.Client
	logger      *zerolog.Logger
}

// NewJobService creates a JobService backed by the Redis address in cfg.
//
// Queue weights give transactional email ("critical") most of the worker
// share while leaving room for lower-priority tasks.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisAddr := cfg.Redis.Address

	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr: redisAddr,
	})

	server := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	return &JobService{
		Client: client,
		server: server,
		logger: logger,
	}
}

// InitHandlers wires the dependencies task handlers need.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	j.emailClient = email.NewClient(cfg, logger)
}

// Start registers task handlers and starts the worker server in the
// background. Errors after startup surface through the server's own logs.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()

	mux.HandleFunc(TaskWelcomeEmail, j.handleWelcomeEmailTask)
	mux.HandleFunc(TaskContactNotification, j.handleContactNotificationTask)

	j.logger.Info().Msg("starting background job server")

	return j.server.Start(mux)
}

// Stop gracefully stops the worker server and closes the enqueue client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	j.Client.Close()
}

// EnqueueWelcomeEmail queues the welcome email for a new subscriber.
func (j *JobService) EnqueueWelcomeEmail(to string) error {
	task, err := NewWelcomeEmailTask(to)
	if err != nil {
		return err
	}
	_, err = j.Client.Enqueue(task, asynq.Timeout(30*time.Second))
	return err
}

// EnqueueContactNotification queues the operator notification for a new
// contact submission.
func (j *JobService) EnqueueContactNotification(name, fromEmail, message string) error {
	task, err := NewContactNotificationTask(name, fromEmail, message)
	if err != nil {
		return err
	}
	_, err = j.Client.Enqueue(task, asynq.Timeout(30*time.Second))
	return err
}
