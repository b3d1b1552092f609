// Package logger configures the application's logging and observability.
//
// It uses zerolog for structured logging and integrates with New Relic to
// forward logs and correlate them with distributed traces. When no New Relic
// license key is configured everything degrades to plain zerolog.
package logger

import (
	"io"
	"os"

	"github.com/focusflow/backend/internal/config"
	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// LoggerService wraps the optional New Relic application instance.
//
// A zero-value service (nil app) is valid and means "New Relic disabled";
// callers must treat GetApplication() == nil as the no-op case.
type LoggerService struct {
	app *newrelic.Application
}

// NewLoggerService initializes the New Relic application from config.
//
// With an empty license key it returns a disabled service rather than an
// error, so local development needs no APM account.
func NewLoggerService(cfg *config.ObservabilityConfig, logger *zerolog.Logger) (*LoggerService, error) {
	if cfg.NewRelic.LicenseKey == "" {
		logger.Info().Msg("new relic license key not set, telemetry disabled")
		return &LoggerService{}, nil
	}

	opts := []newrelic.ConfigOption{
		newrelic.ConfigAppName(cfg.ServiceName),
		newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(cfg.NewRelic.DistributedTracingEnabled),
		newrelic.ConfigAppLogForwardingEnabled(cfg.NewRelic.AppLogForwardingEnabled),
	}
	if cfg.NewRelic.DebugLogging {
		opts = append(opts, newrelic.ConfigDebugLogger(os.Stdout))
	}

	app, err := newrelic.NewApplication(opts...)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("service", cfg.ServiceName).Msg("new relic application initialized")
	return &LoggerService{app: app}, nil
}

// GetApplication returns the New Relic application, or nil when disabled.
func (s *LoggerService) GetApplication() *newrelic.Application {
	if s == nil {
		return nil
	}
	return s.app
}

// NewLogger builds the application's root logger from observability config.
//
// Format "console" pretty-prints to stderr; anything else emits JSON to
// stdout. When a New Relic application is supplied and log forwarding is
// enabled, log lines are decorated with linking metadata on their way out.
func NewLogger(cfg *config.ObservabilityConfig, loggerService *LoggerService) *zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if cfg.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	} else if app := loggerService.GetApplication(); app != nil && cfg.NewRelic.AppLogForwardingEnabled {
		w := zerologWriter.New(os.Stdout, app)
		out = &w
	}

	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("env", cfg.Environment).
		Logger()

	return &logger
}

// WithTraceContext returns a child logger carrying the transaction's trace
// and span ids so log lines can be correlated with distributed traces.
func WithTraceContext(logger zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return logger
	}

	md := txn.GetTraceMetadata()
	return logger.With().
		Str("trace.id", md.TraceID).
		Str("span.id", md.SpanID).
		Logger()
}
