// Package email provides the transactional email client.
//
// It uses Resend as the delivery provider and renders HTML bodies from
// template files on disk. When no API key is configured the client no-ops:
// sends are logged and skipped so email never blocks a request outcome.
package email

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/focusflow/backend/internal/config"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

// Client wraps the Resend client with the mail configuration and a logger.
// A nil inner client means sending is disabled.
type Client struct {
	client *resend.Client
	cfg    config.MailConfig
	logger *zerolog.Logger
}

// NewClient creates an email Client from config. With an empty API key the
// returned client is valid but disabled.
func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	c := &Client{
		cfg:    cfg.Mail,
		logger: logger,
	}
	if cfg.Mail.ResendAPIKey != "" {
		c.client = resend.NewClient(cfg.Mail.ResendAPIKey)
	}
	return c
}

// Enabled reports whether the client is configured to actually send.
func (c *Client) Enabled() bool {
	return c.client != nil
}

// SendEmail sends an email with HTML rendered from a template file under
// templates/emails/. It is a no-op (returning nil) when unconfigured.
func (c *Client) SendEmail(to, subject string, templateName Template, data map[string]string) error {
	if !c.Enabled() {
		c.logger.Info().
			Str("template", string(templateName)).
			Str("to", to).
			Msg("mail not configured, skipping email send")
		return nil
	}

	tmplPath := fmt.Sprintf("%s/%s.html", "templates/emails", templateName)

	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		return errors.Wrapf(err, "failed to parse email template %s", templateName)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return errors.Wrapf(err, "failed to execute email template %s", templateName)
	}

	fromName := c.cfg.FromName
	if fromName == "" {
		fromName = "FocusFlow"
	}
	fromAddress := c.cfg.FromAddress
	if fromAddress == "" {
		fromAddress = "noreply@focusflow.com"
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", fromName, fromAddress),
		To:      []string{to},
		Subject: subject,
		Html:    body.String(),
	}

	_, err = c.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
