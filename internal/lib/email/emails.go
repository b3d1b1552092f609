package email

// SendWelcomeEmail sends the newsletter welcome email to a new subscriber.
func (c *Client) SendWelcomeEmail(to string) error {
	frontendURL := c.cfg.FrontendURL
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}

	data := map[string]string{
		"FrontendURL": frontendURL,
	}

	return c.SendEmail(
		to,
		"Welcome to FocusFlow!",
		TemplateWelcome,
		data,
	)
}

// SendContactNotification notifies the configured recipient about a new
// contact form submission. Empty optional fields render with placeholders.
func (c *Client) SendContactNotification(name, fromEmail, message string) error {
	recipient := c.cfg.ContactRecipient
	if recipient == "" {
		recipient = "contact@focusflow.com"
	}

	if name == "" {
		name = "Not provided"
	}
	if message == "" {
		message = "No message provided"
	}

	data := map[string]string{
		"Name":    name,
		"Email":   fromEmail,
		"Message": message,
	}

	return c.SendEmail(
		recipient,
		"New contact form submission - FocusFlow",
		TemplateContactNotification,
		data,
	)
}
