package email

// Template is a string-based enum naming email templates under
// templates/emails/.
type Template string

const (
	// TemplateWelcome is sent to a newly subscribed email address.
	TemplateWelcome Template = "welcome"

	// TemplateContactNotification is sent to the configured contact
	// recipient when a contact form is submitted.
	TemplateContactNotification Template = "contact_notification"
)
