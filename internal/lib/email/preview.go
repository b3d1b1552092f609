package email

// PreviewData contains sample template data for local preview of each
// template: templateName -> (variable -> example value).
var PreviewData = map[string]map[string]string{
	"welcome": {
		"FrontendURL": "http://localhost:3000",
	},
	"contact_notification": {
		"Name":    "John",
		"Email":   "john@example.com",
		"Message": "I would like to know more about FocusFlow.",
	},
}
