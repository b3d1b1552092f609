// Package handler is the HTTP layer. It parses and validates incoming
// requests, calls the service layer, and shapes the JSON response
// envelope. All error formatting is delegated to the global error
// handler; handlers only return errors.
package handler
