// Package validation contains the logic for validating request data.
//
// It uses the `validator` library to enforce rules defined in struct tags
// (required fields, email format, length limits) and extracts validation
// errors into a field-level format the client can act on. All failing
// fields are reported together; validation never stops at the first error.
package validation
