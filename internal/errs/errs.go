// Package errs defines the application's error taxonomy.
//
// Every error that can reach a client is expressed as an *HTTPError so the
// global error handler can translate it into a consistent JSON envelope.
// Field-level validation failures ride along as []FieldError.
package errs
