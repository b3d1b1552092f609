// Package sqlerr translates database driver errors into application errors.
//
// It parses Postgres SQLSTATE codes from the driver and converts them into
// user-friendly HTTP errors: a unique violation on subscriptions.email
// becomes a duplicate-key Bad Request, a missing row becomes Not Found.
package sqlerr
