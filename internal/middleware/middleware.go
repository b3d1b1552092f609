// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns: CORS, request
// correlation ids, request logging, panic recovery, body size limits,
// tracing, the admin-key gate on the contact listing, and the global error
// funnel.
package middleware
