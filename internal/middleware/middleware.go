// Package middleware holds the global and route-level middleware that
// handles cross-cutting concerns: request ids, request-scoped logging,
// tracing, CORS, rate limiting, panic recovery and the global error
// handler.
package middleware
