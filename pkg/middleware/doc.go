// Package middleware provides net/http middleware for glaze servers:
// Prometheus metrics, OpenTelemetry tracing, and structured request logging.
//
// All middleware is chi-compatible (func(http.Handler) http.Handler) and
// configured through functional options.
package middleware
