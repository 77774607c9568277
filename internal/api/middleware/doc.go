// Package middleware provides the HTTP middleware for the API server.
//
// Middleware stack:
//   - Recovery: panic recovery with a JSON 500 response
//   - RequestID: X-Request-ID propagation
//   - AccessLog: one zap line per request
//   - CORS: configured origins with credentials
//   - RateLimit: per-IP token bucket with idle eviction
//
// Example Usage:
//
//	router.Use(middleware.Recovery(logger), middleware.RequestID())
//	router.Use(middleware.CORS(middleware.NewCORSConfig(cfg.CORS.Origins)))
package middleware
