// Package http provides HTTP handlers and routing for the math operations API.
//
// Endpoints:
//   - Info: /, /health, /docs
//   - Operations: /square/:number, /factorial/:number, /fibonacci/:count,
//     /prime/:number, POST /power, POST /stats
//   - Services: /services, /services/discover, /services/execute
//
// Malformed path parameters and bodies are rejected with 422 and a list of
// field errors. Inputs outside an operation's domain get 400 with the
// failure kind in the error field.
//
// Example Usage:
//
//	handlers := http.NewHandlers(registry, cfg.Limits, metrics, logger)
//	handlers.Register(router)
package http
