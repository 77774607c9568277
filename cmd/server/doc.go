// Package main is the entry point for the math operations HTTP server.
//
// The server exposes the numeric operations and the tabular data tools as a
// JSON API with a Prometheus /metrics endpoint and an OpenAPI document at
// /docs.
//
// Configuration:
//   - Defaults, overlaid by an optional YAML or TOML file
//   - Environment variables (PORT, HOST, LOG_LEVEL, CORS_ORIGINS, ...)
//   - CLI flags (override both)
//
// Usage:
//
//	# Production mode
//	./server -config config.yaml
//
//	# Development mode (colored logs, debug level)
//	./server -dev -port 8080
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
