/*
Package monitoring provides Prometheus metrics for the API server.

# Overview

Metrics are registered on a per-instance registry and served by Handler.
HTTP requests are labelled by route template; operations by tool or
endpoint name and failure kind.

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	timer := monitoring.NewTimer(metrics, "square")
	// ... perform operation ...
	timer.Stop("") // or the failure kind
*/
package monitoring
