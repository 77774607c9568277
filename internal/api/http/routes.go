package http

import "github.com/gin-gonic/gin"

// Register mounts every API route on router.
func (h *Handlers) Register(router gin.IRouter) {
	router.GET("/", h.Root)
	router.GET("/health", h.Health)
	router.GET("/docs", h.Docs)

	// Numeric operations
	router.GET("/square/:number", h.Square)
	router.GET("/factorial/:number", h.Factorial)
	router.GET("/fibonacci/:count", h.Fibonacci)
	router.GET("/prime/:number", h.Prime)
	router.POST("/power", h.Power)
	router.POST("/stats", h.Stats)

	// Service registry
	router.GET("/services", h.ListServices)
	router.POST("/services/discover", h.DiscoverServices)
	router.POST("/services/execute", h.ExecuteService)
}
