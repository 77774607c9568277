package http

import (
	"encoding/json"
	gomath "math"
	"math/big"
	"net/http"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/mathops/internal/domain/service"
	"github.com/GriffinCanCode/mathops/internal/infrastructure/logging"
	"github.com/GriffinCanCode/mathops/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/mathops/internal/providers/math/common"
	"github.com/GriffinCanCode/mathops/internal/providers/math/operations"
	"github.com/GriffinCanCode/mathops/internal/providers/math/statistics"
	"github.com/GriffinCanCode/mathops/internal/shared/types"
)

const (
	// ServiceName is reported by the health check.
	ServiceName = "math-operations-api"
	// Version is the API version.
	Version = "1.0.0"
)

// PowerRequest is the body of POST /power
type PowerRequest struct {
	Base     *common.Number `json:"base" binding:"required"`
	Exponent *common.Number `json:"exponent" binding:"required"`
}

// StatsRequest is the body of POST /stats
type StatsRequest struct {
	Numbers []common.Number `json:"numbers" binding:"required,min=1"`
}

// DiscoverRequest is the body of POST /services/discover
type DiscoverRequest struct {
	Query string `json:"query" binding:"required"`
	Limit int    `json:"limit"`
}

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *service.Registry
	limits   operations.Limits
	metrics  *monitoring.Metrics
	logger   *logging.Logger
	docs     *openapi3.T
}

// NewHandlers creates a new handler set. metrics may be nil.
func NewHandlers(registry *service.Registry, limits operations.Limits, metrics *monitoring.Metrics, logger *logging.Logger) *Handlers {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Handlers{
		registry: registry,
		limits:   limits,
		metrics:  metrics,
		logger:   logger,
		docs:     Document(),
	}
}

// Root describes the API
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":  "Mathematical Operations API",
		"version":  Version,
		"docs_url": "/docs",
		"endpoints": gin.H{
			"GET /":                   "API information",
			"GET /health":             "Health check",
			"GET /docs":               "OpenAPI document",
			"GET /metrics":            "Prometheus metrics",
			"GET /square/{number}":    "Calculate square of a number",
			"GET /factorial/{number}": "Calculate factorial of a number",
			"GET /fibonacci/{count}":  "Generate Fibonacci sequence",
			"GET /prime/{number}":     "Check if number is prime",
			"POST /power":             "Calculate base^exponent",
			"POST /stats":             "Calculate statistics for a list of numbers",
			"GET /services":           "List registered services",
			"POST /services/discover": "Find services relevant to a query",
			"POST /services/execute":  "Execute a service tool",
		},
	})
}

// Health handles health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": ServiceName,
	})
}

// Docs serves the OpenAPI document
func (h *Handlers) Docs(c *gin.Context) {
	c.JSON(http.StatusOK, h.docs)
}

// Square handles GET /square/:number
func (h *Handlers) Square(c *gin.Context) {
	raw := c.Param("number")
	x, ok := parsePathNumber(raw)
	if !ok {
		abortValidation(c, pathError("number", raw, false))
		return
	}

	done := h.track("square")
	result, err := operations.Square(x)
	done(err)
	if err != nil {
		respondOperationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"operation": "square",
		"success":   true,
		"input":     x,
		"result":    result,
	})
}

// Factorial handles GET /factorial/:number
func (h *Handlers) Factorial(c *gin.Context) {
	raw := c.Param("number")
	n, err := common.ParseInteger(raw)
	if err != nil {
		abortValidation(c, pathError("number", raw, true))
		return
	}

	done := h.track("factorial")
	err = h.limits.CheckFactorial(n)
	var result *big.Int
	if err == nil {
		result, err = operations.Factorial(n)
	}
	done(err)
	if err != nil {
		respondOperationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"operation": "factorial",
		"success":   true,
		"input":     n,
		"result":    result,
	})
}

// Fibonacci handles GET /fibonacci/:count
func (h *Handlers) Fibonacci(c *gin.Context) {
	raw := c.Param("count")
	n, err := common.ParseInteger(raw)
	if err != nil {
		abortValidation(c, pathError("count", raw, true))
		return
	}

	done := h.track("fibonacci")
	err = h.limits.CheckFibonacci(n)
	var sequence []*big.Int
	if err == nil {
		sequence, err = operations.Fibonacci(n)
	}
	done(err)
	if err != nil {
		respondOperationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"operation": "fibonacci",
		"success":   true,
		"count":     n,
		"sequence":  sequence,
	})
}

// Prime handles GET /prime/:number
func (h *Handlers) Prime(c *gin.Context) {
	raw := c.Param("number")
	n, err := common.ParseInteger(raw)
	if err != nil {
		abortValidation(c, pathError("number", raw, true))
		return
	}

	done := h.track("is_prime")
	prime, err := operations.IsPrime(n)
	done(err)
	if err != nil {
		respondOperationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"operation": "is_prime",
		"success":   true,
		"input":     n,
		"is_prime":  prime,
	})
}

// Power handles POST /power
func (h *Handlers) Power(c *gin.Context) {
	var req PowerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortValidation(c, bindingErrors(err)...)
		return
	}
	base, exponent := *req.Base, *req.Exponent

	done := h.track("power")
	err := h.limits.CheckPower(base, exponent)
	var result common.Number
	if err == nil {
		result, err = operations.Power(base, exponent)
	}
	done(err)
	if err != nil {
		respondOperationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"operation": "power",
		"success":   true,
		"base":      base,
		"exponent":  exponent,
		"result":    result,
	})
}

// Stats handles POST /stats
func (h *Handlers) Stats(c *gin.Context) {
	var req StatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortValidation(c, bindingErrors(err)...)
		return
	}

	done := h.track("calculate_stats")
	summary, err := statistics.Calculate(req.Numbers)
	done(err)
	if err != nil {
		respondOperationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"operation":     "calculate_stats",
		"success":       true,
		"input_numbers": req.Numbers,
		"statistics":    summary,
	})
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	var category *types.Category
	if raw := c.Query("category"); raw != "" {
		cat := types.Category(raw)
		if cat != types.CategoryMath && cat != types.CategoryData {
			abortValidation(c, FieldError{
				Type:  "enum",
				Loc:   []interface{}{"query", "category"},
				Msg:   "Input should be 'math' or 'data'",
				Input: raw,
			})
			return
		}
		category = &cat
	}

	c.JSON(http.StatusOK, gin.H{
		"services": h.registry.List(category),
		"stats":    h.registry.Stats(),
	})
}

// DiscoverServices finds services relevant to a free-text query
func (h *Handlers) DiscoverServices(c *gin.Context) {
	var req DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortValidation(c, bindingErrors(err)...)
		return
	}
	if req.Limit <= 0 {
		req.Limit = 5
	}

	c.JSON(http.StatusOK, gin.H{
		"query":    req.Query,
		"services": h.registry.Discover(req.Query, req.Limit),
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := bindJSONNumbers(c, &req); err != nil {
		abortValidation(c, bindingErrors(err)...)
		return
	}

	timer := monitoring.NewTimer(h.metrics, "execute")
	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params)
	if err != nil {
		timer.Stop("not_found")
		h.logger.Debug("Service execution rejected", zap.String("tool_id", req.ToolID), zap.Error(err))
		c.JSON(http.StatusNotFound, result)
		return
	}
	timer.Stop(resultKind(result))

	c.JSON(http.StatusOK, result)
}

// bindJSONNumbers decodes the body keeping numeric literals as json.Number
// so integers and floats stay distinct in untyped params.
func bindJSONNumbers(c *gin.Context, obj interface{}) error {
	if c.Request.Body == nil {
		return errEmptyBody
	}
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	if err := dec.Decode(obj); err != nil {
		return err
	}
	return binding.Validator.ValidateStruct(obj)
}

// parsePathNumber accepts integer and float literals. Non-finite values are
// rejected because they cannot be encoded in the response.
func parsePathNumber(raw string) (common.Number, bool) {
	if n, err := common.ParseNumber(raw); err == nil {
		if n.IsNaN() || n.IsInf() {
			return common.Number{}, false
		}
		return n, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || gomath.IsNaN(f) || gomath.IsInf(f, 0) {
		return common.Number{}, false
	}
	return common.Float(f), true
}
