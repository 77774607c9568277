package math

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/mathops/internal/providers/math/common"
	"github.com/GriffinCanCode/mathops/internal/providers/math/operations"
	"github.com/GriffinCanCode/mathops/internal/providers/math/statistics"
	"github.com/GriffinCanCode/mathops/internal/shared/types"
)

// Provider implements mathematical operations
type Provider struct {
	arithmetic *operations.ArithmeticOps
	stats      *statistics.StatsOps
}

// NewProvider creates a modular math provider whose tools enforce limits
func NewProvider(limits operations.Limits) *Provider {
	ops := &common.MathOps{}

	return &Provider{
		arithmetic: &operations.ArithmeticOps{MathOps: ops, Limits: limits},
		stats:      &statistics.StatsOps{MathOps: ops},
	}
}

// Definition returns service metadata with all module tools
func (m *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, m.arithmetic.GetTools()...)
	tools = append(tools, m.stats.GetTools()...)

	return types.Service{
		ID:           "math",
		Name:         "Math Service",
		Description:  "Numeric operations (square, power, factorial, fibonacci, primality, statistics)",
		Category:     types.CategoryMath,
		Capabilities: []string{"arithmetic", "integers", "statistics"},
		Tools:        tools,
	}
}

// Execute routes to appropriate module
func (m *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}) (*types.Result, error) {
	switch toolID {
	case "math.square":
		return m.arithmetic.Square(ctx, params)
	case "math.power":
		return m.arithmetic.Power(ctx, params)
	case "math.factorial":
		return m.arithmetic.Factorial(ctx, params)
	case "math.fibonacci":
		return m.arithmetic.Fibonacci(ctx, params)
	case "math.is_prime":
		return m.arithmetic.IsPrime(ctx, params)
	case "math.calculate_stats":
		return m.stats.CalculateStats(ctx, params)
	default:
		return common.Failure(fmt.Errorf("unknown tool: %s", toolID))
	}
}
