package statistics

import (
	"context"

	"github.com/GriffinCanCode/mathops/internal/providers/math/common"
	"github.com/GriffinCanCode/mathops/internal/shared/types"
)

// StatsOps exposes descriptive statistics as a service tool
type StatsOps struct {
	*common.MathOps
}

// GetTools returns statistics tool definitions
func (s *StatsOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.calculate_stats",
			Name:        "Calculate Statistics",
			Description: "Count, mean, median, min, max and sum of a list of numbers",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Non-empty list of numbers", Required: true},
			},
			Returns: "object",
		},
	}
}

// CalculateStats summarizes a list of numbers
func (s *StatsOps) CalculateStats(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	values, ok := params["numbers"]
	if !ok {
		return common.Failure(common.TypeError("params", "numbers parameter required"))
	}
	summary, numbers, err := CalculateValues(values)
	if err != nil {
		return common.Failure(err)
	}
	return common.Success(map[string]interface{}{
		"input_numbers": numbers,
		"statistics":    summary,
	})
}
