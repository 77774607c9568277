package math

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/mathops/internal/providers/math/common"
	"github.com/GriffinCanCode/mathops/internal/providers/math/operations"
	"github.com/GriffinCanCode/mathops/internal/providers/math/statistics"
	"github.com/GriffinCanCode/mathops/internal/shared/testutil"
	"github.com/GriffinCanCode/mathops/internal/shared/types"
)

func TestProviderDefinition(t *testing.T) {
	def := NewProvider(operations.Limits{}).Definition()

	assert.Equal(t, "math", def.ID)
	assert.Equal(t, types.CategoryMath, def.Category)

	ids := make([]string, 0, len(def.Tools))
	for _, tool := range def.Tools {
		ids = append(ids, tool.ID)
	}
	assert.ElementsMatch(t, []string{
		"math.square", "math.power", "math.factorial",
		"math.fibonacci", "math.is_prime", "math.calculate_stats",
	}, ids)
}

func TestProviderExecute(t *testing.T) {
	provider := NewProvider(operations.Limits{})
	ctx := context.Background()

	t.Run("Square", func(t *testing.T) {
		result, err := provider.Execute(ctx, "math.square", map[string]interface{}{"number": 5})
		require.NoError(t, err)
		testutil.AssertSuccess(t, result)
		assert.True(t, result.Data["result"].(common.Number).Equal(common.Int(25)))
	})

	t.Run("Square of float", func(t *testing.T) {
		result, err := provider.Execute(ctx, "math.square", map[string]interface{}{"number": 2.5})
		require.NoError(t, err)
		testutil.AssertSuccess(t, result)
		assert.Equal(t, "6.25", result.Data["result"].(common.Number).String())
	})

	t.Run("Square of text", func(t *testing.T) {
		result, err := provider.Execute(ctx, "math.square", map[string]interface{}{"number": "five"})
		require.NoError(t, err)
		testutil.AssertError(t, result)
		assert.Equal(t, "type_error", result.Kind)
	})

	t.Run("Power", func(t *testing.T) {
		result, err := provider.Execute(ctx, "math.power", map[string]interface{}{"base": 2, "exponent": 10})
		require.NoError(t, err)
		testutil.AssertSuccess(t, result)
		assert.Equal(t, "1024", result.Data["result"].(common.Number).String())
	})

	t.Run("Power missing exponent", func(t *testing.T) {
		result, err := provider.Execute(ctx, "math.power", map[string]interface{}{"base": 2})
		require.NoError(t, err)
		testutil.AssertError(t, result)
	})

	t.Run("Factorial", func(t *testing.T) {
		result, err := provider.Execute(ctx, "math.factorial", map[string]interface{}{"n": 5})
		require.NoError(t, err)
		testutil.AssertSuccess(t, result)
		assert.Equal(t, "120", result.Data["result"].(interface{ String() string }).String())
	})

	t.Run("Factorial of negative", func(t *testing.T) {
		result, err := provider.Execute(ctx, "math.factorial", map[string]interface{}{"n": -1})
		require.NoError(t, err)
		testutil.AssertError(t, result)
		assert.Equal(t, "value_error", result.Kind)
	})

	t.Run("Fibonacci", func(t *testing.T) {
		result, err := provider.Execute(ctx, "math.fibonacci", map[string]interface{}{"n": 8})
		require.NoError(t, err)
		testutil.AssertSuccess(t, result)
		assert.Len(t, result.Data["sequence"], 8)
	})

	t.Run("IsPrime", func(t *testing.T) {
		result, err := provider.Execute(ctx, "math.is_prime", map[string]interface{}{"n": 17})
		require.NoError(t, err)
		testutil.AssertSuccess(t, result)
		assert.Equal(t, true, result.Data["is_prime"])
	})

	t.Run("CalculateStats", func(t *testing.T) {
		result, err := provider.Execute(ctx, "math.calculate_stats", map[string]interface{}{
			"numbers": []interface{}{1, 2, 3, 4, 5},
		})
		require.NoError(t, err)
		testutil.AssertSuccess(t, result)
		summary := result.Data["statistics"].(statistics.Summary)
		assert.Equal(t, 5, summary.Count)
		assert.Equal(t, "3.0", summary.Mean.String())
	})

	t.Run("CalculateStats empty", func(t *testing.T) {
		result, err := provider.Execute(ctx, "math.calculate_stats", map[string]interface{}{
			"numbers": []interface{}{},
		})
		require.NoError(t, err)
		testutil.AssertError(t, result)
		assert.Equal(t, "value_error", result.Kind)
	})

	t.Run("Unknown tool", func(t *testing.T) {
		result, err := provider.Execute(ctx, "math.cube", nil)
		require.NoError(t, err)
		testutil.AssertError(t, result)
	})
}

func TestProviderEnforcesLimits(t *testing.T) {
	provider := NewProvider(operations.Limits{MaxFactorialInput: 20, MaxFibonacciCount: 20, MaxPowerExponent: 20})
	ctx := context.Background()

	tests := []struct {
		tool   string
		params map[string]interface{}
	}{
		{"math.factorial", map[string]interface{}{"n": 21}},
		{"math.fibonacci", map[string]interface{}{"n": 1 << 31}},
		{"math.power", map[string]interface{}{"base": 3, "exponent": 21}},
	}
	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			result, err := provider.Execute(ctx, tt.tool, tt.params)
			require.NoError(t, err)
			testutil.AssertError(t, result)
			assert.Equal(t, "value_error", result.Kind)
			assert.Contains(t, *result.Error, "exceeds the configured maximum of 20")
		})
	}

	result, err := provider.Execute(ctx, "math.power", map[string]interface{}{"base": 1, "exponent": 1000})
	require.NoError(t, err)
	testutil.AssertSuccess(t, result)
}

func TestProviderStatsOverflow(t *testing.T) {
	result, err := NewProvider(operations.Limits{}).Execute(context.Background(), "math.calculate_stats",
		map[string]interface{}{"numbers": []interface{}{1e308, 1e308}})
	require.NoError(t, err)
	testutil.AssertError(t, result)
	assert.Equal(t, "value_error", result.Kind)
}
