package statistics

import (
	"encoding/json"
	gomath "math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/mathops/internal/providers/math/common"
)

func ints(values ...int64) []common.Number {
	out := make([]common.Number, len(values))
	for i, v := range values {
		out[i] = common.Int(v)
	}
	return out
}

func TestCalculateOddIntegers(t *testing.T) {
	summary, err := Calculate(ints(1, 2, 3, 4, 5))
	require.NoError(t, err)

	assert.Equal(t, 5, summary.Count)
	assert.True(t, summary.Mean.Equal(common.Float(3)), "mean is always float")
	assert.True(t, summary.Median.Equal(common.Int(3)), "odd median keeps kind")
	assert.True(t, summary.Min.Equal(common.Int(1)))
	assert.True(t, summary.Max.Equal(common.Int(5)))
	assert.True(t, summary.Sum.Equal(common.Int(15)))
}

func TestCalculateEvenMedianIsFloat(t *testing.T) {
	summary, err := Calculate(ints(4, 1, 3, 2))
	require.NoError(t, err)
	assert.True(t, summary.Median.Equal(common.Float(2.5)))

	summary, err = Calculate(ints(2, 4))
	require.NoError(t, err)
	assert.True(t, summary.Median.Equal(common.Float(3)))
}

func TestCalculateSingleElement(t *testing.T) {
	summary, err := Calculate(ints(42))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Count)
	assert.True(t, summary.Mean.Equal(common.Float(42)))
	assert.True(t, summary.Median.Equal(common.Int(42)))
	assert.True(t, summary.Min.Equal(common.Int(42)))
	assert.True(t, summary.Max.Equal(common.Int(42)))
	assert.True(t, summary.Sum.Equal(common.Int(42)))
}

func TestCalculateMixedKinds(t *testing.T) {
	numbers := []common.Number{common.Int(1), common.Float(2.5), common.Int(3)}
	summary, err := Calculate(numbers)
	require.NoError(t, err)

	assert.True(t, summary.Sum.Equal(common.Float(6.5)), "a float makes the sum float")
	assert.True(t, summary.Median.Equal(common.Float(2.5)))
	assert.True(t, summary.Min.Equal(common.Int(1)))
	assert.True(t, summary.Max.Equal(common.Int(3)))
}

func TestCalculateFirstExtremeWins(t *testing.T) {
	numbers := []common.Number{common.Float(1), common.Int(1), common.Int(2), common.Float(2)}
	summary, err := Calculate(numbers)
	require.NoError(t, err)
	assert.True(t, summary.Min.Equal(common.Float(1)))
	assert.True(t, summary.Max.Equal(common.Int(2)))
}

func TestCalculateNegativeAndFloat(t *testing.T) {
	numbers := []common.Number{common.Float(-1.5), common.Float(0.5), common.Float(4)}
	summary, err := Calculate(numbers)
	require.NoError(t, err)
	assert.True(t, summary.Mean.Equal(common.Float(1)))
	assert.True(t, summary.Median.Equal(common.Float(0.5)))
	assert.True(t, summary.Min.Equal(common.Float(-1.5)))
}

func TestCalculateInvariants(t *testing.T) {
	inputs := [][]common.Number{
		ints(5, 3, 9, 1),
		ints(-10, 0, 10),
		{common.Float(0.1), common.Float(0.2), common.Float(0.3)},
		{common.Int(7), common.Float(-2.25), common.Int(100), common.Float(3.5), common.Int(0)},
	}

	for _, numbers := range inputs {
		original := append([]common.Number(nil), numbers...)
		summary, err := Calculate(numbers)
		require.NoError(t, err)

		assert.Equal(t, len(numbers), summary.Count)
		assert.LessOrEqual(t, common.Compare(summary.Min, summary.Mean), 0)
		assert.LessOrEqual(t, common.Compare(summary.Mean, summary.Max), 0)
		assert.LessOrEqual(t, common.Compare(summary.Min, summary.Median), 0)
		assert.LessOrEqual(t, common.Compare(summary.Median, summary.Max), 0)

		for i := range numbers {
			assert.True(t, original[i].Equal(numbers[i]), "input must not be reordered")
		}

		again, err := Calculate(numbers)
		require.NoError(t, err)
		assert.Equal(t, summary, again)
	}
}

func TestCalculateFailures(t *testing.T) {
	_, err := Calculate(nil)
	require.Error(t, err)
	assert.True(t, common.IsValueError(err))
	assert.Equal(t, "List cannot be empty", err.Error())

	_, err = Calculate([]common.Number{common.Int(1), common.Float(gomath.NaN())})
	assert.True(t, common.IsValueError(err))
}

func TestCalculateValues(t *testing.T) {
	summary, numbers, err := CalculateValues([]interface{}{1, 2.5, int64(3)})
	require.NoError(t, err)
	assert.Len(t, numbers, 3)
	assert.Equal(t, 3, summary.Count)

	_, _, err = CalculateValues([]int{1, 2, 3})
	assert.NoError(t, err)

	for _, bad := range []interface{}{"1,2,3", 5, nil, []byte("12"), []interface{}{1, "two"}, []interface{}{true}} {
		_, _, err := CalculateValues(bad)
		assert.True(t, common.IsTypeError(err), "input %#v", bad)
	}

	_, _, err = CalculateValues([]interface{}{})
	assert.True(t, common.IsValueError(err))
}

func TestSummaryJSON(t *testing.T) {
	summary, err := Calculate(ints(1, 2, 3, 4, 5))
	require.NoError(t, err)

	data, err := json.Marshal(summary)
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":5,"mean":3.0,"median":3,"min":1,"max":5,"sum":15}`, string(data))
	assert.Contains(t, string(data), `"mean":3.0`)
}

func TestCalculateOverflow(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 1100)

	tests := []struct {
		name    string
		numbers []common.Number
	}{
		{"float sum", []common.Number{common.Float(1e308), common.Float(1e308)}},
		{"negative float sum", []common.Number{common.Float(-1e308), common.Float(-1e308), common.Float(1)}},
		{"integer mean", []common.Number{common.BigInt(huge), common.Int(1), common.Int(2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Calculate(tt.numbers)
			assert.True(t, common.IsValueError(err), "got %v", err)
		})
	}

	t.Run("infinite input passes through", func(t *testing.T) {
		summary, err := Calculate([]common.Number{common.Float(gomath.Inf(1)), common.Int(1)})
		require.NoError(t, err)
		assert.True(t, summary.Sum.IsInf())
	})
}

func TestCalculateIsRepeatable(t *testing.T) {
	inputs := [][]common.Number{
		ints(5),
		ints(3, 1, 2),
		ints(4, 1, 3, 2),
		{common.Float(1.5), common.Int(2), common.Float(-0.25)},
	}

	for _, numbers := range inputs {
		first, err := Calculate(numbers)
		require.NoError(t, err)
		second, err := Calculate(numbers)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}
