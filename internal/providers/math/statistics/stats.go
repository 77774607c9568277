package statistics

import (
	"reflect"
	"slices"

	"github.com/GriffinCanCode/mathops/internal/providers/math/common"
)

// Summary holds the descriptive statistics of a number sequence.
type Summary struct {
	Count  int           `json:"count"`
	Mean   common.Number `json:"mean"`
	Median common.Number `json:"median"`
	Min    common.Number `json:"min"`
	Max    common.Number `json:"max"`
	Sum    common.Number `json:"sum"`
}

// Calculate computes count, mean, median, min, max and sum.
//
// The sum stays exact while every element is an integer. Mean is always a
// float. The median keeps the kind of the middle element for odd counts
// and is a float average for even counts. Min and max return the first
// minimal and maximal element. A sum, mean or median that overflows a
// float is a value failure.
func Calculate(numbers []common.Number) (Summary, error) {
	if len(numbers) == 0 {
		return Summary{}, common.ValueError("calculate_stats", "List cannot be empty")
	}
	finite := true
	for _, n := range numbers {
		if n.IsNaN() {
			return Summary{}, common.ValueError("calculate_stats", "All elements must be comparable numbers, got nan")
		}
		if n.IsInf() {
			finite = false
		}
	}

	count := len(numbers)
	sum := common.Int(0)
	minimum, maximum := numbers[0], numbers[0]
	for i, n := range numbers {
		sum = common.Add(sum, n)
		if i == 0 {
			continue
		}
		if common.Compare(n, minimum) < 0 {
			minimum = n
		}
		if common.Compare(n, maximum) > 0 {
			maximum = n
		}
	}

	summary := Summary{
		Count:  count,
		Mean:   common.Float(common.Divide(sum, int64(count))),
		Median: median(numbers),
		Min:    minimum,
		Max:    maximum,
		Sum:    sum,
	}
	// Finite input must not produce an infinite statistic.
	if finite && (summary.Sum.IsInf() || summary.Mean.IsInf() || summary.Median.IsInf()) {
		return Summary{}, common.ValueError("calculate_stats", "result is out of range for a float")
	}
	return summary, nil
}

func median(numbers []common.Number) common.Number {
	sorted := slices.Clone(numbers)
	slices.SortStableFunc(sorted, common.Compare)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return common.Float(common.Divide(common.Add(sorted[mid-1], sorted[mid]), 2))
}

// CalculateValues validates a dynamically typed sequence and computes its
// summary. Non-sequences and non-numeric elements are type failures.
func CalculateValues(values interface{}) (Summary, []common.Number, error) {
	numbers, err := toNumbers(values)
	if err != nil {
		return Summary{}, nil, err
	}
	summary, err := Calculate(numbers)
	return summary, numbers, err
}

func toNumbers(values interface{}) ([]common.Number, error) {
	switch v := values.(type) {
	case []common.Number:
		return v, nil
	case nil:
		return nil, common.TypeError("calculate_stats", "Input must be a list")
	}

	rv := reflect.ValueOf(values)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, common.TypeError("calculate_stats", "Input must be a list")
	}
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, common.TypeError("calculate_stats", "Input must be a list")
	}

	numbers := make([]common.Number, rv.Len())
	for i := range numbers {
		n, err := common.ToNumber(rv.Index(i).Interface())
		if err != nil {
			return nil, common.TypeError("calculate_stats", "All elements must be numbers")
		}
		numbers[i] = n
	}
	return numbers, nil
}
