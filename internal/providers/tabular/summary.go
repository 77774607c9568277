package tabular

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Describe holds the numeric description of one column. Undefined
// values (std of a single cell, anything of an all-missing column) are nil.
type Describe struct {
	Count int      `json:"count"`
	Mean  *float64 `json:"mean"`
	Std   *float64 `json:"std"`
	Min   *float64 `json:"min"`
	Q25   *float64 `json:"25%"`
	Q50   *float64 `json:"50%"`
	Q75   *float64 `json:"75%"`
	Max   *float64 `json:"max"`
}

// Summary describes a frame.
type Summary struct {
	RowCount     int                 `json:"row_count"`
	ColumnCount  int                 `json:"column_count"`
	Columns      []string            `json:"columns"`
	DTypes       map[string]DType    `json:"dtypes"`
	NumericStats map[string]Describe `json:"numeric_stats,omitempty"`
	NullCounts   map[string]int      `json:"null_counts,omitempty"`
}

// Summarize reports shape, dtypes, a numeric description of every int64
// and float64 column, and the null count of every column that has nulls.
// A frame without rows or columns reports zero counts only.
func Summarize(f *Frame) Summary {
	if f == nil || f.IsEmpty() {
		return Summary{Columns: []string{}, DTypes: map[string]DType{}}
	}

	summary := Summary{
		RowCount:    f.Len(),
		ColumnCount: len(f.columns),
		Columns:     f.Names(),
		DTypes:      make(map[string]DType, len(f.columns)),
		NullCounts:  map[string]int{},
	}

	for _, c := range f.columns {
		summary.DTypes[c.Name] = c.DType
		if nulls := countMissing(c.Values); nulls > 0 {
			summary.NullCounts[c.Name] = nulls
		}
		if c.DType.Numeric() {
			if summary.NumericStats == nil {
				summary.NumericStats = map[string]Describe{}
			}
			summary.NumericStats[c.Name] = describe(numericValues(c.Values))
		}
	}
	return summary
}

func countMissing(values []interface{}) int {
	n := 0
	for _, v := range values {
		if isMissing(v) {
			n++
		}
	}
	return n
}

// numericValues returns the present numeric cells as float64.
func numericValues(values []interface{}) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if isMissing(v) {
			continue
		}
		if f, ok := toFloat(v); ok {
			out = append(out, f)
		}
	}
	return out
}

func describe(xs []float64) Describe {
	d := Describe{Count: len(xs)}
	if len(xs) == 0 {
		return d
	}

	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	d.Mean = opt(stat.Mean(xs, nil))
	if len(xs) > 1 {
		d.Std = opt(stat.StdDev(xs, nil))
	}
	d.Min = opt(floats.Min(xs))
	d.Max = opt(floats.Max(xs))
	d.Q25 = opt(quantile(sorted, 0.25))
	d.Q50 = opt(quantile(sorted, 0.5))
	d.Q75 = opt(quantile(sorted, 0.75))
	return d
}

// quantile interpolates linearly between the closest ranks of sorted data,
// position p*(n-1).
func quantile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

func opt(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
