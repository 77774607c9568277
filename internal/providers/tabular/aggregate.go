package tabular

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Aggregation functions accepted by Aggregate.
var aggregators = map[string]bool{
	"mean": true, "sum": true, "count": true,
	"min": true, "max": true, "median": true, "std": true,
}

var numericOnly = map[string]bool{"mean": true, "sum": true, "median": true, "std": true}

// Aggregate groups rows by the given columns and applies functions to
// other columns. Result columns are the group columns followed by one
// "<column>_<func>" column per requested pair, aggregated columns ordered
// by name. Groups are sorted by key; rows with a missing key are dropped.
func Aggregate(f *Frame, groupBy []string, aggregations map[string][]string) (*Frame, error) {
	if len(groupBy) == 0 {
		return nil, valueError("aggregate", "At least one group column is required")
	}
	for _, col := range groupBy {
		if _, ok := f.Column(col); !ok {
			return nil, valueError("aggregate", "Group column '%s' not found in DataFrame", col)
		}
	}

	aggCols := make([]string, 0, len(aggregations))
	for col, funcs := range aggregations {
		c, ok := f.Column(col)
		if !ok {
			return nil, valueError("aggregate", "Aggregation column '%s' not found in DataFrame", col)
		}
		for _, fn := range funcs {
			if !aggregators[fn] {
				return nil, valueError("aggregate", "Unsupported aggregation: %s", fn)
			}
			if numericOnly[fn] && !c.DType.Numeric() {
				return nil, valueError("aggregate", "Cannot compute %s of non-numeric column '%s'", fn, col)
			}
		}
		aggCols = append(aggCols, col)
	}
	sort.Strings(aggCols)

	groups := groupRows(f, groupBy)

	names := append([]string{}, groupBy...)
	for _, col := range aggCols {
		for _, fn := range aggregations[col] {
			names = append(names, col+"_"+fn)
		}
	}

	rows := make([][]interface{}, 0, len(groups))
	for _, g := range groups {
		row := make([]interface{}, 0, len(names))
		for _, col := range groupBy {
			c, _ := f.Column(col)
			row = append(row, c.Values[g[0]])
		}
		for _, col := range aggCols {
			c, _ := f.Column(col)
			present := presentCells(c, g)
			for _, fn := range aggregations[col] {
				v, err := apply(fn, c, present)
				if err != nil {
					return nil, err
				}
				row = append(row, v)
			}
		}
		rows = append(rows, row)
	}
	return New(names, rows)
}

// groupRows returns row indices per group, groups ordered by key.
func groupRows(f *Frame, groupBy []string) [][]int {
	index := map[string]int{}
	var groups [][]int
	for r := 0; r < f.Len(); r++ {
		key := rowKey(f, groupBy, r)
		if key == "" {
			continue
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], r)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		for _, col := range groupBy {
			c, _ := f.Column(col)
			a, b := c.Values[groups[i][0]], c.Values[groups[j][0]]
			cmp, err := compareCells(a, b)
			if err != nil {
				cmp = compareText(formatCell(a), formatCell(b))
			}
			if cmp != 0 {
				return cmp < 0
			}
		}
		return false
	})
	return groups
}

func compareText(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func presentCells(c *Column, rows []int) []interface{} {
	out := make([]interface{}, 0, len(rows))
	for _, r := range rows {
		if v := c.Values[r]; !isMissing(v) {
			out = append(out, v)
		}
	}
	return out
}

func apply(fn string, c *Column, cells []interface{}) (interface{}, error) {
	if fn == "count" {
		return int64(len(cells)), nil
	}
	if c.DType.Numeric() {
		return applyNumeric(fn, c.DType, cells), nil
	}

	// min and max of non-numeric columns compare text.
	if len(cells) == 0 {
		return nil, nil
	}
	best := cells[0]
	for _, v := range cells[1:] {
		cmp, err := compareCells(v, best)
		if err != nil {
			return nil, valueError("aggregate", "Cannot compute %s of column '%s': %v", fn, c.Name, err)
		}
		if (fn == "min" && cmp < 0) || (fn == "max" && cmp > 0) {
			best = v
		}
	}
	return best, nil
}

func applyNumeric(fn string, dtype DType, cells []interface{}) interface{} {
	if dtype == Int64 && (fn == "sum" || fn == "min" || fn == "max") {
		return applyInt(fn, cells)
	}

	xs := make([]float64, len(cells))
	for i, v := range cells {
		xs[i], _ = toFloat(v)
	}
	if fn == "sum" {
		return floats.Sum(xs)
	}
	if len(xs) == 0 || (fn == "std" && len(xs) < 2) {
		return nil
	}

	switch fn {
	case "mean":
		return stat.Mean(xs, nil)
	case "std":
		return stat.StdDev(xs, nil)
	case "min":
		return floats.Min(xs)
	case "max":
		return floats.Max(xs)
	}
	sort.Float64s(xs)
	return quantile(xs, 0.5)
}

func applyInt(fn string, cells []interface{}) interface{} {
	if len(cells) == 0 {
		if fn == "sum" {
			return int64(0)
		}
		return nil
	}
	acc := cells[0].(int64)
	for _, v := range cells[1:] {
		x := v.(int64)
		switch fn {
		case "sum":
			acc += x
		case "min":
			acc = min(acc, x)
		case "max":
			acc = max(acc, x)
		}
	}
	return acc
}
