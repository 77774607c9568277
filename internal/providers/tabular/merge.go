package tabular

import (
	"slices"
	"strconv"
	"strings"
)

// Join kinds accepted by Merge.
var validHow = []string{"inner", "outer", "left", "right"}

// Merge joins two frames on the given key columns. Output columns are the
// keys, then the remaining left columns, then the remaining right columns;
// names present on both sides get "_x" and "_y" suffixes.
//
// Rows follow the left frame ("inner", "left", "outer") or the right frame
// ("right"). An outer join appends unmatched right rows after the left rows.
func Merge(left, right *Frame, on []string, how string) (*Frame, error) {
	if len(on) == 0 {
		return nil, valueError("merge", "At least one merge column is required")
	}
	for _, col := range on {
		if _, ok := left.Column(col); !ok {
			return nil, valueError("merge", "Column '%s' not found in first DataFrame", col)
		}
		if _, ok := right.Column(col); !ok {
			return nil, valueError("merge", "Column '%s' not found in second DataFrame", col)
		}
	}
	if !slices.Contains(validHow, how) {
		return nil, valueError("merge", "Invalid 'how' parameter: %s. Must be one of [%s]", how, strings.Join(validHow, ", "))
	}

	leftRest := without(left.Names(), on)
	rightRest := without(right.Names(), on)
	names := append(append([]string{}, on...), suffixed(leftRest, rightRest, "_x")...)
	names = append(names, suffixed(rightRest, leftRest, "_y")...)

	build := func(keyFrame *Frame, keyRow, l, r int) []interface{} {
		row := make([]interface{}, 0, len(names))
		for _, k := range on {
			c, _ := keyFrame.Column(k)
			row = append(row, c.Values[keyRow])
		}
		row = append(row, cells(left, leftRest, l)...)
		return append(row, cells(right, rightRest, r)...)
	}

	var rows [][]interface{}
	if how == "right" {
		leftIndex := indexRows(left, on)
		for r := 0; r < right.Len(); r++ {
			matches := leftIndex[rowKey(right, on, r)]
			if len(matches) == 0 {
				rows = append(rows, build(right, r, -1, r))
				continue
			}
			for _, l := range matches {
				rows = append(rows, build(right, r, l, r))
			}
		}
		return New(names, rows)
	}

	rightIndex := indexRows(right, on)
	matched := make([]bool, right.Len())
	for l := 0; l < left.Len(); l++ {
		matches := rightIndex[rowKey(left, on, l)]
		if len(matches) == 0 {
			if how != "inner" {
				rows = append(rows, build(left, l, l, -1))
			}
			continue
		}
		for _, r := range matches {
			matched[r] = true
			rows = append(rows, build(left, l, l, r))
		}
	}
	if how == "outer" {
		for r := 0; r < right.Len(); r++ {
			if !matched[r] {
				rows = append(rows, build(right, r, -1, r))
			}
		}
	}
	return New(names, rows)
}

// cells returns row r of the named columns, or nils when r is -1.
func cells(f *Frame, names []string, r int) []interface{} {
	out := make([]interface{}, len(names))
	if r < 0 {
		return out
	}
	for i, name := range names {
		c, _ := f.Column(name)
		out[i] = c.Values[r]
	}
	return out
}

// indexRows maps a join key to the rows holding it. Rows with a missing
// key cell never match.
func indexRows(f *Frame, on []string) map[string][]int {
	index := map[string][]int{}
	for r := 0; r < f.Len(); r++ {
		key := rowKey(f, on, r)
		if key == "" {
			continue
		}
		index[key] = append(index[key], r)
	}
	return index
}

// rowKey encodes the key cells of row r. Numbers are keyed by value so 1
// and 1.0 join. An empty key means a cell is missing.
func rowKey(f *Frame, on []string, r int) string {
	var b strings.Builder
	for _, name := range on {
		c, _ := f.Column(name)
		v := c.Values[r]
		if isMissing(v) {
			return ""
		}
		if x, ok := toFloat(v); ok {
			b.WriteString("n:" + strconv.FormatFloat(x, 'g', -1, 64))
		} else {
			b.WriteString("s:" + formatCell(v))
		}
		b.WriteByte(0)
	}
	return b.String()
}

func without(names, drop []string) []string {
	var out []string
	for _, n := range names {
		if !slices.Contains(drop, n) {
			out = append(out, n)
		}
	}
	return out
}

func suffixed(names, other []string, suffix string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		if slices.Contains(other, n) {
			n += suffix
		}
		out[i] = n
	}
	return out
}
