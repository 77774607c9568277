package tabular

import (
	"fmt"
	"reflect"
	"strings"
)

// Conditions accepted by Filter.
const (
	OpEqual        = "=="
	OpNotEqual     = "!="
	OpGreater      = ">"
	OpLess         = "<"
	OpGreaterEqual = ">="
	OpLessEqual    = "<="
	OpIn           = "in"
	OpContains     = "contains"
)

// Filter keeps the rows whose cell in column satisfies condition against
// value. Missing cells only ever match "!=".
func Filter(f *Frame, column, condition string, value interface{}) (*Frame, error) {
	col, ok := f.Column(column)
	if !ok {
		return nil, valueError("filter", "Column '%s' not found in DataFrame", column)
	}
	value = normalize(value)

	var match func(cell interface{}) (bool, error)
	switch condition {
	case OpEqual:
		match = func(cell interface{}) (bool, error) { return cellEqual(cell, value), nil }
	case OpNotEqual:
		match = func(cell interface{}) (bool, error) { return !cellEqual(cell, value), nil }
	case OpGreater, OpLess, OpGreaterEqual, OpLessEqual:
		match = func(cell interface{}) (bool, error) {
			if isMissing(cell) {
				return false, nil
			}
			cmp, err := compareCells(cell, value)
			if err != nil {
				return false, valueError("filter", "Cannot compare column '%s' with %v: %v", column, value, err)
			}
			return orderHolds(condition, cmp), nil
		}
	case OpIn:
		candidates, err := toList(value)
		if err != nil {
			return nil, valueError("filter", "Condition 'in' needs a list value, got %T", value)
		}
		match = func(cell interface{}) (bool, error) {
			for _, c := range candidates {
				if cellEqual(cell, c) {
					return true, nil
				}
			}
			return false, nil
		}
	case OpContains:
		if col.DType != Object {
			return nil, valueError("filter", "Cannot use 'contains' on non-string column '%s'", column)
		}
		needle := fmt.Sprint(value)
		match = func(cell interface{}) (bool, error) {
			s, ok := cell.(string)
			return ok && strings.Contains(s, needle), nil
		}
	default:
		return nil, valueError("filter", "Unsupported condition: %s", condition)
	}

	var rows []int
	for r, cell := range col.Values {
		ok, err := match(cell)
		if err != nil {
			return nil, err
		}
		if ok {
			rows = append(rows, r)
		}
	}
	return f.take(rows), nil
}

func orderHolds(condition string, cmp int) bool {
	switch condition {
	case OpGreater:
		return cmp > 0
	case OpLess:
		return cmp < 0
	case OpGreaterEqual:
		return cmp >= 0
	}
	return cmp <= 0
}

// cellEqual compares numbers by value across int64 and float64.
func cellEqual(a, b interface{}) bool {
	if isMissing(a) || isMissing(b) {
		return false
	}
	if fa, ok := toFloat(a); ok {
		fb, ok := toFloat(b)
		return ok && fa == fb
	}
	return reflect.DeepEqual(a, b)
}

func compareCells(a, b interface{}) (int, error) {
	if fa, ok := toFloat(a); ok {
		fb, ok := toFloat(b)
		if !ok {
			return 0, fmt.Errorf("'%T' and '%T' are not comparable", a, b)
		}
		switch {
		case fa < fb:
			return -1, nil
		case fa > fb:
			return 1, nil
		}
		return 0, nil
	}
	sa, okA := a.(string)
	sb, okB := b.(string)
	if !okA || !okB {
		return 0, fmt.Errorf("'%T' and '%T' are not comparable", a, b)
	}
	return strings.Compare(sa, sb), nil
}

func toList(value interface{}) ([]interface{}, error) {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, fmt.Errorf("not a list")
	}
	out := make([]interface{}, rv.Len())
	for i := range out {
		out[i] = normalize(rv.Index(i).Interface())
	}
	return out, nil
}
