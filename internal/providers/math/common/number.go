package common

import (
	"bytes"
	"encoding/json"
	"fmt"
	gomath "math"
	"math/big"
	"strconv"
	"strings"
)

// Number is either an exact integer or a float64. The zero value is the
// float 0.0; use Int(0) for the integer zero.
type Number struct {
	i *big.Int // non-nil for integers
	f float64
}

// Int returns an integer Number.
func Int(v int64) Number {
	return Number{i: big.NewInt(v)}
}

// BigInt returns an integer Number holding a copy of v.
func BigInt(v *big.Int) Number {
	if v == nil {
		return Int(0)
	}
	return Number{i: new(big.Int).Set(v)}
}

// Float returns a floating-point Number.
func Float(v float64) Number {
	return Number{f: v}
}

// IsInt reports whether n holds an exact integer.
func (n Number) IsInt() bool {
	return n.i != nil
}

// IsFloat reports whether n holds a float64.
func (n Number) IsFloat() bool {
	return n.i == nil
}

// Integer returns a copy of the integer value. ok is false for floats.
func (n Number) Integer() (v *big.Int, ok bool) {
	if n.i == nil {
		return nil, false
	}
	return new(big.Int).Set(n.i), true
}

// Int64 returns the integer value when it fits in an int64.
func (n Number) Int64() (int64, bool) {
	if n.i == nil || !n.i.IsInt64() {
		return 0, false
	}
	return n.i.Int64(), true
}

// Float64 converts n to the nearest float64. Integers too large for a
// float64 become ±Inf.
func (n Number) Float64() float64 {
	if n.i == nil {
		return n.f
	}
	f, _ := new(big.Float).SetInt(n.i).Float64()
	return f
}

// Sign returns -1, 0 or +1. NaN reports 0.
func (n Number) Sign() int {
	if n.i != nil {
		return n.i.Sign()
	}
	switch {
	case n.f > 0:
		return 1
	case n.f < 0:
		return -1
	}
	return 0
}

// IsNaN reports whether n is a float NaN.
func (n Number) IsNaN() bool {
	return n.i == nil && gomath.IsNaN(n.f)
}

// IsInf reports whether n is an infinite float.
func (n Number) IsInf() bool {
	return n.i == nil && gomath.IsInf(n.f, 0)
}

// Equal reports whether n and other hold the same kind and value.
func (n Number) Equal(other Number) bool {
	if n.IsInt() != other.IsInt() {
		return false
	}
	if n.i != nil {
		return n.i.Cmp(other.i) == 0
	}
	return n.f == other.f
}

// Compare orders a and b by numeric value across kinds. Integers and
// floats are compared exactly. NaN must be filtered by the caller.
func Compare(a, b Number) int {
	switch {
	case a.i != nil && b.i != nil:
		return a.i.Cmp(b.i)
	case a.i == nil && b.i == nil:
		switch {
		case a.f < b.f:
			return -1
		case a.f > b.f:
			return 1
		}
		return 0
	}
	return a.bigFloat().Cmp(b.bigFloat())
}

func (n Number) bigFloat() *big.Float {
	if n.i != nil {
		return new(big.Float).SetInt(n.i)
	}
	return new(big.Float).SetFloat64(n.f)
}

// Add returns a+b. Two integers add exactly; otherwise both operands are
// converted to float64.
func Add(a, b Number) Number {
	if a.i != nil && b.i != nil {
		return Number{i: new(big.Int).Add(a.i, b.i)}
	}
	return Float(a.Float64() + b.Float64())
}

// Divide performs true division of n by a positive integer count. The
// result is always a float; integer numerators are rounded exactly once.
func Divide(n Number, count int64) float64 {
	if n.i != nil {
		f, _ := new(big.Rat).SetFrac(n.i, big.NewInt(count)).Float64()
		return f
	}
	return n.f / float64(count)
}

// String renders integers in decimal and floats in their shortest
// round-trip form, always with a fractional part or exponent.
func (n Number) String() string {
	if n.i != nil {
		return n.i.String()
	}
	return FormatFloat(n.f)
}

// MarshalJSON encodes integers as integer literals and floats with a
// fractional part so the kind survives a round trip.
func (n Number) MarshalJSON() ([]byte, error) {
	if n.i != nil {
		return []byte(n.i.String()), nil
	}
	if gomath.IsNaN(n.f) || gomath.IsInf(n.f, 0) {
		return nil, fmt.Errorf("json: unsupported float value %s", FormatFloat(n.f))
	}
	return []byte(FormatFloat(n.f)), nil
}

// UnmarshalJSON accepts JSON number literals only.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return TypeError("decode", "value must be a number (int or float)")
	}
	switch data[0] {
	case '"':
		return TypeError("decode", "value must be a number (int or float), got string %s", data)
	case 't', 'f':
		return TypeError("decode", "value must be a number (int or float), got boolean")
	case 'n':
		return TypeError("decode", "value must be a number (int or float), got null")
	case '[', '{':
		return TypeError("decode", "value must be a number (int or float), got %s", jsonKind(data[0]))
	}
	parsed, err := parseLiteral(string(data))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

func jsonKind(c byte) string {
	if c == '[' {
		return "array"
	}
	return "object"
}

// parseLiteral parses a JSON-style numeric literal: an exponent or
// fractional part selects float.
func parseLiteral(s string) (Number, error) {
	if strings.ContainsAny(s, ".eE") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
				return Number{}, ValueError("decode", "number %s is out of range", s)
			}
			return Number{}, TypeError("decode", "invalid number literal %q", s)
		}
		return Float(f), nil
	}
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Number{}, TypeError("decode", "invalid number literal %q", s)
	}
	return Number{i: i}, nil
}

// ParseNumber converts user text to a Number. A decimal point selects a
// float; anything else must be a base-10 integer.
func ParseNumber(s string) (Number, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ".") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Number{}, TypeError("parse", "could not convert string to float: %q", s)
		}
		return Float(f), nil
	}
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Number{}, TypeError("parse", "invalid literal for integer: %q", s)
	}
	return Number{i: i}, nil
}

// ParseInteger converts user text to an integer Number, rejecting floats.
func ParseInteger(s string) (Number, error) {
	s = strings.TrimSpace(s)
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Number{}, TypeError("parse", "invalid literal for integer: %q", s)
	}
	return Number{i: i}, nil
}

// ToNumber converts a dynamically typed value. Booleans, strings, nil and
// containers are type failures.
func ToNumber(v interface{}) (Number, error) {
	switch x := v.(type) {
	case Number:
		return x, nil
	case *Number:
		if x == nil {
			return Number{}, TypeError("convert", "value must be a number (int or float), got nil")
		}
		return *x, nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Number{i: new(big.Int).SetUint64(uint64(x))}, nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		return Number{i: new(big.Int).SetUint64(x)}, nil
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case *big.Int:
		if x == nil {
			return Number{}, TypeError("convert", "value must be a number (int or float), got nil")
		}
		return BigInt(x), nil
	case json.Number:
		return parseLiteral(x.String())
	case nil:
		return Number{}, TypeError("convert", "value must be a number (int or float), got nil")
	default:
		return Number{}, TypeError("convert", "value must be a number (int or float), got %T", v)
	}
}
