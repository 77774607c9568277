package common

import (
	gomath "math"
	"strconv"
	"strings"
)

// FormatFloat renders f in its shortest round-trip form. Positional
// notation is used for decimal exponents in [-4, 16); everything else uses
// scientific notation. Integral values keep a trailing ".0".
func FormatFloat(f float64) string {
	switch {
	case gomath.IsNaN(f):
		return "nan"
	case gomath.IsInf(f, 1):
		return "inf"
	case gomath.IsInf(f, -1):
		return "-inf"
	case f == 0:
		if gomath.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp := decimalExponent(sci)
	if exp < -4 || exp >= 16 {
		return sci
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// decimalExponent extracts the exponent from an 'e' formatted float.
func decimalExponent(sci string) int {
	idx := strings.IndexByte(sci, 'e')
	if idx < 0 {
		return 0
	}
	exp, err := strconv.Atoi(sci[idx+1:])
	if err != nil {
		return 0
	}
	return exp
}

// FormatList renders numbers as "[a, b, c]".
func FormatList(numbers []Number) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = n.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
