// Package common holds the pieces shared by every math module.
//
// Number is a discriminated numeric value: an exact arbitrary-precision
// integer or a float64. The kind is never silently changed, so an integer
// input produces an integer result unless the operation needs true
// division (mean, even-length median, negative exponents).
//
// Failures come in two kinds:
//   - type: the input has the wrong shape (text, booleans, a float where an
//     integer is required)
//   - value: the input is well typed but outside the domain
//
// Both are *Error values and match ErrType / ErrValue with errors.Is.
//
// Example Usage:
//
//	n, err := common.ParseNumber("2.5")
//	if common.IsTypeError(err) {
//	    // reject input
//	}
package common
