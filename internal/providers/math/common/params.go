package common

import "github.com/GriffinCanCode/mathops/internal/shared/types"

// MathOps provides common math helpers
type MathOps struct{}

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result carrying the error kind when known
func Failure(err error) (*types.Result, error) {
	msg := err.Error()
	result := &types.Result{Success: false, Error: &msg}
	if kind, ok := KindOf(err); ok {
		result.Kind = kind.String()
	}
	return result, nil
}

// GetNumber extracts a Number from params. Missing keys and non-numeric
// values are type failures.
func GetNumber(params map[string]interface{}, key string) (Number, error) {
	val, ok := params[key]
	if !ok {
		return Number{}, TypeError("params", "%s parameter required", key)
	}
	n, err := ToNumber(val)
	if err != nil {
		return Number{}, TypeError("params", "%s must be a number (int or float)", key)
	}
	return n, nil
}

// GetString extracts string from params
func GetString(params map[string]interface{}, key string) (string, bool) {
	val, ok := params[key].(string)
	return val, ok
}
