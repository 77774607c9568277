package operations

import (
	"context"

	"github.com/GriffinCanCode/mathops/internal/providers/math/common"
	"github.com/GriffinCanCode/mathops/internal/shared/types"
)

// ArithmeticOps exposes the scalar operations as service tools
type ArithmeticOps struct {
	*common.MathOps
	Limits Limits
}

// GetTools returns arithmetic tool definitions
func (a *ArithmeticOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.square",
			Name:        "Square",
			Description: "Calculate the square of a number",
			Parameters: []types.Parameter{
				{Name: "number", Type: "number", Description: "Number to square", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.power",
			Name:        "Power",
			Description: "Raise base to the power of exponent (base^exponent)",
			Parameters: []types.Parameter{
				{Name: "base", Type: "number", Description: "Base", Required: true},
				{Name: "exponent", Type: "number", Description: "Exponent", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.factorial",
			Name:        "Factorial",
			Description: "Calculate factorial (n!) with exact integer arithmetic",
			Parameters: []types.Parameter{
				{Name: "n", Type: "integer", Description: "Non-negative integer", Required: true},
			},
			Returns: "integer",
		},
		{
			ID:          "math.fibonacci",
			Name:        "Fibonacci",
			Description: "Generate the first n Fibonacci numbers",
			Parameters: []types.Parameter{
				{Name: "n", Type: "integer", Description: "Number of terms (> 0)", Required: true},
			},
			Returns: "array",
		},
		{
			ID:          "math.is_prime",
			Name:        "Is Prime",
			Description: "Check whether an integer is prime",
			Parameters: []types.Parameter{
				{Name: "n", Type: "integer", Description: "Integer to check (>= 2)", Required: true},
			},
			Returns: "boolean",
		},
	}
}

// Square squares a number
func (a *ArithmeticOps) Square(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	x, err := common.GetNumber(params, "number")
	if err != nil {
		return common.Failure(err)
	}
	result, err := Square(x)
	if err != nil {
		return common.Failure(err)
	}
	return common.Success(map[string]interface{}{"input": x, "result": result})
}

// Power raises base to exponent
func (a *ArithmeticOps) Power(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	base, err := common.GetNumber(params, "base")
	if err != nil {
		return common.Failure(err)
	}
	exponent, err := common.GetNumber(params, "exponent")
	if err != nil {
		return common.Failure(err)
	}
	if err := a.Limits.CheckPower(base, exponent); err != nil {
		return common.Failure(err)
	}
	result, err := Power(base, exponent)
	if err != nil {
		return common.Failure(err)
	}
	return common.Success(map[string]interface{}{"base": base, "exponent": exponent, "result": result})
}

// Factorial calculates n!
func (a *ArithmeticOps) Factorial(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	n, err := common.GetNumber(params, "n")
	if err != nil {
		return common.Failure(err)
	}
	if err := a.Limits.CheckFactorial(n); err != nil {
		return common.Failure(err)
	}
	result, err := Factorial(n)
	if err != nil {
		return common.Failure(err)
	}
	return common.Success(map[string]interface{}{"input": n, "result": result})
}

// Fibonacci generates the sequence
func (a *ArithmeticOps) Fibonacci(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	n, err := common.GetNumber(params, "n")
	if err != nil {
		return common.Failure(err)
	}
	if err := a.Limits.CheckFibonacci(n); err != nil {
		return common.Failure(err)
	}
	sequence, err := Fibonacci(n)
	if err != nil {
		return common.Failure(err)
	}
	return common.Success(map[string]interface{}{"count": n, "sequence": sequence})
}

// IsPrime checks primality
func (a *ArithmeticOps) IsPrime(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	n, err := common.GetNumber(params, "n")
	if err != nil {
		return common.Failure(err)
	}
	prime, err := IsPrime(n)
	if err != nil {
		return common.Failure(err)
	}
	return common.Success(map[string]interface{}{"input": n, "is_prime": prime})
}
