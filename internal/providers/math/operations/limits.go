package operations

import (
	"math/big"

	"github.com/GriffinCanCode/mathops/internal/providers/math/common"
)

// Limits bounds inputs whose cost grows with their value. A zero field
// disables that bound.
type Limits struct {
	MaxFactorialInput int64
	MaxFibonacciCount int64
	MaxPowerExponent  int64
}

// CheckFactorial rejects n above MaxFactorialInput.
func (l Limits) CheckFactorial(n common.Number) error {
	return checkLimit("factorial", n, l.MaxFactorialInput, "Input")
}

// CheckFibonacci rejects counts above MaxFibonacciCount.
func (l Limits) CheckFibonacci(n common.Number) error {
	return checkLimit("fibonacci", n, l.MaxFibonacciCount, "Count")
}

// CheckPower bounds integer exponents for bases that can grow.
func (l Limits) CheckPower(base, exponent common.Number) error {
	if b, ok := base.Integer(); ok && b.CmpAbs(big.NewInt(1)) <= 0 {
		return nil
	}
	return checkLimit("power", exponent, l.MaxPowerExponent, "Exponent")
}

func checkLimit(op string, n common.Number, limit int64, label string) error {
	if limit <= 0 || n.IsFloat() {
		return nil
	}
	if common.Compare(n, common.Int(limit)) > 0 {
		return common.ValueError(op, "%s %s exceeds the configured maximum of %d", label, n, limit)
	}
	return nil
}
