package operations

import (
	gomath "math"
	"math/big"

	"github.com/GriffinCanCode/mathops/internal/providers/math/common"
)

// MaxResultBits bounds exact integer exponentiation. Results estimated to
// need more bits are rejected as value failures.
const MaxResultBits = 1 << 24

// Square returns x². Integers stay exact.
func Square(x common.Number) (common.Number, error) {
	if v, ok := x.Integer(); ok {
		return common.BigInt(v.Mul(v, v)), nil
	}

	f := x.Float64()
	result := f * f
	if gomath.IsInf(result, 0) && !gomath.IsInf(f, 0) {
		return common.Number{}, common.ValueError("square", "result of squaring %s is out of range", x)
	}
	return common.Float(result), nil
}

// Power returns base raised to exponent. Two integers with a non-negative
// exponent produce an exact integer; a negative integer exponent or any
// float operand produces a float.
func Power(base, exponent common.Number) (common.Number, error) {
	if base.IsInt() && exponent.IsInt() {
		return intPower(base, exponent)
	}
	return floatPower(base.Float64(), exponent.Float64())
}

func intPower(base, exponent common.Number) (common.Number, error) {
	b, _ := base.Integer()
	e, _ := exponent.Integer()

	if e.Sign() < 0 {
		if b.Sign() == 0 {
			return common.Number{}, common.ValueError("power", "0 cannot be raised to a negative power")
		}
		return floatPower(base.Float64(), exponent.Float64())
	}

	// Bases -1, 0 and 1 never grow, whatever the exponent.
	if b.CmpAbs(big.NewInt(1)) <= 0 {
		switch {
		case b.Sign() == 0 && e.Sign() == 0:
			return common.Int(1), nil
		case b.Sign() == 0:
			return common.Int(0), nil
		case b.Sign() > 0 || e.Bit(0) == 0:
			return common.Int(1), nil
		default:
			return common.Int(-1), nil
		}
	}

	if !e.IsInt64() || e.Int64() > MaxResultBits || int64(b.BitLen()-1)*e.Int64() > MaxResultBits {
		return common.Number{}, common.ValueError("power", "result of %s ** %s is too large to compute exactly", b, e)
	}

	return common.BigInt(new(big.Int).Exp(b, e, nil)), nil
}

func floatPower(base, exponent float64) (common.Number, error) {
	if base == 0 && exponent < 0 {
		return common.Number{}, common.ValueError("power", "0.0 cannot be raised to a negative power")
	}
	if base < 0 && !gomath.IsInf(exponent, 0) && exponent != gomath.Trunc(exponent) {
		return common.Number{}, common.ValueError("power", "negative base with a fractional exponent has no real result")
	}

	result := gomath.Pow(base, exponent)
	if gomath.IsInf(result, 0) && !gomath.IsInf(base, 0) && !gomath.IsInf(exponent, 0) {
		return common.Number{}, common.ValueError("power", "result of %s ** %s is out of range",
			common.FormatFloat(base), common.FormatFloat(exponent))
	}
	return common.Float(result), nil
}
