package operations

import (
	gomath "math"
	"math/big"

	"github.com/GriffinCanCode/mathops/internal/providers/math/common"
)

// Factorial returns n! computed iteratively with exact arithmetic.
// 0! is 1. Floats are rejected even when integral.
func Factorial(n common.Number) (*big.Int, error) {
	if n.IsFloat() {
		return nil, common.TypeError("factorial", "Input must be an integer")
	}
	if n.Sign() < 0 {
		return nil, common.ValueError("factorial", "Factorial is only defined for non-negative integers")
	}
	limit, ok := n.Int64()
	if !ok {
		return nil, common.ValueError("factorial", "Input %s is too large", n)
	}

	result := big.NewInt(1)
	factor := new(big.Int)
	for i := int64(2); i <= limit; i++ {
		result.Mul(result, factor.SetInt64(i))
	}
	return result, nil
}

// Fibonacci returns the first n terms of 0, 1, 1, 2, 3, 5, ...
func Fibonacci(n common.Number) ([]*big.Int, error) {
	if n.IsFloat() {
		return nil, common.TypeError("fibonacci", "Input must be an integer")
	}
	if n.Sign() <= 0 {
		return nil, common.ValueError("fibonacci", "Input must be a positive integer")
	}
	count, ok := n.Int64()
	if !ok || count > gomath.MaxInt32 {
		return nil, common.ValueError("fibonacci", "Input %s is too large", n)
	}

	sequence := make([]*big.Int, 0, min(count, 1024))
	sequence = append(sequence, big.NewInt(0))
	if count == 1 {
		return sequence, nil
	}
	sequence = append(sequence, big.NewInt(1))

	for i := int64(2); i < count; i++ {
		next := new(big.Int).Add(sequence[i-1], sequence[i-2])
		sequence = append(sequence, next)
	}
	return sequence, nil
}

// IsPrime reports whether n is prime using trial division by odd
// candidates up to ⌊√n⌋.
func IsPrime(n common.Number) (bool, error) {
	if n.IsFloat() {
		return false, common.TypeError("is_prime", "Input must be an integer")
	}
	if common.Compare(n, common.Int(2)) < 0 {
		return false, common.ValueError("is_prime", "Prime numbers are defined for integers >= 2")
	}
	v, ok := n.Int64()
	if !ok {
		return false, common.ValueError("is_prime", "Input %s is too large for trial division", n)
	}
	return trialDivision(uint64(v)), nil
}

func trialDivision(n uint64) bool {
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}

	limit := isqrt(n)
	for i := uint64(3); i <= limit; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// isqrt returns ⌊√n⌋, correcting float rounding.
func isqrt(n uint64) uint64 {
	r := uint64(gomath.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
