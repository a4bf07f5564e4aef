package arith

import "math"

// Float64 primitives that have no operator form.

// Rem64 returns the floating-point remainder of x/y under the relaxed
// contract. For negative operands the result is whatever [math.Mod]
// produces; no stronger guarantee is made.
func Rem64(x, y float64) float64 {
	return math.Mod(x, y)
}

// Round64 rounds half away from zero. Rounding is always strict.
func Round64(x float64) float64 {
	return math.Round(x)
}
