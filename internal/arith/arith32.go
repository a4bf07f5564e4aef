package arith

import "github.com/chewxy/math32"

// Float32 primitives that have no operator form.

// Rem32 returns the floating-point remainder of x/y under the relaxed
// contract. For negative operands the result is whatever [math32.Mod]
// produces; no stronger guarantee is made.
func Rem32(x, y float32) float32 {
	return math32.Mod(x, y)
}

// Round32 rounds half away from zero. Rounding is always strict.
func Round32(x float32) float32 {
	return math32.Round(x)
}
