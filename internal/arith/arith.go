// Package arith implements the relaxed floating-point primitives backing the
// fastfloat wrapper types.
//
// Every operation carries the relaxed ("fast-math") contract: operands are
// assumed to be finite, and callers may reassociate or fuse adjacent
// operations. Results for NaN or infinite operands are unspecified. The Go
// toolchain has no scoped fast-math mode, so today these compile to ordinary
// strict instructions; the contract is what allows relaxed call sites (and
// future assembly fast paths) without an API change.
package arith

import "golang.org/x/exp/constraints"

// Add returns x + y under the relaxed contract.
func Add[T constraints.Float](x, y T) T {
	return x + y
}

// Sub returns x - y under the relaxed contract.
func Sub[T constraints.Float](x, y T) T {
	return x - y
}

// Mul returns x * y under the relaxed contract.
func Mul[T constraints.Float](x, y T) T {
	return x * y
}

// Div returns x / y under the relaxed contract. The divisor is assumed
// nonzero; a zero divisor produces a non-finite result, which the contract
// leaves unspecified.
func Div[T constraints.Float](x, y T) T {
	return x / y
}
