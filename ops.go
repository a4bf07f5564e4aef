// Copyright 2026 The fast-floats Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package fastfloat

import "github.com/vkahl/fast-floats/internal/arith"

// Arithmetic on F32 and F64 comes in three operand shapes: wrapper op
// wrapper (Add), wrapper op plain value (AddScalar), and plain value op
// wrapper, which is the conversion form F64(s).Add(x). The Set* forms are
// combined assignment, defined exactly as *x = x.Op(y), and produce
// bit-identical results to the two-step form.
//
// Every arithmetic operator below is relaxed: operands are assumed finite,
// and the result is unspecified if either operand is NaN or infinite.

// Add returns x + y with relaxed semantics. The result is unspecified if
// either operand is NaN or infinite.
func (x F32) Add(y F32) F32 {
	return F32(arith.Add(float32(x), float32(y)))
}

// AddScalar returns x + s with relaxed semantics. The result is unspecified
// if either operand is NaN or infinite.
func (x F32) AddScalar(s float32) F32 {
	return x.Add(F32(s))
}

// Sub returns x - y with relaxed semantics. The result is unspecified if
// either operand is NaN or infinite.
func (x F32) Sub(y F32) F32 {
	return F32(arith.Sub(float32(x), float32(y)))
}

// SubScalar returns x - s with relaxed semantics. The result is unspecified
// if either operand is NaN or infinite.
func (x F32) SubScalar(s float32) F32 {
	return x.Sub(F32(s))
}

// Mul returns x * y with relaxed semantics. The result is unspecified if
// either operand is NaN or infinite.
func (x F32) Mul(y F32) F32 {
	return F32(arith.Mul(float32(x), float32(y)))
}

// MulScalar returns x * s with relaxed semantics. The result is unspecified
// if either operand is NaN or infinite.
func (x F32) MulScalar(s float32) F32 {
	return x.Mul(F32(s))
}

// Div returns x / y with relaxed semantics. The result is unspecified if
// either operand is NaN or infinite, or if y is zero.
func (x F32) Div(y F32) F32 {
	return F32(arith.Div(float32(x), float32(y)))
}

// DivScalar returns x / s with relaxed semantics. The result is unspecified
// if either operand is NaN or infinite, or if s is zero.
func (x F32) DivScalar(s float32) F32 {
	return x.Div(F32(s))
}

// Mod returns the floating-point remainder of x/y with relaxed semantics.
// The result is unspecified if either operand is NaN or infinite, and for
// negative operands carries no guarantee beyond what the underlying
// remainder primitive produces.
func (x F32) Mod(y F32) F32 {
	return F32(arith.Rem32(float32(x), float32(y)))
}

// ModScalar returns the floating-point remainder of x/s with relaxed
// semantics. See Mod for the contract.
func (x F32) ModScalar(s float32) F32 {
	return x.Mod(F32(s))
}

// SetAdd sets *x = x + y. See Add for the contract.
func (x *F32) SetAdd(y F32) {
	*x = x.Add(y)
}

// SetAddScalar sets *x = x + s. See Add for the contract.
func (x *F32) SetAddScalar(s float32) {
	*x = x.AddScalar(s)
}

// SetSub sets *x = x - y. See Sub for the contract.
func (x *F32) SetSub(y F32) {
	*x = x.Sub(y)
}

// SetSubScalar sets *x = x - s. See Sub for the contract.
func (x *F32) SetSubScalar(s float32) {
	*x = x.SubScalar(s)
}

// SetMul sets *x = x * y. See Mul for the contract.
func (x *F32) SetMul(y F32) {
	*x = x.Mul(y)
}

// SetMulScalar sets *x = x * s. See Mul for the contract.
func (x *F32) SetMulScalar(s float32) {
	*x = x.MulScalar(s)
}

// SetDiv sets *x = x / y. See Div for the contract.
func (x *F32) SetDiv(y F32) {
	*x = x.Div(y)
}

// SetDivScalar sets *x = x / s. See Div for the contract.
func (x *F32) SetDivScalar(s float32) {
	*x = x.DivScalar(s)
}

// SetMod sets *x = x mod y. See Mod for the contract.
func (x *F32) SetMod(y F32) {
	*x = x.Mod(y)
}

// SetModScalar sets *x = x mod s. See Mod for the contract.
func (x *F32) SetModScalar(s float32) {
	*x = x.ModScalar(s)
}

// Neg returns -x. Negation is always strict: it flips the sign bit and
// preserves everything else, including NaN payloads.
func (x F32) Neg() F32 {
	return -x
}

// Round returns x rounded to the nearest integer, half away from zero.
// Rounding is always strict.
func (x F32) Round() F32 {
	return F32(arith.Round32(float32(x)))
}

// Add returns x + y with relaxed semantics. The result is unspecified if
// either operand is NaN or infinite.
func (x F64) Add(y F64) F64 {
	return F64(arith.Add(float64(x), float64(y)))
}

// AddScalar returns x + s with relaxed semantics. The result is unspecified
// if either operand is NaN or infinite.
func (x F64) AddScalar(s float64) F64 {
	return x.Add(F64(s))
}

// Sub returns x - y with relaxed semantics. The result is unspecified if
// either operand is NaN or infinite.
func (x F64) Sub(y F64) F64 {
	return F64(arith.Sub(float64(x), float64(y)))
}

// SubScalar returns x - s with relaxed semantics. The result is unspecified
// if either operand is NaN or infinite.
func (x F64) SubScalar(s float64) F64 {
	return x.Sub(F64(s))
}

// Mul returns x * y with relaxed semantics. The result is unspecified if
// either operand is NaN or infinite.
func (x F64) Mul(y F64) F64 {
	return F64(arith.Mul(float64(x), float64(y)))
}

// MulScalar returns x * s with relaxed semantics. The result is unspecified
// if either operand is NaN or infinite.
func (x F64) MulScalar(s float64) F64 {
	return x.Mul(F64(s))
}

// Div returns x / y with relaxed semantics. The result is unspecified if
// either operand is NaN or infinite, or if y is zero.
func (x F64) Div(y F64) F64 {
	return F64(arith.Div(float64(x), float64(y)))
}

// DivScalar returns x / s with relaxed semantics. The result is unspecified
// if either operand is NaN or infinite, or if s is zero.
func (x F64) DivScalar(s float64) F64 {
	return x.Div(F64(s))
}

// Mod returns the floating-point remainder of x/y with relaxed semantics.
// The result is unspecified if either operand is NaN or infinite, and for
// negative operands carries no guarantee beyond what the underlying
// remainder primitive produces.
func (x F64) Mod(y F64) F64 {
	return F64(arith.Rem64(float64(x), float64(y)))
}

// ModScalar returns the floating-point remainder of x/s with relaxed
// semantics. See Mod for the contract.
func (x F64) ModScalar(s float64) F64 {
	return x.Mod(F64(s))
}

// SetAdd sets *x = x + y. See Add for the contract.
func (x *F64) SetAdd(y F64) {
	*x = x.Add(y)
}

// SetAddScalar sets *x = x + s. See Add for the contract.
func (x *F64) SetAddScalar(s float64) {
	*x = x.AddScalar(s)
}

// SetSub sets *x = x - y. See Sub for the contract.
func (x *F64) SetSub(y F64) {
	*x = x.Sub(y)
}

// SetSubScalar sets *x = x - s. See Sub for the contract.
func (x *F64) SetSubScalar(s float64) {
	*x = x.SubScalar(s)
}

// SetMul sets *x = x * y. See Mul for the contract.
func (x *F64) SetMul(y F64) {
	*x = x.Mul(y)
}

// SetMulScalar sets *x = x * s. See Mul for the contract.
func (x *F64) SetMulScalar(s float64) {
	*x = x.MulScalar(s)
}

// SetDiv sets *x = x / y. See Div for the contract.
func (x *F64) SetDiv(y F64) {
	*x = x.Div(y)
}

// SetDivScalar sets *x = x / s. See Div for the contract.
func (x *F64) SetDivScalar(s float64) {
	*x = x.DivScalar(s)
}

// SetMod sets *x = x mod y. See Mod for the contract.
func (x *F64) SetMod(y F64) {
	*x = x.Mod(y)
}

// SetModScalar sets *x = x mod s. See Mod for the contract.
func (x *F64) SetModScalar(s float64) {
	*x = x.ModScalar(s)
}

// Neg returns -x. Negation is always strict: it flips the sign bit and
// preserves everything else, including NaN payloads.
func (x F64) Neg() F64 {
	return -x
}

// Round returns x rounded to the nearest integer, half away from zero.
// Rounding is always strict.
func (x F64) Round() F64 {
	return F64(arith.Round64(float64(x)))
}
