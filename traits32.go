// Copyright 2026 The fast-floats Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

//go:build !fastfloat_nonum

package fastfloat

import "github.com/chewxy/math32"

// Numeric-trait surface for F32. Everything here delegates to the identical
// operation on the inner value; none of it is relaxed. Build with the
// fastfloat_nonum tag to strip this file.

// IsZero reports whether x is the additive identity. Both zeros qualify.
func (x F32) IsZero() bool {
	return x == 0
}

// IsOne reports whether x is the multiplicative identity.
func (x F32) IsOne() bool {
	return x == 1
}

// IsNaN reports whether x is an IEEE 754 "not-a-number" value.
func (x F32) IsNaN() bool {
	return math32.IsNaN(float32(x))
}

// IsInf reports whether x is an infinity, according to sign. sign > 0 checks
// for positive infinity, sign < 0 for negative infinity, and sign == 0 for
// either.
func (x F32) IsInf(sign int) bool {
	return math32.IsInf(float32(x), sign)
}

// Signbit reports whether x is negative or negative zero.
func (x F32) Signbit() bool {
	return math32.Signbit(float32(x))
}

// Abs returns the absolute value of x.
func (x F32) Abs() F32 {
	return F32(math32.Abs(float32(x)))
}

// Floor returns the greatest integer value less than or equal to x.
func (x F32) Floor() F32 {
	return F32(math32.Floor(float32(x)))
}

// Ceil returns the least integer value greater than or equal to x.
func (x F32) Ceil() F32 {
	return F32(math32.Ceil(float32(x)))
}

// Trunc returns the integer value of x, rounding toward zero.
func (x F32) Trunc() F32 {
	return F32(math32.Trunc(float32(x)))
}

// Sqrt returns the square root of x.
func (x F32) Sqrt() F32 {
	return F32(math32.Sqrt(float32(x)))
}

// F64 converts x to the 64-bit wrapper. The conversion is exact.
func (x F32) F64() F64 {
	return F64(float64(float32(x)))
}
