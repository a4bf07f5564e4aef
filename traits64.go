// Copyright 2026 The fast-floats Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

//go:build !fastfloat_nonum

package fastfloat

import "math"

// Numeric-trait surface for F64, mirroring traits32.go.

// IsZero reports whether x is the additive identity. Both zeros qualify.
func (x F64) IsZero() bool {
	return x == 0
}

// IsOne reports whether x is the multiplicative identity.
func (x F64) IsOne() bool {
	return x == 1
}

// IsNaN reports whether x is an IEEE 754 "not-a-number" value.
func (x F64) IsNaN() bool {
	return math.IsNaN(float64(x))
}

// IsInf reports whether x is an infinity, according to sign. sign > 0 checks
// for positive infinity, sign < 0 for negative infinity, and sign == 0 for
// either.
func (x F64) IsInf(sign int) bool {
	return math.IsInf(float64(x), sign)
}

// Signbit reports whether x is negative or negative zero.
func (x F64) Signbit() bool {
	return math.Signbit(float64(x))
}

// Abs returns the absolute value of x.
func (x F64) Abs() F64 {
	return F64(math.Abs(float64(x)))
}

// Floor returns the greatest integer value less than or equal to x.
func (x F64) Floor() F64 {
	return F64(math.Floor(float64(x)))
}

// Ceil returns the least integer value greater than or equal to x.
func (x F64) Ceil() F64 {
	return F64(math.Ceil(float64(x)))
}

// Trunc returns the integer value of x, rounding toward zero.
func (x F64) Trunc() F64 {
	return F64(math.Trunc(float64(x)))
}

// Sqrt returns the square root of x.
func (x F64) Sqrt() F64 {
	return F64(math.Sqrt(float64(x)))
}

// F32 converts x to the 32-bit wrapper, rounding to nearest.
func (x F64) F32() F32 {
	return F32(float32(float64(x)))
}
