// Copyright 2026 The fast-floats Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package fastfloat provides relaxed ("fast-math") wrapper types for float32
// and float64.
//
// # Overview
//
// F32 and F64 are defined types with the same memory representation as the
// value they wrap. Converting in and out is an ordinary Go conversion and
// preserves every bit pattern, including NaN payloads, the sign of zero, and
// infinities. What the wrappers change is the contract of the five arithmetic
// operators (Add, Sub, Mul, Div, Mod): those are *relaxed*. The
// implementation may assume both operands are finite and may reassociate or
// fuse adjacent operations, so results involving NaN or infinite operands,
// or produced inside a reassociated reduction, are unspecified. This is the
// entire point of the types: they mark the expressions where that latitude
// is acceptable.
//
// For a single isolated operation on finite operands the result is the
// strict IEEE 754 result. Negation and Round are always strict. Comparison
// operators apply directly to the defined types with ordinary IEEE
// semantics, NaN non-reflexivity included.
//
// Because the underlying types are plain float32/float64, F32 and F64
// satisfy ~float32 | ~float64 constraints and can be dropped into generic
// numeric code unchanged.
//
// Example:
//
//	x := fastfloat.F64(2)
//	y := x.Add(fastfloat.F64(1)) // F64(3)
//	z := x.MulScalar(0.5)        // F64(1)
//
// The Sum and Dot reductions exploit the relaxed contract themselves: they
// run reassociated multi-accumulator loops, which a strict left-to-right
// fold would not permit.
//
// # Build tags
//
// Building with the fastfloat_nonum tag strips the numeric-trait surface
// (identity tests, classification, Abs/Floor/Ceil/Trunc/Sqrt, cross-width
// casts), leaving only construction, extraction, the arithmetic operators,
// and formatting.
package fastfloat
