// Copyright 2026 The fast-floats Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package fastfloat

// F32 is a float32 with relaxed arithmetic semantics. It has the same memory
// layout as float32; conversion in either direction preserves the exact bit
// pattern. The zero value is the additive identity.
type F32 float32

// F64 is a float64 with relaxed arithmetic semantics. It has the same memory
// layout as float64; conversion in either direction preserves the exact bit
// pattern. The zero value is the additive identity.
type F64 float64

// Float32 returns the wrapped value unchanged.
func (x F32) Float32() float32 {
	return float32(x)
}

// Float64 returns the wrapped value unchanged.
func (x F64) Float64() float64 {
	return float64(x)
}
