// Copyright 2026 The fast-floats Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package fastfloat

import (
	"fmt"
	"strconv"
)

// Formatting delegates entirely to the inner value. The numeric verbs
// (%e, %E, %f, %g) format the wrappers exactly as they format the plain
// float, via fmt's kind-based handling; String covers %v and %s with the
// same shortest-form output fmt would produce for the inner value.

// String returns the shortest decimal representation that parses back to x.
func (x F32) String() string {
	return strconv.FormatFloat(float64(x), 'g', -1, 32)
}

// String returns the shortest decimal representation that parses back to x.
func (x F64) String() string {
	return strconv.FormatFloat(float64(x), 'g', -1, 64)
}

// MarshalText implements [encoding.TextMarshaler].
func (x F32) MarshalText() ([]byte, error) {
	return strconv.AppendFloat(nil, float64(x), 'g', -1, 32), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]. It accepts anything
// [strconv.ParseFloat] does, including "NaN" and signed infinities.
func (x *F32) UnmarshalText(text []byte) error {
	v, err := strconv.ParseFloat(string(text), 32)
	if err != nil {
		return fmt.Errorf("fastfloat: parse F32: %w", err)
	}
	*x = F32(v)
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (x F64) MarshalText() ([]byte, error) {
	return strconv.AppendFloat(nil, float64(x), 'g', -1, 64), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]. It accepts anything
// [strconv.ParseFloat] does, including "NaN" and signed infinities.
func (x *F64) UnmarshalText(text []byte) error {
	v, err := strconv.ParseFloat(string(text), 64)
	if err != nil {
		return fmt.Errorf("fastfloat: parse F64: %w", err)
	}
	*x = F64(v)
	return nil
}
