// Copyright 2026 The fast-floats Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package fastfloat

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/vkahl/fast-floats/internal/arith"
)

// Reductions built on the relaxed contract. A strict fold must accumulate
// left to right; these kernels reassociate into independent accumulators,
// which is exactly the latitude relaxed arithmetic grants. Results may
// therefore differ from a sequential fold by rounding, and are unspecified
// if any element is NaN or infinite.
//
// The ~float32 | ~float64 constraint means plain float slices and []F32 /
// []F64 are all accepted.

// Sum returns the sum of xs with relaxed semantics. An empty slice sums to
// zero. Elements are assumed finite; the result is otherwise unspecified.
func Sum[T constraints.Float](xs []T) T {
	var s0, s1, s2, s3 T
	i := 0
	for ; i+4 <= len(xs); i += 4 {
		s0 = arith.Add(s0, xs[i])
		s1 = arith.Add(s1, xs[i+1])
		s2 = arith.Add(s2, xs[i+2])
		s3 = arith.Add(s3, xs[i+3])
	}
	for ; i < len(xs); i++ {
		s0 = arith.Add(s0, xs[i])
	}
	return arith.Add(arith.Add(s0, s1), arith.Add(s2, s3))
}

// Dot returns the dot product of xs and ys with relaxed semantics. Elements
// are assumed finite; the result is otherwise unspecified. Panics if the
// slices have different lengths.
func Dot[T constraints.Float](xs, ys []T) T {
	if len(xs) != len(ys) {
		panic(fmt.Sprintf("fastfloat: dot: length mismatch %d vs %d", len(xs), len(ys)))
	}
	var s0, s1 T
	i := 0
	for ; i+2 <= len(xs); i += 2 {
		s0 = arith.Add(s0, arith.Mul(xs[i], ys[i]))
		s1 = arith.Add(s1, arith.Mul(xs[i+1], ys[i+1]))
	}
	if i < len(xs) {
		s0 = arith.Add(s0, arith.Mul(xs[i], ys[i]))
	}
	return arith.Add(s0, s1)
}
