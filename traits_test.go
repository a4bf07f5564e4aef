//go:build !fastfloat_nonum

package fastfloat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestIdentities checks the additive and multiplicative identity tests,
// which delegate to the inner value. The zero value of the wrappers is the
// additive identity.
func TestIdentities(t *testing.T) {
	var zero64 F64
	assert.True(t, zero64.IsZero())
	assert.True(t, F64(0).IsZero())
	assert.True(t, F64(math.Copysign(0, -1)).IsZero(), "negative zero is still zero")
	assert.False(t, F64(1).IsZero())

	assert.True(t, F64(1).IsOne())
	assert.False(t, F64(0).IsOne())
	assert.False(t, F64(math.NaN()).IsOne())

	assert.True(t, F32(0).IsZero())
	assert.True(t, F32(1).IsOne())
	assert.False(t, F32(2).IsOne())
}

func TestClassification64(t *testing.T) {
	assert.True(t, F64(math.NaN()).IsNaN())
	assert.False(t, F64(1).IsNaN())

	assert.True(t, F64(math.Inf(1)).IsInf(1))
	assert.True(t, F64(math.Inf(-1)).IsInf(-1))
	assert.True(t, F64(math.Inf(-1)).IsInf(0))
	assert.False(t, F64(math.Inf(1)).IsInf(-1))
	assert.False(t, F64(1).IsInf(0))

	assert.True(t, F64(-1).Signbit())
	assert.True(t, F64(math.Copysign(0, -1)).Signbit())
	assert.False(t, F64(0).Signbit())
}

func TestClassification32(t *testing.T) {
	assert.True(t, F32(math.Float32frombits(0x7fc00000)).IsNaN())
	assert.True(t, F32(math.Float32frombits(0x7f800000)).IsInf(1))
	assert.True(t, F32(math.Float32frombits(0xff800000)).IsInf(0))
	assert.True(t, F32(-2.5).Signbit())
	assert.False(t, F32(2.5).Signbit())
}

// TestFloatMethods checks the float-trait delegations: each result must be
// bit-identical to the plain operation on the inner value.
func TestFloatMethods(t *testing.T) {
	assert.Equal(t, F64(2.5), F64(-2.5).Abs())
	assert.Equal(t, F64(-3), F64(-2.5).Floor())
	assert.Equal(t, F64(-2), F64(-2.5).Ceil())
	assert.Equal(t, F64(-2), F64(-2.5).Trunc())
	assert.Equal(t, F64(3), F64(9).Sqrt())
	assert.True(t, F64(-1).Sqrt().IsNaN())

	assert.Equal(t, F32(2.5), F32(-2.5).Abs())
	assert.Equal(t, F32(-3), F32(-2.5).Floor())
	assert.Equal(t, F32(-2), F32(-2.5).Ceil())
	assert.Equal(t, F32(-2), F32(-2.5).Trunc())
	assert.Equal(t, F32(3), F32(9).Sqrt())
}

// TestCrossWidthCasts checks the numeric casts between the two wrappers.
func TestCrossWidthCasts(t *testing.T) {
	assert.Equal(t, F64(1.5), F32(1.5).F64())
	assert.Equal(t, F32(1.5), F64(1.5).F32())

	// Widening is exact for any float32 value.
	v := F32(math.Float32frombits(0x00000001))
	assert.Equal(t, math.Float64bits(float64(v.Float32())), math.Float64bits(v.F64().Float64()))

	// Narrowing rounds to nearest.
	assert.Equal(t, F32(float32(0.1)), F64(0.1).F32())
}
