package fastfloat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reduction tests use integer-valued inputs so every association of the
// relaxed kernels yields the same exact result.

func TestSum(t *testing.T) {
	xs := make([]float64, 100)
	for i := range xs {
		xs[i] = float64(i + 1)
	}
	assert.Equal(t, float64(5050), Sum(xs))

	// Tail path: length not a multiple of the unroll width.
	assert.Equal(t, float64(28), Sum(xs[:7]))
	assert.Equal(t, float64(1), Sum(xs[:1]))
	assert.Equal(t, float64(0), Sum[float64](nil))
	assert.Equal(t, float64(0), Sum([]float64{}))
}

func TestSum32(t *testing.T) {
	xs := []float32{1, 2, 3, 4, 5, 6}
	assert.Equal(t, float32(21), Sum(xs))
}

// TestSumWrapped checks that the kernels accept wrapper slices via the
// underlying-type constraint.
func TestSumWrapped(t *testing.T) {
	assert.Equal(t, F64(10), Sum([]F64{1, 2, 3, 4}))
	assert.Equal(t, F32(6), Sum([]F32{1, 2, 3}))
}

func TestDot(t *testing.T) {
	xs := []float64{1, 2, 3}
	ys := []float64{4, 5, 6}
	assert.Equal(t, float64(32), Dot(xs, ys))

	assert.Equal(t, float64(0), Dot[float64](nil, nil))
	assert.Equal(t, float64(8), Dot([]float64{2}, []float64{4}))
	assert.Equal(t, F64(32), Dot([]F64{1, 2, 3}, []F64{4, 5, 6}))
}

func TestDotLengthMismatch(t *testing.T) {
	require.Panics(t, func() {
		Dot([]float64{1, 2}, []float64{1})
	})
}
