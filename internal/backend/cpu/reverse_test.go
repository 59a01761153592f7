package cpu

import (
	"errors"
	"testing"

	"github.com/born-ml/kernels/internal/kernel"
	"github.com/born-ml/kernels/internal/parallel"
	"github.com/born-ml/kernels/internal/tensor"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iota32(n int) []float32 {
	values := make([]float32, n)
	for i := range values {
		values[i] = float32(i)
	}
	return values
}

func TestCPUBackend_Reverse(t *testing.T) {
	backend := New()

	tests := []struct {
		name  string
		shape tensor.Shape
		axes  []int
		want  []float32
	}{
		{"1D", tensor.Shape{5}, []int{0}, []float32{4, 3, 2, 1, 0}},
		{"1D no axes", tensor.Shape{3}, nil, []float32{0, 1, 2}},
		// [[0, 1, 2],
		//  [3, 4, 5]]
		{"2D rows", tensor.Shape{2, 3}, []int{0}, []float32{3, 4, 5, 0, 1, 2}},
		{"2D cols", tensor.Shape{2, 3}, []int{1}, []float32{2, 1, 0, 5, 4, 3}},
		{"2D both", tensor.Shape{2, 3}, []int{0, 1}, []float32{5, 4, 3, 2, 1, 0}},
		{"unit dim", tensor.Shape{3, 1}, []int{1}, []float32{0, 1, 2}},
		{"3D middle", tensor.Shape{2, 2, 2}, []int{1}, []float32{2, 3, 0, 1, 6, 7, 4, 5}},
		{"4D last", tensor.Shape{1, 2, 1, 3}, []int{3}, []float32{2, 1, 0, 5, 4, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := must.M1(tensor.FromFloat32(tt.shape, iota32(tt.shape.NumElements())))
			result, err := backend.Reverse(x, tt.axes...)
			require.NoError(t, err)
			assert.True(t, result.Shape().Equal(tt.shape))
			assert.Equal(t, tt.want, result.AsFloat32())
		})
	}
}

func TestCPUBackend_ReverseInt32(t *testing.T) {
	x := must.M1(tensor.FromInt32(tensor.Shape{2, 2}, []int32{1, 2, 3, 4}))
	result, err := New().Reverse(x, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []int32{4, 3, 2, 1}, result.AsInt32())
}

// Reversing the same axes twice restores the input.
func TestCPUBackend_ReverseTwiceIsIdentity(t *testing.T) {
	backend := New()
	shape := tensor.Shape{2, 3, 4, 5}
	x := must.M1(tensor.FromFloat32(shape, iota32(shape.NumElements())))
	once := must.M1(backend.Reverse(x, 0, 2, 3))
	twice := must.M1(backend.Reverse(once, 3, 2, 0))
	assert.Equal(t, x.AsFloat32(), twice.AsFloat32())
	assert.NotEqual(t, x.AsFloat32(), once.AsFloat32())
}

func TestCPUBackend_ReverseErrors(t *testing.T) {
	backend := New()

	x5 := must.M1(tensor.NewRaw(tensor.Shape{1, 1, 1, 1, 2}, tensor.Float32))
	_, err := backend.Reverse(x5, 4)
	var rankErr *kernel.UnsupportedRankError
	assert.True(t, errors.As(err, &rankErr))

	x := must.M1(tensor.NewRaw(tensor.Shape{2, 2}, tensor.Float32))
	_, err = backend.Reverse(x, 2)
	var axisErr *kernel.InvalidAxisError
	assert.True(t, errors.As(err, &axisErr))
}

func TestCPUBackend_RunReverseMismatch(t *testing.T) {
	backend := New()
	p := must.M1(kernel.NewReverse(tensor.Shape{2, 3}, []int{0}))

	_, err := backend.RunReverse(p, must.M1(tensor.NewRaw(tensor.Shape{3, 2}, tensor.Float32)))
	assert.Error(t, err)

	_, err = backend.RunReverse(p, must.M1(tensor.NewRaw(tensor.Shape{2, 3}, tensor.Int32)))
	assert.Error(t, err)
}

// The parallel path must produce the same result as the sequential one.
func TestCPUBackend_ReverseParallel(t *testing.T) {
	shape := tensor.Shape{3, 50, 70}
	x := must.M1(tensor.FromFloat32(shape, iota32(shape.NumElements())))

	sequential := must.M1(NewWithConfig(parallel.Sequential()).Reverse(x, 0, 2))
	concurrent := must.M1(NewWithConfig(parallel.Config{Enabled: true, NumWorkers: 7, MinChunkSize: 100}).Reverse(x, 0, 2))
	assert.Equal(t, sequential.AsFloat32(), concurrent.AsFloat32())
	// Output (0, 0, 69) reads input (2, 0, 0).
	assert.Equal(t, float32(2*50*70), sequential.AsFloat32()[69])
}
