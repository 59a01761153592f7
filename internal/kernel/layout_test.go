package kernel

import (
	"math"
	"testing"

	"github.com/born-ml/kernels/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatDispatchLayout(t *testing.T) {
	layout := FlatDispatchLayout(tensor.Shape{2, 3, 4})
	assert.Equal(t, []int{0, 1, 2}, layout.X)
	assert.Empty(t, layout.Y)
	assert.Empty(t, layout.Z)
}

func TestComputeDispatch(t *testing.T) {
	tests := []struct {
		name  string
		shape tensor.Shape
		want  Dispatch
	}{
		{"single element", tensor.Shape{1}, Dispatch{1, 1, 1}},
		{"one workgroup", tensor.Shape{2, 32}, Dispatch{1, 1, 1}},
		{"ragged tail", tensor.Shape{1000}, Dispatch{16, 1, 1}},
		{"exact multiple", tensor.Shape{4, 4, 4, 4}, Dispatch{4, 1, 1}},
		{"folded into y", tensor.Shape{65535*64 + 1}, Dispatch{32768, 2, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeDispatch(FlatDispatchLayout(tt.shape), tt.shape, DefaultWorkgroupSize, DefaultLimits())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeDispatch_FoldsIntoZ(t *testing.T) {
	shape := tensor.Shape{64 * 100}
	got, err := ComputeDispatch(FlatDispatchLayout(shape), shape, DefaultWorkgroupSize, Limits{MaxWorkgroupsPerDimension: 5})
	require.NoError(t, err)
	assert.Equal(t, Dispatch{5, 5, 4}, got)
}

func TestComputeDispatch_TooLarge(t *testing.T) {
	shape := tensor.Shape{64 * 100}
	_, err := ComputeDispatch(FlatDispatchLayout(shape), shape, DefaultWorkgroupSize, Limits{MaxWorkgroupsPerDimension: 4})
	assert.ErrorIs(t, err, ErrDispatchTooLarge)
}

func TestComputeDispatch_ZeroLimitUsesDefault(t *testing.T) {
	shape := tensor.Shape{1000}
	got, err := ComputeDispatch(FlatDispatchLayout(shape), shape, DefaultWorkgroupSize, Limits{})
	require.NoError(t, err)
	assert.Equal(t, Dispatch{16, 1, 1}, got)
}

// Every element must get a thread and no grid dimension may exceed the limit.
func TestComputeDispatch_Covers(t *testing.T) {
	const limit = 7
	wg := WorkgroupSize{4, 1, 1}
	for n := 1; n <= limit*limit*limit*wg.Threads(); n++ {
		shape := tensor.Shape{n}
		d, err := ComputeDispatch(FlatDispatchLayout(shape), shape, wg, Limits{MaxWorkgroupsPerDimension: limit})
		require.NoError(t, err, "n=%d", n)
		require.GreaterOrEqual(t, d.Invocations(wg), n, "n=%d dispatch=%v", n, d)
		for axis, count := range d {
			require.LessOrEqual(t, count, limit, "n=%d axis=%d dispatch=%v", n, axis, d)
			require.Positive(t, count, "n=%d axis=%d", n, axis)
		}
	}
}

func TestComputeDispatch_MultiAxisLayout(t *testing.T) {
	shape := tensor.Shape{10, 20, 3}
	layout := DispatchLayout{X: []int{1}, Y: []int{0}, Z: []int{2}}
	got, err := ComputeDispatch(layout, shape, WorkgroupSize{8, 4, 1}, DefaultLimits())
	require.NoError(t, err)
	assert.Equal(t, Dispatch{3, 3, 3}, got)
}

func TestComputeDispatch_InvalidWorkgroupSize(t *testing.T) {
	shape := tensor.Shape{100}
	for _, wg := range []WorkgroupSize{{0, 1, 1}, {64, 0, 1}, {64, 1, -1}} {
		_, err := ComputeDispatch(FlatDispatchLayout(shape), shape, wg, DefaultLimits())
		assert.ErrorIs(t, err, ErrInvalidWorkgroupSize, "wg=%v", wg)
	}
}

// Kernels index threads with an i32, so the last launched thread must stay within math.MaxInt32.
func TestComputeDispatch_ThreadIndexFitsInt32(t *testing.T) {
	// Folding math.MaxInt32 elements into y rounds the grid up to [65409 513 1]: 2147508288 threads.
	shape := tensor.Shape{math.MaxInt32}
	_, err := ComputeDispatch(FlatDispatchLayout(shape), shape, DefaultWorkgroupSize, DefaultLimits())
	assert.ErrorIs(t, err, ErrDispatchTooLarge)

	shape = tensor.Shape{math.MaxInt32 - 100000}
	d, err := ComputeDispatch(FlatDispatchLayout(shape), shape, DefaultWorkgroupSize, DefaultLimits())
	require.NoError(t, err)
	assert.Equal(t, Dispatch{65533, 512, 1}, d)
	assert.LessOrEqual(t, d.Invocations(DefaultWorkgroupSize)-1, math.MaxInt32)
}
