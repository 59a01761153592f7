package kernel

import (
	"fmt"
	"math"

	"github.com/born-ml/kernels/internal/tensor"
)

// DefaultMaxWorkgroupsPerDimension is the WebGPU default for maxComputeWorkgroupsPerDimension.
const DefaultMaxWorkgroupsPerDimension = 65535

// WorkgroupSize is the number of threads of a workgroup along x, y and z.
type WorkgroupSize [3]int

// DefaultWorkgroupSize is used by kernels that flatten their output into a linear index space.
var DefaultWorkgroupSize = WorkgroupSize{64, 1, 1}

// Threads returns the number of threads in one workgroup.
func (w WorkgroupSize) Threads() int {
	return w[0] * w[1] * w[2]
}

// Limits are the device limits that constrain dispatch sizing.
type Limits struct {
	// MaxWorkgroupsPerDimension bounds each of the three dispatch grid dimensions.
	MaxWorkgroupsPerDimension int
}

// DefaultLimits returns the limits every WebGPU implementation guarantees.
func DefaultLimits() Limits {
	return Limits{MaxWorkgroupsPerDimension: DefaultMaxWorkgroupsPerDimension}
}

// DispatchLayout lists which output dimensions are folded into each dispatch axis.
type DispatchLayout struct {
	X []int
	Y []int
	Z []int
}

// FlatDispatchLayout folds every dimension of shape into the X axis.
func FlatDispatchLayout(shape tensor.Shape) DispatchLayout {
	x := make([]int, len(shape))
	for i := range x {
		x[i] = i
	}
	return DispatchLayout{X: x}
}

// Dispatch is the number of workgroups launched along x, y and z.
type Dispatch [3]int

// Workgroups returns the total number of workgroups in the grid.
func (d Dispatch) Workgroups() int {
	return d[0] * d[1] * d[2]
}

// Invocations returns the total number of threads launched for workgroup size wg.
func (d Dispatch) Invocations(wg WorkgroupSize) int {
	return d.Workgroups() * wg.Threads()
}

// ComputeDispatch sizes the dispatch grid so that every element of shape gets a thread.
//
// Each axis gets ceil(product of its dims / workgroup size) workgroups. A flat layout whose X count
// is above limits.MaxWorkgroupsPerDimension is folded into Y and then Z; kernels must therefore
// derive their linear index from workgroup_id and num_workgroups instead of global_invocation_id.x.
//
// That linear index is an i32, so a grid whose last thread index is above math.MaxInt32 is rejected
// with ErrDispatchTooLarge even when every axis is within limits.
func ComputeDispatch(layout DispatchLayout, shape tensor.Shape, wg WorkgroupSize, limits Limits) (Dispatch, error) {
	for axis, n := range wg {
		if n <= 0 {
			return Dispatch{}, fmt.Errorf("%w: %v has %d threads along axis %d", ErrInvalidWorkgroupSize, wg, n, axis)
		}
	}
	maxDim := limits.MaxWorkgroupsPerDimension
	if maxDim <= 0 {
		maxDim = DefaultMaxWorkgroupsPerDimension
	}

	d := Dispatch{
		axisWorkgroups(layout.X, shape, wg[0]),
		axisWorkgroups(layout.Y, shape, wg[1]),
		axisWorkgroups(layout.Z, shape, wg[2]),
	}

	if len(layout.Y) == 0 && len(layout.Z) == 0 && d[0] > maxDim {
		total := d[0]
		d[1] = ceilDiv(total, maxDim)
		d[0] = ceilDiv(total, d[1])
		if d[1] > maxDim {
			d[2] = ceilDiv(d[1], maxDim)
			d[1] = ceilDiv(ceilDiv(total, d[0]), d[2])
		}
	}

	for axis, n := range d {
		if n > maxDim {
			return Dispatch{}, fmt.Errorf("%w: %d workgroups along axis %d, limit %d", ErrDispatchTooLarge, n, axis, maxDim)
		}
	}
	if threads := d.Invocations(wg); threads-1 > math.MaxInt32 {
		return Dispatch{}, fmt.Errorf("%w: %v launches %d threads, last index overflows i32", ErrDispatchTooLarge, d, threads)
	}
	return d, nil
}

func axisWorkgroups(dims []int, shape tensor.Shape, size int) int {
	if len(dims) == 0 {
		return 1
	}
	n := 1
	for _, dim := range dims {
		n *= shape[dim]
	}
	return ceilDiv(n, size)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
