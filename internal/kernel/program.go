// Package kernel generates WGSL compute programs for tensor operations together with the
// dispatch geometry needed to launch them.
//
// A program is an immutable value built by a validating constructor such as NewReverse. The
// execution engine compiles UserCode once per CacheKey, binds one storage buffer per entry of
// VariableNames plus the output and the size uniform, and dispatches Dispatch workgroups.
package kernel

import "github.com/born-ml/kernels/internal/tensor"

// Program describes a generated compute kernel.
type Program interface {
	// ShaderKey names the operation. It does not vary with shape, so it must not be used
	// alone as a compiled-kernel cache key.
	ShaderKey() string
	// CacheKey identifies the generated source text: equal keys imply identical UserCode.
	CacheKey() string
	// UserCode returns the complete WGSL module.
	UserCode() string

	OutputShape() tensor.Shape
	InputShapes() []tensor.Shape
	VariableNames() []string
	DType() tensor.DataType

	WorkgroupSize() WorkgroupSize
	DispatchLayout() DispatchLayout
	Dispatch() Dispatch

	// Size is the value bound to the size uniform: the number of output elements.
	Size() int
}
