//go:build windows

package webgpu

import (
	"github.com/born-ml/kernels/internal/kernel"
	"github.com/born-ml/kernels/internal/tensor"
)

// Reverse returns a copy of x with the elements along axes in reverse order, computed on the GPU.
func (b *Backend) Reverse(x *tensor.RawTensor, axes ...int) (*tensor.RawTensor, error) {
	program, err := kernel.NewReverseWithConfig(x.Shape(), axes, kernel.Config{
		DType:  x.DType(),
		Limits: b.limits,
	})
	if err != nil {
		return nil, err
	}
	return b.RunProgram(program, x)
}
