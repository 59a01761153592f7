package cpu

import (
	"fmt"

	"github.com/born-ml/kernels/internal/kernel"
	"github.com/born-ml/kernels/internal/parallel"
	"github.com/born-ml/kernels/internal/tensor"
)

// Reverse returns a copy of x with the elements along axes in reverse order.
// It accepts exactly the inputs kernel.NewReverse accepts and fails the same way.
func (cpu *CPUBackend) Reverse(x *tensor.RawTensor, axes ...int) (*tensor.RawTensor, error) {
	cfg := kernel.DefaultConfig()
	cfg.DType = x.DType()
	program, err := kernel.NewReverseWithConfig(x.Shape(), axes, cfg)
	if err != nil {
		return nil, err
	}
	return cpu.RunReverse(program, x)
}

// RunReverse evaluates a reverse program on x.
func (cpu *CPUBackend) RunReverse(p *kernel.ReverseProgram, x *tensor.RawTensor) (*tensor.RawTensor, error) {
	if !x.Shape().Equal(p.OutputShape()) {
		return nil, fmt.Errorf("reverse: input shape %v does not match program shape %v", x.Shape(), p.OutputShape())
	}
	if x.DType() != p.DType() {
		return nil, fmt.Errorf("reverse: input dtype %s does not match program dtype %s", x.DType(), p.DType())
	}

	result, err := tensor.NewRaw(p.OutputShape(), p.DType())
	if err != nil {
		return nil, fmt.Errorf("reverse: %w", err)
	}

	// Each output element is written by exactly one chunk.
	elemSize := p.DType().Size()
	src, dst := x.Data(), result.Data()
	parallel.Range(p.Size(), cpu.parallel, func(start, end int) {
		out := dst[start*elemSize : end*elemSize]
		for i := start; i < end; i++ {
			from := p.SourceIndex(i) * elemSize
			copy(out[(i-start)*elemSize:], src[from:from+elemSize])
		}
	})
	return result, nil
}
