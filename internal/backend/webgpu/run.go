//go:build windows

package webgpu

import (
	"encoding/binary"

	"github.com/born-ml/kernels/internal/kernel"
	"github.com/born-ml/kernels/internal/tensor"
	"github.com/go-webgpu/webgpu/wgpu"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// RunProgram compiles (once per cache key) and dispatches p, one input tensor per entry of
// p.VariableNames(), and returns the output read back from the device.
//
// Bindings follow kernel.Preamble: output at 0, inputs from 1, the size uniform last.
func (b *Backend) RunProgram(p kernel.Program, inputs ...*tensor.RawTensor) (*tensor.RawTensor, error) {
	names := p.VariableNames()
	if len(inputs) != len(names) {
		return nil, errors.Errorf("webgpu: %s expects %d inputs %v, got %d", p.ShaderKey(), len(names), names, len(inputs))
	}
	shapes := p.InputShapes()
	for i, input := range inputs {
		if !input.Shape().Equal(shapes[i]) {
			return nil, errors.Errorf("webgpu: %s input %q has shape %v, program expects %v", p.ShaderKey(), names[i], input.Shape(), shapes[i])
		}
		if input.DType() != p.DType() {
			return nil, errors.Errorf("webgpu: %s input %q has dtype %s, program expects %s", p.ShaderKey(), names[i], input.DType(), p.DType())
		}
	}

	pipeline, err := b.getOrCreatePipeline(p)
	if err != nil {
		return nil, err
	}

	result, err := tensor.NewRaw(p.OutputShape(), p.DType())
	if err != nil {
		return nil, errors.Wrapf(err, "webgpu: %s output", p.ShaderKey())
	}
	//nolint:gosec // G115: Safe conversion, ByteSize() returns non-negative int
	resultSize := uint64(result.ByteSize())
	bufferResult := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst,
		Size:  resultSize,
	})
	defer bufferResult.Release()

	entries := make([]wgpu.BindGroupEntry, 0, len(inputs)+2)
	entries = append(entries, wgpu.BufferBindingEntry(0, bufferResult, 0, resultSize))
	for i, input := range inputs {
		buffer := b.createBuffer(input.Data(), wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
		defer buffer.Release()
		//nolint:gosec // G115: Safe conversion, binding index and ByteSize() are small non-negative ints
		entries = append(entries, wgpu.BufferBindingEntry(uint32(i+1), buffer, 0, uint64(input.ByteSize())))
	}

	// Uniforms { size: i32 }
	params := make([]byte, kernel.UniformsSize)
	//nolint:gosec // G115: Safe conversion, program construction bounds Size() to MaxInt32
	binary.LittleEndian.PutUint32(params[0:4], uint32(p.Size()))
	bufferParams := b.createUniformBuffer(params)
	defer bufferParams.Release()
	//nolint:gosec // G115: Safe conversion, binding index is a small non-negative int
	entries = append(entries, wgpu.BufferBindingEntry(uint32(len(inputs)+1), bufferParams, 0, kernel.UniformsSize))

	bindGroupLayout := pipeline.GetBindGroupLayout(0)
	bindGroup := b.device.CreateBindGroupSimple(bindGroupLayout, entries)
	defer bindGroup.Release()

	encoder := b.device.CreateCommandEncoder(nil)
	computePass := encoder.BeginComputePass(nil)
	computePass.SetPipeline(pipeline)
	computePass.SetBindGroup(0, bindGroup, nil)

	dispatch := p.Dispatch()
	klog.V(3).Infof("webgpu: dispatch %s %v workgroups of %v", p.CacheKey(), dispatch, p.WorkgroupSize())
	//nolint:gosec // G115: Safe conversion, dispatch sizes are bounded by device limits
	computePass.DispatchWorkgroups(uint32(dispatch[0]), uint32(dispatch[1]), uint32(dispatch[2]))
	computePass.End()

	cmdBuffer := encoder.Finish(nil)
	b.queue.Submit(cmdBuffer)

	data, err := b.readBuffer(bufferResult, resultSize)
	if err != nil {
		return nil, err
	}
	copy(result.Data(), data)
	return result, nil
}
