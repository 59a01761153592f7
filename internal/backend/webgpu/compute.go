//go:build windows

package webgpu

import (
	"unsafe"

	"github.com/born-ml/kernels/internal/kernel"
	"github.com/go-webgpu/webgpu/wgpu"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// getOrCreatePipeline returns the compute pipeline for p, compiling p.UserCode() on first use.
//
// The cache is keyed by p.CacheKey(), never by p.ShaderKey() alone: programs of the same operation
// generate different source for different shapes and axes.
func (b *Backend) getOrCreatePipeline(p kernel.Program) (*wgpu.ComputePipeline, error) {
	key := p.CacheKey()

	b.mu.RLock()
	pipeline, exists := b.pipelines[key]
	b.mu.RUnlock()
	if exists {
		b.recordCacheAccess(true)
		return pipeline, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	// Another goroutine may have compiled it while we waited for the lock.
	if pipeline, exists := b.pipelines[key]; exists {
		b.recordCacheAccess(true)
		return pipeline, nil
	}
	b.recordCacheAccess(false)

	klog.V(2).Infof("webgpu: compiling %q (cache key %q)", p.ShaderKey(), key)
	shader := b.device.CreateShaderModuleWGSL(p.UserCode())
	if shader == nil {
		return nil, errors.Errorf("webgpu: failed to compile shader %q", key)
	}

	// Create compute pipeline with auto layout (nil layout)
	pipeline = b.device.CreateComputePipelineSimple(nil, shader, "main")
	if pipeline == nil {
		shader.Release()
		return nil, errors.Errorf("webgpu: failed to create pipeline for %q", key)
	}

	b.shaders[key] = shader
	b.pipelines[key] = pipeline
	return pipeline, nil
}

func (b *Backend) recordCacheAccess(hit bool) {
	b.cacheStats.mu.Lock()
	defer b.cacheStats.mu.Unlock()
	if hit {
		b.cacheStats.hits++
	} else {
		b.cacheStats.misses++
	}
}

// createBuffer creates a GPU buffer and uploads initial data.
func (b *Backend) createBuffer(data []byte, usage wgpu.BufferUsage) *wgpu.Buffer {
	size := uint64(len(data))

	// Create buffer with MappedAtCreation for initial data upload
	buffer := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            usage,
		Size:             size,
		MappedAtCreation: wgpu.True,
	})

	mappedPtr := buffer.GetMappedRange(0, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), size)
	copy(mappedSlice, data)
	buffer.Unmap()

	return buffer
}

// createUniformBuffer creates a uniform buffer with proper alignment.
// Uniform buffers require 16-byte alignment for struct fields.
func (b *Backend) createUniformBuffer(data []byte) *wgpu.Buffer {
	size := uint64(len(data))
	alignedSize := (size + 15) &^ 15 // Round up to 16-byte boundary

	padded := make([]byte, alignedSize)
	copy(padded, data)
	return b.createBuffer(padded, wgpu.BufferUsageUniform|wgpu.BufferUsageCopyDst)
}

// readBuffer reads data back from a GPU buffer to CPU memory.
// Uses a staging buffer since storage buffers can't be mapped directly.
func (b *Backend) readBuffer(srcBuffer *wgpu.Buffer, size uint64) ([]byte, error) {
	stagingBuffer := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
		Size:  size,
	})
	defer stagingBuffer.Release()

	encoder := b.device.CreateCommandEncoder(nil)
	encoder.CopyBufferToBuffer(srcBuffer, 0, stagingBuffer, 0, size)
	cmdBuffer := encoder.Finish(nil)
	b.queue.Submit(cmdBuffer)

	if err := stagingBuffer.MapAsync(b.device, wgpu.MapModeRead, 0, size); err != nil {
		return nil, errors.Wrap(err, "webgpu: failed to map staging buffer")
	}

	mappedPtr := stagingBuffer.GetMappedRange(0, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), size)
	result := make([]byte, size)
	copy(result, mappedSlice)
	stagingBuffer.Unmap()

	return result, nil
}
