//go:build windows

// Package webgpu implements the WebGPU execution engine for generated kernel programs.
// Uses go-webgpu (github.com/go-webgpu/webgpu) for zero-CGO WebGPU bindings.
package webgpu

import (
	"fmt"
	"sync"

	"github.com/born-ml/kernels/internal/kernel"
	"github.com/go-webgpu/webgpu/wgpu"
	"k8s.io/klog/v2"
)

// Backend compiles and dispatches kernel programs on a WebGPU device.
type Backend struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	// Shader and pipeline cache, keyed by kernel.Program.CacheKey.
	shaders   map[string]*wgpu.ShaderModule
	pipelines map[string]*wgpu.ComputePipeline
	mu        sync.RWMutex

	cacheStats struct {
		hits   uint64
		misses uint64
		mu     sync.Mutex
	}

	limits kernel.Limits
}

// Config holds the engine settings.
type Config struct {
	// Limits are applied to the programs the convenience methods (Reverse) build.
	Limits kernel.Limits
	// PowerPreference selects the adapter.
	PowerPreference wgpu.PowerPreference
}

// DefaultConfig returns the configuration used by New.
func DefaultConfig() Config {
	return Config{
		Limits:          kernel.DefaultLimits(),
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	}
}

// New creates a new WebGPU backend.
// Returns an error if WebGPU is not available or initialization fails.
func New() (*Backend, error) {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a new WebGPU backend with the given configuration.
func NewWithConfig(cfg Config) (backend *Backend, err error) {
	// Recover from panic if wgpu_native library is not found.
	defer func() {
		if r := recover(); r != nil {
			backend = nil
			err = fmt.Errorf("webgpu: native library not available: %v", r)
		}
	}()

	if initErr := wgpu.Init(); initErr != nil {
		return nil, fmt.Errorf("webgpu: failed to load native library: %w", initErr)
	}

	instance, instanceErr := wgpu.CreateInstance(nil)
	if instanceErr != nil {
		return nil, fmt.Errorf("webgpu: failed to create instance: %w", instanceErr)
	}

	adapter, adapterErr := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: cfg.PowerPreference,
	})
	if adapterErr != nil {
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to request adapter: %w", adapterErr)
	}

	device, deviceErr := adapter.RequestDevice(nil)
	if deviceErr != nil {
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to request device: %w", deviceErr)
	}

	queue := device.GetQueue()
	if queue == nil {
		device.Release()
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to get queue")
	}

	limits := cfg.Limits
	if limits.MaxWorkgroupsPerDimension <= 0 {
		limits = kernel.DefaultLimits()
	}
	klog.V(1).Infof("webgpu: backend ready (max %d workgroups per dimension)", limits.MaxWorkgroupsPerDimension)

	return &Backend{
		instance:  instance,
		adapter:   adapter,
		device:    device,
		queue:     queue,
		shaders:   make(map[string]*wgpu.ShaderModule),
		pipelines: make(map[string]*wgpu.ComputePipeline),
		limits:    limits,
	}, nil
}

// Release releases all WebGPU resources.
// Must be called when the backend is no longer needed.
func (b *Backend) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, p := range b.pipelines {
		p.Release()
	}
	b.pipelines = nil

	for _, s := range b.shaders {
		s.Release()
	}
	b.shaders = nil

	if b.queue != nil {
		b.queue.Release()
		b.queue = nil
	}
	if b.device != nil {
		b.device.Release()
		b.device = nil
	}
	if b.adapter != nil {
		b.adapter.Release()
		b.adapter = nil
	}
	if b.instance != nil {
		b.instance.Release()
		b.instance = nil
	}
}

// Name returns the backend name.
func (b *Backend) Name() string {
	return "WebGPU"
}

// Limits returns the dispatch limits programs built by this backend are sized for.
func (b *Backend) Limits() kernel.Limits {
	return b.limits
}

// CacheStats reports compiled-kernel cache usage.
type CacheStats struct {
	// Pipelines is the number of distinct programs compiled so far.
	Pipelines int
	Hits      uint64
	Misses    uint64
}

// CacheStats returns the current compiled-kernel cache statistics.
func (b *Backend) CacheStats() CacheStats {
	b.mu.RLock()
	pipelines := len(b.pipelines)
	b.mu.RUnlock()

	b.cacheStats.mu.Lock()
	defer b.cacheStats.mu.Unlock()
	return CacheStats{
		Pipelines: pipelines,
		Hits:      b.cacheStats.hits,
		Misses:    b.cacheStats.misses,
	}
}

// IsAvailable checks if WebGPU is available on this system.
func IsAvailable() (available bool) {
	// Recover from panic if wgpu_native library is not found.
	defer func() {
		if r := recover(); r != nil {
			available = false
		}
	}()

	if err := wgpu.Init(); err != nil {
		return false
	}
	instance, err := wgpu.CreateInstance(nil)
	if err != nil {
		return false
	}
	defer instance.Release()

	adapter, err := instance.RequestAdapter(nil)
	if err != nil {
		return false
	}
	adapter.Release()

	return true
}
