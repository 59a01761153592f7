//go:build windows

// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides the WebGPU engine that compiles and dispatches generated kernels.
//
// Compiled pipelines are cached per program cache key, so kernels for different shapes or
// axes never share a pipeline even though they share a shader key.
//
// Example:
//
//	import (
//	    "github.com/born-ml/kernels/backend/webgpu"
//	    "github.com/born-ml/kernels/tensor"
//	)
//
//	func main() {
//	    gpu, err := webgpu.New()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer gpu.Release()
//
//	    x, _ := tensor.FromFloat32(tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})
//	    y, err := gpu.Reverse(x, 0, 1)
//	}
package webgpu

import (
	internalwebgpu "github.com/born-ml/kernels/internal/backend/webgpu"
)

// Backend represents the WebGPU backend implementation.
type Backend = internalwebgpu.Backend

// Config holds the engine settings.
type Config = internalwebgpu.Config

// CacheStats reports compiled-kernel cache usage.
type CacheStats = internalwebgpu.CacheStats

// DefaultConfig returns the configuration used by New.
func DefaultConfig() Config {
	return internalwebgpu.DefaultConfig()
}

// New creates a new WebGPU backend.
//
// Returns an error if WebGPU initialization fails (e.g., no compatible GPU).
func New() (*Backend, error) {
	return internalwebgpu.New()
}

// NewWithConfig creates a new WebGPU backend with the given configuration.
func NewWithConfig(cfg Config) (*Backend, error) {
	return internalwebgpu.NewWithConfig(cfg)
}

// IsAvailable checks if WebGPU is available on the current system.
//
// Example:
//
//	if webgpu.IsAvailable() {
//	    gpu, _ := webgpu.New()
//	    y, _ = gpu.Reverse(x, 0)
//	} else {
//	    y, _ = cpu.New().Reverse(x, 0)
//	}
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}
