// Package cpu implements the host reference backend. It evaluates generated kernel programs
// element by element, using the same coordinate mapping the GPU code is rendered from.
package cpu

import "github.com/born-ml/kernels/internal/parallel"

// CPUBackend runs kernel programs on the host.
type CPUBackend struct {
	parallel parallel.Config
}

// New creates a new CPU backend that spreads large outputs over all CPUs.
func New() *CPUBackend {
	return NewWithConfig(parallel.DefaultConfig())
}

// NewWithConfig creates a CPU backend with explicit parallelism settings.
func NewWithConfig(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{parallel: cfg}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}
