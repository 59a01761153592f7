// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package kernel

import (
	"github.com/born-ml/kernels/internal/kernel"
	"github.com/born-ml/kernels/tensor"
)

// MaxRank is the highest tensor rank kernels are generated for.
const MaxRank = kernel.MaxRank

// Program describes a generated compute kernel.
type Program = kernel.Program

// ReverseProgram reverses a tensor along a set of axes.
type ReverseProgram = kernel.ReverseProgram

// Config controls program generation.
type Config = kernel.Config

// Limits are the device limits that constrain dispatch sizing.
type Limits = kernel.Limits

// WorkgroupSize is the number of threads of a workgroup along x, y and z.
type WorkgroupSize = kernel.WorkgroupSize

// Dispatch is the number of workgroups launched along x, y and z.
type Dispatch = kernel.Dispatch

// DispatchLayout lists which output dimensions are folded into each dispatch axis.
type DispatchLayout = kernel.DispatchLayout

// CoordExpr computes one input coordinate from the output coordinates of a thread.
type CoordExpr = kernel.CoordExpr

// Coordinate expressions.
type (
	PassThrough = kernel.PassThrough
	Reflect     = kernel.Reflect
)

// Errors.
type (
	UnsupportedRankError = kernel.UnsupportedRankError
	InvalidAxisError     = kernel.InvalidAxisError
)

// Sentinel errors.
var (
	ErrInvalidShape     = kernel.ErrInvalidShape
	ErrUnsupportedDType = kernel.ErrUnsupportedDType
	ErrDispatchTooLarge = kernel.ErrDispatchTooLarge

	ErrInvalidWorkgroupSize = kernel.ErrInvalidWorkgroupSize
)

// SupportedRanks lists the tensor ranks kernels can be generated for.
func SupportedRanks() []int {
	return kernel.SupportedRanks()
}

// DefaultConfig returns float32 elements and the WebGPU default limits.
func DefaultConfig() Config {
	return kernel.DefaultConfig()
}

// NewReverse creates a float32 reverse program for the given shape and axes.
func NewReverse(shape tensor.Shape, axes []int) (*ReverseProgram, error) {
	return kernel.NewReverse(shape, axes)
}

// NewReverseWithConfig creates a reverse program with an explicit configuration.
func NewReverseWithConfig(shape tensor.Shape, axes []int, cfg Config) (*ReverseProgram, error) {
	return kernel.NewReverseWithConfig(shape, axes, cfg)
}

// FlatDispatchLayout folds every dimension of shape into the X dispatch axis.
func FlatDispatchLayout(shape tensor.Shape) DispatchLayout {
	return kernel.FlatDispatchLayout(shape)
}

// ComputeDispatch sizes a dispatch grid that gives every element of shape a thread.
func ComputeDispatch(layout DispatchLayout, shape tensor.Shape, wg WorkgroupSize, limits Limits) (Dispatch, error) {
	return kernel.ComputeDispatch(layout, shape, wg, limits)
}
