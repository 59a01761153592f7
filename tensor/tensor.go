// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/kernels/internal/tensor"
)

// Shape represents the dimensions of a tensor, outermost first.
type Shape = tensor.Shape

// DataType is the runtime element type of a tensor.
type DataType = tensor.DataType

// Supported data types.
const (
	Float32 = tensor.Float32
	Int32   = tensor.Int32
	Uint32  = tensor.Uint32
)

// RawTensor is a contiguous, row-major tensor buffer.
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32)
//	data := raw.AsFloat32()  // Type-safe access
//	clone := raw.Clone()     // Deep copy
type RawTensor = tensor.RawTensor

// NewRaw allocates a zero-filled tensor.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}

// FromFloat32 creates a Float32 tensor holding a copy of values.
func FromFloat32(shape Shape, values []float32) (*RawTensor, error) {
	return tensor.FromFloat32(shape, values)
}

// FromInt32 creates an Int32 tensor holding a copy of values.
func FromInt32(shape Shape, values []int32) (*RawTensor, error) {
	return tensor.FromInt32(shape, values)
}

// FromBytes creates a tensor holding a copy of little-endian data.
func FromBytes(shape Shape, dtype DataType, data []byte) (*RawTensor, error) {
	return tensor.FromBytes(shape, dtype, data)
}

// ParseShape parses a comma separated list of dimensions, e.g. "2,3,4".
func ParseShape(text string) (Shape, error) {
	return tensor.ParseShape(text)
}

// ParseDataType converts a name like "float32" into a DataType.
func ParseDataType(name string) (DataType, error) {
	return tensor.ParseDataType(name)
}
