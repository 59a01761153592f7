package kernel

import (
	"errors"
	"fmt"
)

// Sentinel errors returned while building kernel programs.
var (
	ErrInvalidShape     = errors.New("invalid shape")
	ErrUnsupportedDType = errors.New("unsupported data type")
	ErrDispatchTooLarge = errors.New("dispatch grid exceeds workgroup limits")

	ErrInvalidWorkgroupSize = errors.New("invalid workgroup size")
)

// UnsupportedRankError is returned when a program is requested for a tensor whose rank
// is above what the generator supports.
type UnsupportedRankError struct {
	Op   string
	Rank int
	Max  int
}

func (e *UnsupportedRankError) Error() string {
	return fmt.Sprintf("webgpu: %s of rank-%d tensor is not supported (max rank %d)", e.Op, e.Rank, e.Max)
}

// InvalidAxisError is returned when an axis does not index a dimension of the input shape.
type InvalidAxisError struct {
	Op   string
	Axis int
	Rank int
}

func (e *InvalidAxisError) Error() string {
	return fmt.Sprintf("webgpu: %s: axis %d out of range for rank %d", e.Op, e.Axis, e.Rank)
}
