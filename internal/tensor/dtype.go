// Package tensor provides the shape, data type and raw buffer types shared by the kernel generators
// and the compute backends.
package tensor

import "fmt"

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
// Only 32-bit types are supported, since they map one-to-one onto WGSL storage arrays.
const (
	Float32 DataType = iota
	Int32
	Uint32
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32, Uint32:
		return 4
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	default:
		return "unknown"
	}
}

// WGSLType returns the WGSL scalar type used to store elements of this data type.
func (dt DataType) WGSLType() (string, error) {
	switch dt {
	case Float32:
		return "f32", nil
	case Int32:
		return "i32", nil
	case Uint32:
		return "u32", nil
	default:
		return "", fmt.Errorf("data type %d has no WGSL equivalent", int(dt))
	}
}

// ParseDataType converts a name like "float32" into a DataType.
func ParseDataType(name string) (DataType, error) {
	switch name {
	case "float32", "f32":
		return Float32, nil
	case "int32", "i32":
		return Int32, nil
	case "uint32", "u32":
		return Uint32, nil
	default:
		return 0, fmt.Errorf("unknown data type %q", name)
	}
}
