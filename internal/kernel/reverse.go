package kernel

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/born-ml/kernels/internal/tensor"
)

// MaxRank is the highest tensor rank kernels are generated for.
const MaxRank = 4

// reverseShaderKey identifies the reverse operation.
const reverseShaderKey = "reverse"

// SupportedRanks lists the tensor ranks kernels can be generated for.
func SupportedRanks() []int {
	ranks := make([]int, MaxRank)
	for i := range ranks {
		ranks[i] = i + 1
	}
	return ranks
}

// Config controls program generation.
type Config struct {
	// DType is the element type of the input and output buffers.
	DType tensor.DataType
	// Limits constrain the dispatch grid.
	Limits Limits
}

// DefaultConfig returns the configuration used by NewReverse: float32 elements and the
// WebGPU default limits.
func DefaultConfig() Config {
	return Config{
		DType:  tensor.Float32,
		Limits: DefaultLimits(),
	}
}

// ReverseProgram reverses a tensor along a set of axes. Output shape equals input shape.
//
// Output element at coordinates c reads input element c' where c'[i] = shape[i] - c[i] - 1
// for every reversed axis i, and c'[i] = c[i] otherwise.
type ReverseProgram struct {
	outputShape    tensor.Shape
	axes           []int
	dtype          tensor.DataType
	dispatchLayout DispatchLayout
	workgroupSize  WorkgroupSize
	dispatch       Dispatch
	inCoords       []CoordExpr

	// Host-side view of inCoords: row-major strides and, per axis, the extent when reflected or 0.
	strides  []int
	reflects []int
}

// Compile-time check that ReverseProgram implements Program.
var _ Program = (*ReverseProgram)(nil)

// NewReverse creates a float32 reverse program for the given shape and axes.
func NewReverse(shape tensor.Shape, axes []int) (*ReverseProgram, error) {
	return NewReverseWithConfig(shape, axes, DefaultConfig())
}

// NewReverseWithConfig creates a reverse program for the given shape and axes.
//
// Errors:
//   - *UnsupportedRankError if len(shape) > MaxRank, whatever the axes.
//   - ErrInvalidShape if shape is empty, has a dimension <= 0 or more than math.MaxInt32 elements.
//   - *InvalidAxisError if an axis is outside [0, len(shape)).
//   - ErrUnsupportedDType if cfg.DType has no WGSL storage type.
//   - ErrDispatchTooLarge if the grid does not fit cfg.Limits, or rounding it up launches threads
//     whose i32 global index would overflow.
//
// Repeated axes are accepted and collapsed.
func NewReverseWithConfig(shape tensor.Shape, axes []int, cfg Config) (*ReverseProgram, error) {
	rank := len(shape)
	if rank > MaxRank {
		return nil, &UnsupportedRankError{Op: "Reverse", Rank: rank, Max: MaxRank}
	}
	if rank == 0 {
		return nil, fmt.Errorf("%w: reverse needs at least one dimension", ErrInvalidShape)
	}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidShape, err)
	}
	if !fitsInt32(shape) {
		return nil, fmt.Errorf("%w: %v has more than %d elements", ErrInvalidShape, shape, math.MaxInt32)
	}

	normalized := make([]int, 0, len(axes))
	for _, axis := range axes {
		if axis < 0 || axis >= rank {
			return nil, &InvalidAxisError{Op: "Reverse", Axis: axis, Rank: rank}
		}
		normalized = append(normalized, axis)
	}
	slices.Sort(normalized)
	normalized = slices.Compact(normalized)

	if _, err := cfg.DType.WGSLType(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedDType, err)
	}

	p := &ReverseProgram{
		outputShape:   shape.Clone(),
		axes:          normalized,
		dtype:         cfg.DType,
		workgroupSize: DefaultWorkgroupSize,
	}
	p.dispatchLayout = FlatDispatchLayout(p.outputShape)
	dispatch, err := ComputeDispatch(p.dispatchLayout, p.outputShape, p.workgroupSize, cfg.Limits)
	if err != nil {
		return nil, err
	}
	p.dispatch = dispatch
	p.inCoords = ReverseCoords(p.outputShape, p.axes)
	p.strides = p.outputShape.ComputeStrides()
	p.reflects = make([]int, rank)
	for i, expr := range p.inCoords {
		if r, ok := expr.(Reflect); ok {
			p.reflects[i] = r.Extent
		}
	}
	return p, nil
}

// fitsInt32 reports whether the element count of shape is addressable by WGSL i32 indices.
func fitsInt32(shape tensor.Shape) bool {
	n := 1
	for _, dim := range shape {
		if n > math.MaxInt32/dim {
			return false
		}
		n *= dim
	}
	return true
}

// ShaderKey implements Program. It is always "reverse".
func (p *ReverseProgram) ShaderKey() string { return reverseShaderKey }

// CacheKey implements Program.
// It combines the shader key with the data type, the shape and the axes that are actually
// reflected, e.g. "reverse_float32_2x3_a0,1". Axes over unit dimensions generate the same code as
// omitting them, so they are left out.
func (p *ReverseProgram) CacheKey() string {
	var reflected []string
	for _, expr := range p.inCoords {
		if _, ok := expr.(Reflect); ok {
			reflected = append(reflected, strconv.Itoa(expr.Dim()))
		}
	}
	return fmt.Sprintf("%s_%s_%s_a%s", reverseShaderKey, p.dtype, p.outputShape, strings.Join(reflected, ","))
}

// OutputShape implements Program. It returns a copy.
func (p *ReverseProgram) OutputShape() tensor.Shape { return p.outputShape.Clone() }

// InputShapes implements Program.
func (p *ReverseProgram) InputShapes() []tensor.Shape {
	return []tensor.Shape{p.outputShape.Clone()}
}

// VariableNames implements Program.
func (p *ReverseProgram) VariableNames() []string { return []string{"x"} }

// DType implements Program.
func (p *ReverseProgram) DType() tensor.DataType { return p.dtype }

// Rank returns the rank of the input and output.
func (p *ReverseProgram) Rank() int { return len(p.outputShape) }

// Axes returns the requested axes, sorted and without duplicates.
func (p *ReverseProgram) Axes() []int { return slices.Clone(p.axes) }

// WorkgroupSize implements Program.
func (p *ReverseProgram) WorkgroupSize() WorkgroupSize { return p.workgroupSize }

// DispatchLayout implements Program.
func (p *ReverseProgram) DispatchLayout() DispatchLayout { return p.dispatchLayout }

// Dispatch implements Program.
func (p *ReverseProgram) Dispatch() Dispatch { return p.dispatch }

// Size implements Program.
func (p *ReverseProgram) Size() int { return p.outputShape.NumElements() }

// InputCoords returns the per-dimension coordinate expressions the kernel reads the input with.
func (p *ReverseProgram) InputCoords() []CoordExpr { return slices.Clone(p.inCoords) }

// SourceIndex maps a flat output index to the flat input index it is read from.
// It does not allocate and is safe for concurrent use.
func (p *ReverseProgram) SourceIndex(outIndex int) int {
	in, rem := 0, outIndex
	for i, stride := range p.strides {
		c := rem / stride
		rem -= c * stride
		if extent := p.reflects[i]; extent > 0 {
			c = extent - c - 1
		}
		in += c * stride
	}
	return in
}

// UserCode implements Program.
// Threads past the last element do nothing; every other thread writes exactly one output element.
func (p *ReverseProgram) UserCode() string {
	var sb strings.Builder
	sb.WriteString(Preamble(p))
	fmt.Fprintf(&sb, "  if (%s < %s.size) {\n", indexVar, uniformsVar)
	fmt.Fprintf(&sb, "    let %s = %s(%s);\n", coordsVar, coordsFromIndex, indexVar)
	fmt.Fprintf(&sb, "    %s(%s, %s(%s));\n", setOutput, indexVar, AccessorName("x"), RenderCoords(p.inCoords))
	sb.WriteString("  }\n}\n")
	return sb.String()
}
