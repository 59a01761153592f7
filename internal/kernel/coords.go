package kernel

import "github.com/born-ml/kernels/internal/tensor"

// CoordExpr computes one input coordinate from the output coordinates of a thread.
// Implementations are PassThrough and Reflect.
type CoordExpr interface {
	// Dim is the dimension whose coordinate this expression produces.
	Dim() int
	// Eval evaluates the expression on the host for the given output coordinates.
	Eval(coords []int) int
}

// PassThrough reads the input at the same coordinate as the output.
type PassThrough struct {
	Axis int
}

// Dim implements CoordExpr.
func (p PassThrough) Dim() int { return p.Axis }

// Eval implements CoordExpr.
func (p PassThrough) Eval(coords []int) int { return coords[p.Axis] }

// Reflect mirrors the coordinate along an axis: Extent - coord - 1.
type Reflect struct {
	Axis   int
	Extent int
}

// Dim implements CoordExpr.
func (r Reflect) Dim() int { return r.Axis }

// Eval implements CoordExpr.
func (r Reflect) Eval(coords []int) int { return r.Extent - coords[r.Axis] - 1 }

// ReverseCoords returns one expression per dimension of shape.
// Dimensions listed in axes are reflected, except those of extent 1, which only have index 0.
// Axes must already be validated against the rank of shape.
func ReverseCoords(shape tensor.Shape, axes []int) []CoordExpr {
	reversed := make([]bool, len(shape))
	for _, axis := range axes {
		reversed[axis] = true
	}

	exprs := make([]CoordExpr, len(shape))
	for i, extent := range shape {
		if reversed[i] && extent != 1 {
			exprs[i] = Reflect{Axis: i, Extent: extent}
		} else {
			exprs[i] = PassThrough{Axis: i}
		}
	}
	return exprs
}

// EvalCoords applies exprs to an output coordinate and returns the input coordinate.
func EvalCoords(exprs []CoordExpr, coords []int) []int {
	in := make([]int, len(exprs))
	for i, expr := range exprs {
		in[i] = expr.Eval(coords)
	}
	return in
}
