package kernel

import (
	"fmt"
	"strings"

	"github.com/born-ml/kernels/internal/tensor"
)

// Fixed identifiers shared by every generated kernel.
const (
	outputVariable  = "result"
	uniformsVar     = "uniforms"
	coordsVar       = "coords"
	indexVar        = "index"
	coordsFromIndex = "getCoordsFromIndex"
	setOutput       = "setOutputAtIndex"
)

// Preamble renders everything a program body relies on: storage bindings, the uniforms block,
// the global index helper, coordinate decoding, buffer accessors and the opening of fn main.
// The body that follows must close fn main.
//
// Binding layout: result at 0, one read-only binding per variable name from 1, uniforms last.
func Preamble(p Program) string {
	var sb strings.Builder
	storage := storageType(p.DType())
	names := p.VariableNames()
	shapes := p.InputShapes()

	fmt.Fprintf(&sb, "@group(0) @binding(0) var<storage, read_write> %s: array<%s>;\n", outputVariable, storage)
	for i, name := range names {
		fmt.Fprintf(&sb, "@group(0) @binding(%d) var<storage, read> %s: array<%s>;\n", i+1, name, storage)
	}
	sb.WriteString("\nstruct Uniforms {\n  size: i32,\n}\n")
	fmt.Fprintf(&sb, "@group(0) @binding(%d) var<uniform> %s: Uniforms;\n\n", len(names)+1, uniformsVar)

	writeGlobalIndex(&sb, p.WorkgroupSize())
	writeCoordsFromIndex(&sb, p.OutputShape())
	for i, name := range names {
		writeInputAccessor(&sb, name, shapes[i], storage)
	}
	fmt.Fprintf(&sb, "fn %s(flatIndex: i32, value: %s) {\n  %s[flatIndex] = value;\n}\n\n", setOutput, storage, outputVariable)

	writeMainHeader(&sb, p.WorkgroupSize())
	return sb.String()
}

// UniformsSize is the byte size of the uniforms block bound by Preamble, padded to 16 bytes.
const UniformsSize = 16

func storageType(dt tensor.DataType) string {
	t, err := dt.WGSLType()
	if err != nil {
		// Programs validate their data type on construction.
		panic(err)
	}
	return t
}

// coordsType is the WGSL type holding the coordinates of a rank-r tensor.
func coordsType(rank int) string {
	if rank == 1 {
		return "i32"
	}
	return fmt.Sprintf("vec%d<i32>", rank)
}

// AccessorName returns the name of the read accessor generated for a variable: x -> getX.
func AccessorName(variable string) string {
	if variable == "" {
		return "get"
	}
	return "get" + strings.ToUpper(variable[:1]) + variable[1:]
}

// writeGlobalIndex emits getGlobalIndex, which linearizes the workgroup grid so that dispatches
// folded into y and z still produce consecutive indices.
func writeGlobalIndex(sb *strings.Builder, wg WorkgroupSize) {
	sb.WriteString("fn getGlobalIndex(workgroupId: vec3<u32>, localIndex: u32, numWorkgroups: vec3<u32>) -> i32 {\n")
	sb.WriteString("  let workgroupIndex = workgroupId.z * numWorkgroups.x * numWorkgroups.y +\n")
	sb.WriteString("      workgroupId.y * numWorkgroups.x + workgroupId.x;\n")
	fmt.Fprintf(sb, "  return i32(workgroupIndex * %du + localIndex);\n}\n\n", wg.Threads())
}

// writeCoordsFromIndex emits the row-major decoding of a flat index into coordinates.
func writeCoordsFromIndex(sb *strings.Builder, shape tensor.Shape) {
	rank := len(shape)
	fmt.Fprintf(sb, "fn %s(index: i32) -> %s {\n", coordsFromIndex, coordsType(rank))
	if rank == 1 {
		sb.WriteString("  return index;\n}\n\n")
		return
	}

	strides := shape.ComputeStrides()
	sb.WriteString("  var rem = index;\n")
	dims := make([]string, rank)
	for i := 0; i < rank-1; i++ {
		fmt.Fprintf(sb, "  let d%d = rem / %d;\n", i, strides[i])
		fmt.Fprintf(sb, "  rem = rem - d%d * %d;\n", i, strides[i])
		dims[i] = fmt.Sprintf("d%d", i)
	}
	dims[rank-1] = "rem"
	fmt.Fprintf(sb, "  return %s(%s);\n}\n\n", coordsType(rank), strings.Join(dims, ", "))
}

// writeInputAccessor emits getX(d0, ..., dN-1), reading variable at the given coordinates.
func writeInputAccessor(sb *strings.Builder, variable string, shape tensor.Shape, storage string) {
	strides := shape.ComputeStrides()
	params := make([]string, len(shape))
	terms := make([]string, len(shape))
	for i, stride := range strides {
		params[i] = fmt.Sprintf("d%d: i32", i)
		if stride == 1 {
			terms[i] = fmt.Sprintf("d%d", i)
		} else {
			terms[i] = fmt.Sprintf("d%d * %d", i, stride)
		}
	}
	fmt.Fprintf(sb, "fn %s(%s) -> %s {\n  return %s[%s];\n}\n\n",
		AccessorName(variable), strings.Join(params, ", "), storage, variable, strings.Join(terms, " + "))
}

func writeMainHeader(sb *strings.Builder, wg WorkgroupSize) {
	fmt.Fprintf(sb, "@compute @workgroup_size(%d, %d, %d)\n", wg[0], wg[1], wg[2])
	sb.WriteString("fn main(@builtin(local_invocation_index) localIndex: u32,\n")
	sb.WriteString("        @builtin(workgroup_id) workgroupId: vec3<u32>,\n")
	sb.WriteString("        @builtin(num_workgroups) numWorkgroups: vec3<u32>) {\n")
	fmt.Fprintf(sb, "  let %s = getGlobalIndex(workgroupId, localIndex, numWorkgroups);\n", indexVar)
}

// RenderCoord renders one input coordinate expression for a kernel whose output has the given rank.
// Rank-1 kernels hold their coordinate in a scalar, so it is not indexed.
func RenderCoord(expr CoordExpr, rank int) string {
	coord := fmt.Sprintf("%s[%d]", coordsVar, expr.Dim())
	if rank == 1 {
		coord = coordsVar
	}
	switch e := expr.(type) {
	case Reflect:
		return fmt.Sprintf("%d - %s - 1", e.Extent, coord)
	default:
		return coord
	}
}

// RenderCoords renders the argument list passed to an input accessor.
func RenderCoords(exprs []CoordExpr) string {
	parts := make([]string, len(exprs))
	for i, expr := range exprs {
		parts[i] = RenderCoord(expr, len(exprs))
	}
	return strings.Join(parts, ", ")
}
