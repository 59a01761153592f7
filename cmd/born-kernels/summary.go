package main

import (
	"fmt"
	"strings"

	"github.com/born-ml/kernels/internal/kernel"
	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
)

var (
	headerRowStyle = lipgloss.NewStyle().Reverse(true).
			Padding(0, 2, 0, 2).Align(lipgloss.Center)
	oddRowStyle = lipgloss.NewStyle().Faint(false).
			PaddingLeft(1).PaddingRight(1)
	evenRowStyle = lipgloss.NewStyle().Faint(true).
			PaddingLeft(1).PaddingRight(1)
)

func newPlainTable(withHeader bool) *lgtable.Table {
	return lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) (s lipgloss.Style) {
			if withHeader && row < 0 {
				return headerRowStyle
			}
			if row%2 == 0 {
				return evenRowStyle
			}
			return oddRowStyle
		})
}

// summaryRows lists the descriptor fields of p, one (name, value) pair per row.
func summaryRows(p *kernel.ReverseProgram) [][]string {
	layout := p.DispatchLayout()
	bufferBytes := uint64(p.Size() * p.DType().Size()) //nolint:gosec // G115: Size() is bounded by MaxInt32
	return [][]string{
		{"shader key", p.ShaderKey()},
		{"cache key", p.CacheKey()},
		{"dtype", p.DType().String()},
		{"shape", p.OutputShape().String()},
		{"rank", fmt.Sprintf("%d (max %d)", p.Rank(), kernel.MaxRank)},
		{"axes", fmt.Sprint(p.Axes())},
		{"input coords", kernel.RenderCoords(p.InputCoords())},
		{"dispatch layout", fmt.Sprintf("x=%v y=%v z=%v", layout.X, layout.Y, layout.Z)},
		{"workgroup size", fmt.Sprint(p.WorkgroupSize())},
		{"dispatch", fmt.Sprint(p.Dispatch())},
		{"invocations", humanize.Comma(int64(p.Dispatch().Invocations(p.WorkgroupSize())))},
		{"elements", humanize.Comma(int64(p.Size()))},
		{"buffer size", humanize.Bytes(bufferBytes)},
		{"inputs", strings.Join(p.VariableNames(), ", ")},
	}
}

// summary renders the descriptor of p as a table.
func summary(p *kernel.ReverseProgram) string {
	table := newPlainTable(true).Headers("Field", "Value")
	for _, row := range summaryRows(p) {
		table.Row(row...)
	}
	return table.Render()
}
