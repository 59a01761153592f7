package main

import (
	"errors"
	"testing"

	"github.com/born-ml/kernels/internal/kernel"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReverse(t *testing.T) {
	p, err := buildReverse("2,3", "1, 0", "int32", kernel.DefaultMaxWorkgroupsPerDimension)
	require.NoError(t, err)
	assert.Equal(t, "reverse_int32_2x3_a0,1", p.CacheKey())
}

func TestBuildReverse_Errors(t *testing.T) {
	_, err := buildReverse("2,x", "", "float32", 0)
	assert.ErrorContains(t, err, "-shape")

	_, err = buildReverse("2,3", "a", "float32", 0)
	assert.ErrorContains(t, err, "-axes")

	_, err = buildReverse("2,3", "", "float16", 0)
	assert.ErrorContains(t, err, "-dtype")

	_, err = buildReverse("1,1,1,1,1", "0", "float32", 0)
	var rankErr *kernel.UnsupportedRankError
	assert.True(t, errors.As(err, &rankErr), "got %v", err)
}

func TestParseAxes(t *testing.T) {
	axes, err := parseAxes("")
	require.NoError(t, err)
	assert.Empty(t, axes)

	axes, err = parseAxes("0,2")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, axes)
}

func TestSummaryRows(t *testing.T) {
	p := must.M1(buildReverse("1000", "0", "float32", kernel.DefaultMaxWorkgroupsPerDimension))
	rows := make(map[string]string)
	for _, row := range summaryRows(p) {
		rows[row[0]] = row[1]
	}
	assert.Equal(t, "reverse", rows["shader key"])
	assert.Equal(t, "[16 1 1]", rows["dispatch"])
	assert.Equal(t, "1,024", rows["invocations"])
	assert.Equal(t, "1,000", rows["elements"])
	assert.Equal(t, "4.0 kB", rows["buffer size"])
	assert.Equal(t, "1000 - coords - 1", rows["input coords"])

	assert.Contains(t, summary(p), "reverse_float32_1000_a0")
}
