package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeNumElements(t *testing.T) {
	assert.Equal(t, 1, Shape{}.NumElements())
	assert.Equal(t, 5, Shape{5}.NumElements())
	assert.Equal(t, 24, Shape{2, 3, 4}.NumElements())
}

func TestShapeComputeStrides(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, Shape{2, 3, 4}.ComputeStrides())
	assert.Equal(t, []int{1}, Shape{7}.ComputeStrides())
	assert.Empty(t, Shape{}.ComputeStrides())
}

func TestShapeValidate(t *testing.T) {
	assert.NoError(t, Shape{1, 2, 3}.Validate())
	assert.Error(t, Shape{1, 0}.Validate())
	assert.Error(t, Shape{-1}.Validate())
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "2x3x4", Shape{2, 3, 4}.String())
	assert.Equal(t, "scalar", Shape{}.String())
}

func TestParseShape(t *testing.T) {
	shape, err := ParseShape(" 2, 3,4 ")
	require.NoError(t, err)
	assert.True(t, shape.Equal(Shape{2, 3, 4}))

	shape, err = ParseShape("")
	require.NoError(t, err)
	assert.Empty(t, shape)

	_, err = ParseShape("2,x")
	assert.Error(t, err)
}

func TestDataType(t *testing.T) {
	for _, dt := range []DataType{Float32, Int32, Uint32} {
		assert.Equal(t, 4, dt.Size())
		parsed, err := ParseDataType(dt.String())
		require.NoError(t, err)
		assert.Equal(t, dt, parsed)
	}

	wgslType, err := Int32.WGSLType()
	require.NoError(t, err)
	assert.Equal(t, "i32", wgslType)

	_, err = DataType(42).WGSLType()
	assert.Error(t, err)

	_, err = ParseDataType("bfloat16")
	assert.Error(t, err)
}
