// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package kernel_test

import (
	"errors"
	"testing"

	"github.com/born-ml/kernels/kernel"
	"github.com/born-ml/kernels/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReverse(t *testing.T) {
	p, err := kernel.NewReverse(tensor.Shape{2, 3}, []int{1})
	require.NoError(t, err)
	assert.Equal(t, "reverse", p.ShaderKey())
	assert.Equal(t, "reverse_float32_2x3_a1", p.CacheKey())
	assert.Equal(t, kernel.Dispatch{1, 1, 1}, p.Dispatch())
	assert.Contains(t, p.UserCode(), "getX(coords[0], 3 - coords[1] - 1)")

	var program kernel.Program = p
	assert.Equal(t, 6, program.Size())
}

func TestNewReverse_Errors(t *testing.T) {
	_, err := kernel.NewReverse(tensor.Shape{1, 1, 1, 1, 1}, nil)
	var rankErr *kernel.UnsupportedRankError
	assert.True(t, errors.As(err, &rankErr))

	_, err = kernel.NewReverse(tensor.Shape{4}, []int{1})
	var axisErr *kernel.InvalidAxisError
	assert.True(t, errors.As(err, &axisErr))

	_, err = kernel.NewReverse(tensor.Shape{0}, nil)
	assert.ErrorIs(t, err, kernel.ErrInvalidShape)
}

func TestSupportedRanks(t *testing.T) {
	ranks := kernel.SupportedRanks()
	assert.Equal(t, kernel.MaxRank, ranks[len(ranks)-1])
}
