// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the host reference backend.
//
// It evaluates kernel programs element by element with the same coordinate mapping
// the generated WGSL is rendered from, so its results are the ground truth for GPU tests.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/kernels/backend/cpu"
//	    "github.com/born-ml/kernels/tensor"
//	)
//
//	func main() {
//	    x, _ := tensor.FromFloat32(tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})
//	    y, err := cpu.New().Reverse(x, 1) // [[3 2 1] [6 5 4]]
//	}
package cpu
