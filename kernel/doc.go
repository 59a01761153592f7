// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package kernel generates WGSL compute kernels and their dispatch geometry.
//
// # Overview
//
// A kernel program is an immutable value produced by a validating constructor. It carries
// the generated WGSL source, the workgroup size, the dispatch grid and the names of the input
// buffers it reads. Execution engines such as backend/webgpu compile the source once per
// CacheKey and launch Dispatch workgroups.
//
// # Reverse
//
// NewReverse builds a kernel that reverses a tensor of rank 1 to MaxRank along a set of axes:
//
//	p, err := kernel.NewReverse(tensor.Shape{2, 3}, []int{1})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(p.UserCode())   // WGSL module
//	fmt.Println(p.Dispatch())   // [1 1 1]
//	fmt.Println(p.CacheKey())   // reverse_float32_2x3_a1
//
// Ranks above MaxRank fail with *UnsupportedRankError, out-of-range axes with *InvalidAxisError.
package kernel
