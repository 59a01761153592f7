// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the shapes, data types and raw buffers consumed by kernel
// generators and compute backends.
//
// # Basic Usage
//
//	import "github.com/born-ml/kernels/tensor"
//
//	func main() {
//	    x, err := tensor.FromFloat32(tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    data := x.AsFloat32() // Zero-copy view
//	}
package tensor
