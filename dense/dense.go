// Copyright 2025 The txtnets Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dense provides the public API for the dense row-major float64
// arrays that spaces and providers operate on.
package dense

import (
	"github.com/BKJackson/txtnets/internal/dense"
)

// Shape represents the dimensions of an array.
// Example: Shape{4, 10} is a 4×10 matrix.
type Shape = dense.Shape

// Array is a dense row-major float64 array.
type Array = dense.Array

// FromSlice creates an array from a flat slice and a shape.
// The slice is used directly, not copied.
func FromSlice(data []float64, shape Shape) (*Array, error) {
	return dense.FromSlice(data, shape)
}

// FromRows creates a rows×cols array from equally sized rows.
func FromRows(rows [][]float64) (*Array, error) {
	return dense.FromRows(rows)
}

// Zeros creates a zero-filled array with the given shape.
//
// Example:
//
//	x := dense.Zeros(dense.Shape{3, 4})
func Zeros(shape Shape) *Array {
	return dense.Zeros(shape)
}

// Concat concatenates arrays along the specified axis.
func Concat(arrays []*Array, axis int) (*Array, error) {
	return dense.Concat(arrays, axis)
}
