// Copyright 2025 The txtnets Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package space provides the public API for named-axis layouts of dense
// arrays.
//
// A Space tracks which logical axes an array currently exposes and supports
// folding, unfolding, permuting and broadcasting them while conserving the
// total element count:
//
//	x, _ := dense.FromSlice(data, dense.Shape{4, 10})
//	s, _ := space.Infer(x, "b", "w")
//
//	flat, fs, _ := s.Transform(x, space.Axes{space.Group(space.A("b"), space.A("w"))})
//	back, _, _ := fs.Transform(flat, space.Of("b", "w"))
package space

import (
	"github.com/BKJackson/txtnets/internal/dense"
	"github.com/BKJackson/txtnets/internal/space"
)

// Space tracks the named-axis layout of a dense array. Spaces are
// immutable; every transform returns a new one.
type Space = space.Space

// Axis is a named logical dimension, or a group of axes folded together.
type Axis = space.Axis

// Axes is an ordered sequence of (possibly grouped) axes.
type Axes = space.Axes

// Sentinel errors, matched with errors.Is.
var (
	ErrShapeMismatch    = space.ErrShapeMismatch
	ErrIncompatibleAxes = space.ErrIncompatibleAxes
)

// A creates a leaf axis with the given name.
func A(name string) Axis {
	return space.A(name)
}

// Group creates a folded axis combining the given axes in order.
//
// Example:
//
//	space.Axes{space.Group(space.A("b"), space.A("w"))} // one b×w dimension
func Group(axes ...Axis) Axis {
	return space.Group(axes...)
}

// Of builds an Axes list of leaf axes from names.
func Of(names ...string) Axes {
	return space.Of(names...)
}

// New creates a Space from grouped axes and per-leaf extents, given in the
// flattened (folding) order of the axes.
func New(axes Axes, extents []int) (*Space, error) {
	return space.New(axes, extents)
}

// Infer builds a Space describing an array from a flat list of leaf axis
// names, one per array dimension.
//
// Example:
//
//	s, _ := space.Infer(x, "b", "w") // extent b=rows, w=cols
func Infer(x *dense.Array, names ...string) (*Space, error) {
	return space.Infer(x, names...)
}
