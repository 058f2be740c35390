// Package space tracks the named-axis layout of dense arrays.
//
// A Space maps an ordered list of axes, possibly folded into groups, to the
// extent of every leaf axis. Downstream code reshapes arrays through the
// space instead of hand-writing reshape/transpose calls:
//
//	x, _ := dense.FromSlice(data, dense.Shape{4, 10})
//	s, _ := space.Infer(x, "b", "w")
//
//	// Fold batch and width into one dimension for a flat pass.
//	flat, fs, _ := s.Transform(x, space.Axes{space.Group(space.A("b"), space.A("w"))})
//
//	// Unfold back; element order is preserved.
//	back, _, _ := fs.Transform(flat, space.Of("b", "w"))
//
// The same transform logic works whether an axis is currently folded or
// split, which centralizes the invariant that total element count is
// conserved except through explicit Broadcast.
package space
