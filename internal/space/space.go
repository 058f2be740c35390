package space

import (
	"fmt"
	"strings"

	"github.com/BKJackson/txtnets/internal/dense"
)

// Space tracks the named-axis layout of a dense array: which logical axes
// the array currently exposes, how they are grouped into dimensions, and the
// extent of every leaf axis.
//
// A Space is immutable. Transform, Broadcast and SetExtent return new
// spaces; the receiver is never modified.
type Space struct {
	axes   Axes
	labels []string // leaf labels in canonical folding order
	extent map[string]int
}

// New creates a Space from grouped axes and per-leaf extents, given in the
// flattened (folding) order of the axes.
func New(axes Axes, extents []int) (*Space, error) {
	labels := axes.Leaves()
	if len(labels) != len(extents) {
		return nil, fmt.Errorf("New: %d extents for %d leaf axes %v: %w", len(extents), len(labels), labels, ErrShapeMismatch)
	}

	extent := make(map[string]int, len(labels))
	for i, label := range labels {
		if _, dup := extent[label]; dup {
			return nil, fmt.Errorf("New: duplicate axis %q in %v: %w", label, axes, ErrShapeMismatch)
		}
		if extents[i] < 0 {
			return nil, fmt.Errorf("New: negative extent %d for axis %q: %w", extents[i], label, ErrShapeMismatch)
		}
		extent[label] = extents[i]
	}

	return &Space{axes: axes.Clone(), labels: labels, extent: extent}, nil
}

// Infer builds a Space describing an array from a flat list of leaf axis
// names, one per array dimension.
func Infer(x *dense.Array, names ...string) (*Space, error) {
	if len(names) != x.Rank() {
		return nil, fmt.Errorf("Infer: %d axis labels for rank-%d array: %w", len(names), x.Rank(), ErrShapeMismatch)
	}
	return New(Of(names...), []int(x.Shape()))
}

// Axes returns the grouped axes of the space.
func (s *Space) Axes() Axes {
	return s.axes.Clone()
}

// FoldedAxes returns the leaf axis names in canonical folding order.
func (s *Space) FoldedAxes() []string {
	folded := make([]string, len(s.labels))
	copy(folded, s.labels)
	return folded
}

// Extent returns the extent of a single leaf axis.
func (s *Space) Extent(name string) (int, error) {
	ext, ok := s.extent[name]
	if !ok {
		return 0, fmt.Errorf("Extent: unknown axis %q in %v: %w", name, s.axes, ErrShapeMismatch)
	}
	return ext, nil
}

// Size returns the product of all leaf extents.
func (s *Space) Size() int {
	size := 1
	for _, label := range s.labels {
		size *= s.extent[label]
	}
	return size
}

// FoldedShape returns the fully unfolded shape: one dimension per leaf axis.
func (s *Space) FoldedShape() dense.Shape {
	shape := make(dense.Shape, len(s.labels))
	for i, label := range s.labels {
		shape[i] = s.extent[label]
	}
	return shape
}

// Shape returns the grouped shape: one dimension per top-level axis, each
// the product of its leaf extents.
func (s *Space) Shape() dense.Shape {
	shape := make(dense.Shape, len(s.axes))
	for i, axis := range s.axes {
		shape[i] = s.sizeOfAxis(axis)
	}
	return shape
}

func (s *Space) sizeOfAxis(axis Axis) int {
	size := 1
	for _, leaf := range axis.Leaves() {
		size *= s.extent[leaf]
	}
	return size
}

// GetExtent returns the computed size of each requested axis: the product of
// the extents of its constituent leaves.
func (s *Space) GetExtent(axes Axes) ([]int, error) {
	sizes := make([]int, len(axes))
	for i, axis := range axes {
		for _, leaf := range axis.Leaves() {
			if _, ok := s.extent[leaf]; !ok {
				return nil, fmt.Errorf("GetExtent: unknown axis %q in %v: %w", leaf, s.axes, ErrShapeMismatch)
			}
		}
		sizes[i] = s.sizeOfAxis(axis)
	}
	return sizes, nil
}

// SetExtent returns a copy of the space with the named leaf extents
// overwritten. The backing array, if any, is not touched; callers must keep
// it consistent separately.
func (s *Space) SetExtent(extents map[string]int) (*Space, error) {
	clone := s.Clone()
	for name, ext := range extents {
		if _, ok := clone.extent[name]; !ok {
			return nil, fmt.Errorf("SetExtent: unknown axis %q in %v: %w", name, s.axes, ErrShapeMismatch)
		}
		if ext < 0 {
			return nil, fmt.Errorf("SetExtent: negative extent %d for axis %q: %w", ext, name, ErrShapeMismatch)
		}
		clone.extent[name] = ext
	}
	return clone, nil
}

// Clone returns a deep copy of the space.
func (s *Space) Clone() *Space {
	extent := make(map[string]int, len(s.extent))
	for name, ext := range s.extent {
		extent[name] = ext
	}
	labels := make([]string, len(s.labels))
	copy(labels, s.labels)
	return &Space{axes: s.axes.Clone(), labels: labels, extent: extent}
}

// Equal reports whether two spaces have the same axis structure and extents.
func (s *Space) Equal(other *Space) bool {
	if s.axes.String() != other.axes.String() {
		return false
	}
	for _, label := range s.labels {
		if s.extent[label] != other.extent[label] {
			return false
		}
	}
	return true
}

// Transform reshapes and permutes x so that its axes match newAxes.
//
// newAxes may fold several current leaf axes into one grouped dimension,
// unfold a grouped dimension back into its members, and reorder axes. Leaf
// axes missing from the current space are introduced with extent 1, so a
// target like Of("b", "d", "w") broadcasts a new unit axis into place.
// Element order within each axis is preserved; only grouping and axis order
// change. The target must carry every leaf the source has, otherwise the
// transform fails with ErrIncompatibleAxes.
func (s *Space) Transform(x *dense.Array, newAxes Axes) (*dense.Array, *Space, error) {
	target := newAxes.Leaves()
	targetExtents := make([]int, len(target))
	for i, leaf := range target {
		if ext, ok := s.extent[leaf]; ok {
			targetExtents[i] = ext
		} else {
			targetExtents[i] = 1
		}
	}
	newSpace, err := New(newAxes, targetExtents)
	if err != nil {
		return nil, nil, fmt.Errorf("Transform: %w", err)
	}

	// Extend the current layout with unit axes for every leaf the target
	// has and the source does not, preserving append order.
	expanded := s
	if missing := subtractLabels(target, s.labels); len(missing) > 0 {
		expandedAxes := s.axes.Clone()
		expandedExtents := []int(s.FoldedShape())
		for _, leaf := range missing {
			expandedAxes = append(expandedAxes, A(leaf))
			expandedExtents = append(expandedExtents, 1)
		}
		expanded, err = New(expandedAxes, expandedExtents)
		if err != nil {
			return nil, nil, fmt.Errorf("Transform: %w", err)
		}
	}

	if dropped := subtractLabels(expanded.labels, target); len(dropped) > 0 {
		return nil, nil, fmt.Errorf("Transform: target %v drops axes %v present in %v: %w", newAxes, dropped, s.axes, ErrIncompatibleAxes)
	}

	folded, err := x.Reshape(expanded.FoldedShape())
	if err != nil {
		return nil, nil, fmt.Errorf("Transform: fold to %v: %w", expanded.FoldedShape(), err)
	}

	// Unique leaf labels make the permutation an exact index lookup.
	perm := make([]int, len(target))
	for i, leaf := range target {
		perm[i] = indexOfLabel(expanded.labels, leaf)
	}
	permuted, err := folded.Transpose(perm...)
	if err != nil {
		return nil, nil, fmt.Errorf("Transform: permute %v: %w", perm, err)
	}

	result, err := permuted.Reshape(newSpace.Shape())
	if err != nil {
		return nil, nil, fmt.Errorf("Transform: unfold to %v: %w", newSpace.Shape(), err)
	}
	return result, newSpace, nil
}

// Broadcast replicates x along named axes. Each replica count multiplies the
// corresponding axis extent; the array content along that axis becomes that
// many verbatim concatenations of the original.
func (s *Space) Broadcast(x *dense.Array, replicas map[string]int) (*dense.Array, *Space, error) {
	for name, count := range replicas {
		if _, ok := s.extent[name]; !ok {
			return nil, nil, fmt.Errorf("Broadcast: unknown axis %q in %v: %w", name, s.axes, ErrShapeMismatch)
		}
		if count < 1 {
			return nil, nil, fmt.Errorf("Broadcast: replica count %d for axis %q must be >= 1: %w", count, name, ErrShapeMismatch)
		}
	}

	newExtents := make([]int, len(s.labels))
	for i, label := range s.labels {
		ext := s.extent[label]
		if count, ok := replicas[label]; ok {
			ext *= count
		}
		newExtents[i] = ext
	}
	newSpace, err := New(s.axes, newExtents)
	if err != nil {
		return nil, nil, fmt.Errorf("Broadcast: %w", err)
	}

	folded, err := x.Reshape(s.FoldedShape())
	if err != nil {
		return nil, nil, fmt.Errorf("Broadcast: fold to %v: %w", s.FoldedShape(), err)
	}

	// Replicate in canonical folding order so results are deterministic.
	for dim, label := range s.labels {
		count, ok := replicas[label]
		if !ok || count == 1 {
			continue
		}
		copies := make([]*dense.Array, count)
		for i := range copies {
			copies[i] = folded
		}
		folded, err = dense.Concat(copies, dim)
		if err != nil {
			return nil, nil, fmt.Errorf("Broadcast: replicate axis %q: %w", label, err)
		}
	}

	if folded.NumElements() != newSpace.Size() {
		return nil, nil, fmt.Errorf("Broadcast: internal error: %d elements after replication, want %d", folded.NumElements(), newSpace.Size())
	}

	result, err := folded.Reshape(newSpace.Shape())
	if err != nil {
		return nil, nil, fmt.Errorf("Broadcast: unfold to %v: %w", newSpace.Shape(), err)
	}
	return result, newSpace, nil
}

// String returns a human-readable representation of the space.
func (s *Space) String() string {
	parts := make([]string, len(s.labels))
	for i, label := range s.labels {
		parts[i] = fmt.Sprintf("%s:%d", label, s.extent[label])
	}
	return fmt.Sprintf("Space%v {%s}", s.axes, strings.Join(parts, " "))
}

// subtractLabels returns the labels of a not present in b, preserving the
// order of a.
func subtractLabels(a, b []string) []string {
	present := make(map[string]bool, len(b))
	for _, label := range b {
		present[label] = true
	}
	var diff []string
	for _, label := range a {
		if !present[label] {
			diff = append(diff, label)
		}
	}
	return diff
}

func indexOfLabel(labels []string, label string) int {
	for i, l := range labels {
		if l == label {
			return i
		}
	}
	return -1
}
