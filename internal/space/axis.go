package space

import (
	"fmt"
	"strings"
)

// Axis is a named logical dimension, or a group of axes currently folded
// together into a single dimension.
type Axis struct {
	name  string
	group []Axis // non-nil for groups
}

// A creates a leaf axis with the given name.
func A(name string) Axis {
	return Axis{name: name}
}

// Group creates a folded axis combining the given axes in order.
func Group(axes ...Axis) Axis {
	return Axis{group: axes}
}

// IsGroup reports whether the axis is a folded group.
func (a Axis) IsGroup() bool {
	return a.group != nil
}

// Name returns the leaf name. Panics if the axis is a group.
func (a Axis) Name() string {
	if a.IsGroup() {
		panic(fmt.Sprintf("Name: %v is a group, not a leaf", a))
	}
	return a.name
}

// Leaves returns the leaf names of the axis in folding order.
func (a Axis) Leaves() []string {
	if !a.IsGroup() {
		return []string{a.name}
	}
	var leaves []string
	for _, member := range a.group {
		leaves = append(leaves, member.Leaves()...)
	}
	return leaves
}

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	if !a.IsGroup() {
		return a.name
	}
	parts := make([]string, len(a.group))
	for i, member := range a.group {
		parts[i] = member.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Axes is an ordered sequence of (possibly grouped) axes.
type Axes []Axis

// Of builds an Axes list of leaf axes from names.
func Of(names ...string) Axes {
	axes := make(Axes, len(names))
	for i, name := range names {
		axes[i] = A(name)
	}
	return axes
}

// Leaves returns all leaf names across the sequence, flattened in order.
func (as Axes) Leaves() []string {
	var leaves []string
	for _, a := range as {
		leaves = append(leaves, a.Leaves()...)
	}
	return leaves
}

// Clone returns a copy of the axes sequence.
func (as Axes) Clone() Axes {
	clone := make(Axes, len(as))
	copy(clone, as)
	return clone
}

// String returns a human-readable representation of the axes.
func (as Axes) String() string {
	parts := make([]string, len(as))
	for i, a := range as {
		parts[i] = a.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
