package space

import "errors"

// Sentinel errors reported by Space operations. Callers discriminate with
// errors.Is; the wrapped message carries the operation and offending labels.
var (
	// ErrShapeMismatch indicates an axis-label count that disagrees with an
	// array's rank, or a reference to an axis label the space does not have.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrIncompatibleAxes indicates a transform whose target axes are not
	// reachable from the current ones: the target drops a leaf axis the
	// source has.
	ErrIncompatibleAxes = errors.New("incompatible axes")
)
