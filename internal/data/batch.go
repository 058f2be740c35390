package data

import (
	"fmt"

	"github.com/BKJackson/txtnets/internal/dense"
)

// BatchProvider emits the whole dataset as a single batch on every call.
// There is one batch per epoch, no shuffling and no padding.
type BatchProvider struct {
	x       *dense.Array
	y       *dense.Array // optional
	lengths []int        // optional
}

// NewBatchProvider creates a full-batch provider. y and lengths are
// optional pass-through companions; when present their row counts must
// match x.
func NewBatchProvider(x, y *dense.Array, lengths []int) (*BatchProvider, error) {
	if err := checkParallel(x, y, lengths); err != nil {
		return nil, fmt.Errorf("NewBatchProvider: %w", err)
	}
	return &BatchProvider{x: x, y: y, lengths: lengths}, nil
}

// NextBatch returns the full dataset with its axis layout.
func (p *BatchProvider) NextBatch() *Batch {
	return &Batch{
		Data:   p.x,
		Labels: p.y,
		Meta: Meta{
			Lengths:    p.lengths,
			SpaceBelow: mustInfer(p.x),
		},
	}
}

// BatchesPerEpoch returns 1: the provider visits the dataset whole.
func (p *BatchProvider) BatchesPerEpoch() int {
	return 1
}

// checkParallel validates that the optional parallel containers agree with x
// on row count.
func checkParallel(x, y *dense.Array, lengths []int) error {
	if x == nil {
		return fmt.Errorf("features array is nil: %w", ErrConfiguration)
	}
	if x.Rank() != 2 {
		return fmt.Errorf("features array has rank %d, expected 2: %w", x.Rank(), ErrConfiguration)
	}
	numRows := x.Shape()[0]
	if y != nil {
		if y.Rank() < 1 || y.Shape()[0] != numRows {
			return fmt.Errorf("labels shape %v does not match %d feature rows: %w", y.Shape(), numRows, ErrConfiguration)
		}
	}
	if lengths != nil && len(lengths) != numRows {
		return fmt.Errorf("%d lengths for %d feature rows: %w", len(lengths), numRows, ErrConfiguration)
	}
	return nil
}
