package data

import (
	"fmt"

	"github.com/BKJackson/txtnets/internal/dense"
)

// MinibatchProvider cycles over uniform-width numeric rows in fixed-size
// contiguous batches. At every epoch boundary the features, labels and
// lengths are reshuffled in lockstep with one shared permutation.
//
// batchesPerEpoch is floor(rows/batchSize); remainder rows are never
// visited.
type MinibatchProvider struct {
	x       *dense.Array
	y       *dense.Array // optional
	lengths []int        // optional

	batchSize int
	state     epochState
	opts      *options
}

// NewMinibatchProvider creates a fixed-size minibatch provider. y and
// lengths are optional; when present they must match x's row count and they
// are shuffled together with x.
func NewMinibatchProvider(x, y *dense.Array, lengths []int, batchSize int, opts ...Option) (*MinibatchProvider, error) {
	if err := checkParallel(x, y, lengths); err != nil {
		return nil, fmt.Errorf("NewMinibatchProvider: %w", err)
	}
	state, err := newEpochState(x.Shape()[0], batchSize)
	if err != nil {
		return nil, fmt.Errorf("NewMinibatchProvider: %w", err)
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	return &MinibatchProvider{
		x:         x,
		y:         y,
		lengths:   lengths,
		batchSize: batchSize,
		state:     state,
		opts:      options,
	}, nil
}

// NextBatch advances to the next contiguous batch, reshuffling the dataset
// first when a new epoch starts.
func (p *MinibatchProvider) NextBatch() *Batch {
	if p.state.advance() && p.opts.shuffle {
		p.shuffle()
	}

	start := p.state.index * p.batchSize
	end := start + p.batchSize

	batch := &Batch{Data: mustRows(p.x, start, end)}
	if p.y != nil {
		batch.Labels = mustRows(p.y, start, end)
	}
	if p.lengths != nil {
		batch.Meta.Lengths = p.lengths[start:end]
	}
	batch.Meta.SpaceBelow = mustInfer(batch.Data)
	return batch
}

// BatchesPerEpoch returns the number of batches visited per epoch.
func (p *MinibatchProvider) BatchesPerEpoch() int {
	return p.state.batchesPerEpoch
}

func (p *MinibatchProvider) shuffle() {
	perm := p.opts.rng.Perm(p.x.Shape()[0])
	p.x = permuteRows(p.x, perm)
	if p.y != nil {
		p.y = permuteRows(p.y, perm)
	}
	if p.lengths != nil {
		p.lengths = permuteInts(p.lengths, perm)
	}
}
