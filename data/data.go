// Copyright 2025 The txtnets Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package data provides the public API for minibatch providers.
//
// Providers cycle over a dataset in fixed-size contiguous batches,
// reshuffling at epoch boundaries and padding variable-length rows per
// batch:
//
//	p, _ := data.NewLabelledSequenceProvider(rows, labels, 32, 0)
//	for step := 0; step < steps; step++ {
//	    batch := p.NextBatch()
//	    // batch.Data is b×w, batch.Meta.SpaceBelow describes it
//	}
package data

import (
	"math/rand"

	"github.com/BKJackson/txtnets/internal/data"
	"github.com/BKJackson/txtnets/internal/dense"
)

// Meta describes one emitted batch: pre-padding row lengths and the
// named-axis layout of the batch array.
type Meta = data.Meta

// Batch is one fixed-size slice of the dataset.
type Batch = data.Batch

// Provider produces an unbounded cyclic sequence of batches.
type Provider = data.Provider

// Option configures a provider.
type Option = data.Option

// ErrConfiguration indicates an invalid batch size or malformed dataset.
var ErrConfiguration = data.ErrConfiguration

// WithRand sets the random source used for end-of-epoch shuffling.
func WithRand(rng *rand.Rand) Option {
	return data.WithRand(rng)
}

// WithoutShuffle disables end-of-epoch shuffling.
func WithoutShuffle() Option {
	return data.WithoutShuffle()
}

// BatchProvider emits the whole dataset as a single batch on every call.
type BatchProvider = data.BatchProvider

// NewBatchProvider creates a full-batch provider. y and lengths are
// optional pass-through companions.
func NewBatchProvider(x, y *dense.Array, lengths []int) (*BatchProvider, error) {
	return data.NewBatchProvider(x, y, lengths)
}

// MinibatchProvider cycles over uniform-width numeric rows, reshuffling
// features, labels and lengths in lockstep at epoch boundaries.
type MinibatchProvider = data.MinibatchProvider

// NewMinibatchProvider creates a fixed-size minibatch provider.
func NewMinibatchProvider(x, y *dense.Array, lengths []int, batchSize int, opts ...Option) (*MinibatchProvider, error) {
	return data.NewMinibatchProvider(x, y, lengths, batchSize, opts...)
}

// PaddedSequenceProvider cycles over variable-length rows, padding each
// batch to its own maximum length.
type PaddedSequenceProvider = data.PaddedSequenceProvider

// NewPaddedSequenceProvider creates an unlabelled sequence provider.
func NewPaddedSequenceProvider(rows [][]float64, batchSize int, padding float64, opts ...Option) (*PaddedSequenceProvider, error) {
	return data.NewPaddedSequenceProvider(rows, batchSize, padding, opts...)
}

// LabelledSequenceProvider adds per-batch one-hot label encoding on top of
// padded sequence batches. The encoding width is batch-local: it is sized
// to the maximum label observed in the batch.
type LabelledSequenceProvider = data.LabelledSequenceProvider

// NewLabelledSequenceProvider creates a labelled sequence provider.
func NewLabelledSequenceProvider(rows [][]float64, labels []int, batchSize int, padding float64, opts ...Option) (*LabelledSequenceProvider, error) {
	return data.NewLabelledSequenceProvider(rows, labels, batchSize, padding, opts...)
}
