package data

import (
	"fmt"

	"github.com/BKJackson/txtnets/internal/dense"
)

// PaddedSequenceProvider cycles over variable-length rows in fixed-size
// batches. Every emitted batch is padded to its own maximum row length, not
// a global one; the true lengths are recorded in the batch metadata before
// padding.
type PaddedSequenceProvider struct {
	rows    [][]float64
	padding float64

	batchSize int
	state     epochState
	opts      *options
}

// NewPaddedSequenceProvider creates an unlabelled sequence provider.
// padding is the value appended to short rows.
func NewPaddedSequenceProvider(rows [][]float64, batchSize int, padding float64, opts ...Option) (*PaddedSequenceProvider, error) {
	if err := checkRows(rows); err != nil {
		return nil, fmt.Errorf("NewPaddedSequenceProvider: %w", err)
	}
	state, err := newEpochState(len(rows), batchSize)
	if err != nil {
		return nil, fmt.Errorf("NewPaddedSequenceProvider: %w", err)
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	return &PaddedSequenceProvider{
		rows:      rows,
		padding:   padding,
		batchSize: batchSize,
		state:     state,
		opts:      options,
	}, nil
}

// NextBatch pads the next slice of rows to the batch maximum length.
func (p *PaddedSequenceProvider) NextBatch() *Batch {
	if p.state.advance() && p.opts.shuffle {
		perm := p.opts.rng.Perm(len(p.rows))
		p.rows = permuteRowSlices(p.rows, perm)
	}

	start := p.state.index * p.batchSize
	rows := p.rows[start : start+p.batchSize]

	padded, lengths := padRows(rows, p.padding)
	return &Batch{
		Data: padded,
		Meta: Meta{
			Lengths:    lengths,
			SpaceBelow: mustInfer(padded),
		},
	}
}

// BatchesPerEpoch returns the number of batches visited per epoch.
func (p *PaddedSequenceProvider) BatchesPerEpoch() int {
	return p.state.batchesPerEpoch
}

// LabelledSequenceProvider is a PaddedSequenceProvider over labelled rows.
// Integer class labels are one-hot encoded per batch, sized to the maximum
// label observed in that batch; the encoding width is batch-local and
// callers must not assume a stable cardinality across batches.
type LabelledSequenceProvider struct {
	rows   [][]float64
	labels []int

	padding   float64
	batchSize int
	state     epochState
	opts      *options
}

// NewLabelledSequenceProvider creates a labelled sequence provider. labels
// must be non-negative class indices, one per row.
func NewLabelledSequenceProvider(rows [][]float64, labels []int, batchSize int, padding float64, opts ...Option) (*LabelledSequenceProvider, error) {
	if err := checkRows(rows); err != nil {
		return nil, fmt.Errorf("NewLabelledSequenceProvider: %w", err)
	}
	if len(labels) != len(rows) {
		return nil, fmt.Errorf("NewLabelledSequenceProvider: %d labels for %d rows: %w", len(labels), len(rows), ErrConfiguration)
	}
	for i, label := range labels {
		if label < 0 {
			return nil, fmt.Errorf("NewLabelledSequenceProvider: negative label %d at row %d: %w", label, i, ErrConfiguration)
		}
	}
	state, err := newEpochState(len(rows), batchSize)
	if err != nil {
		return nil, fmt.Errorf("NewLabelledSequenceProvider: %w", err)
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	return &LabelledSequenceProvider{
		rows:      rows,
		labels:    labels,
		padding:   padding,
		batchSize: batchSize,
		state:     state,
		opts:      options,
	}, nil
}

// NextBatch pads the next slice of rows and one-hot encodes its labels.
func (p *LabelledSequenceProvider) NextBatch() *Batch {
	if p.state.advance() && p.opts.shuffle {
		perm := p.opts.rng.Perm(len(p.rows))
		p.rows = permuteRowSlices(p.rows, perm)
		p.labels = permuteInts(p.labels, perm)
	}

	start := p.state.index * p.batchSize
	end := start + p.batchSize
	rows := p.rows[start:end]

	padded, lengths := padRows(rows, p.padding)
	return &Batch{
		Data:   padded,
		Labels: oneHot(p.labels[start:end]),
		Meta: Meta{
			Lengths:    lengths,
			SpaceBelow: mustInfer(padded),
		},
	}
}

// BatchesPerEpoch returns the number of batches visited per epoch.
func (p *LabelledSequenceProvider) BatchesPerEpoch() int {
	return p.state.batchesPerEpoch
}

// checkRows rejects empty rows: a batch of them would have width zero.
func checkRows(rows [][]float64) error {
	for i, row := range rows {
		if len(row) == 0 {
			return fmt.Errorf("row %d is empty: %w", i, ErrConfiguration)
		}
	}
	return nil
}

// padRows pads every row to the batch maximum length and returns the packed
// batch array together with the original row lengths.
func padRows(rows [][]float64, padding float64) (*dense.Array, []int) {
	lengths := make([]int, len(rows))
	maxLength := 0
	for i, row := range rows {
		lengths[i] = len(row)
		if len(row) > maxLength {
			maxLength = len(row)
		}
	}

	data := make([]float64, 0, len(rows)*maxLength)
	for _, row := range rows {
		data = append(data, row...)
		for i := len(row); i < maxLength; i++ {
			data = append(data, padding)
		}
	}

	padded, err := dense.FromSlice(data, dense.Shape{len(rows), maxLength})
	if err != nil {
		panic(err)
	}
	return padded, lengths
}

// oneHot encodes labels as rows of width max(labels)+1.
func oneHot(labels []int) *dense.Array {
	maxLabel := 0
	for _, label := range labels {
		if label > maxLabel {
			maxLabel = label
		}
	}

	encoded := dense.Zeros(dense.Shape{len(labels), maxLabel + 1})
	for i, label := range labels {
		encoded.Set(1, i, label)
	}
	return encoded
}
