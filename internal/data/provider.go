package data

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/BKJackson/txtnets/internal/dense"
	"github.com/BKJackson/txtnets/internal/space"
)

// ErrConfiguration indicates an invalid provider configuration: a batch size
// outside (0, dataset size], or parallel arrays with mismatched row counts.
var ErrConfiguration = errors.New("invalid configuration")

// Meta describes one emitted batch: the original length of every row before
// padding, and the named-axis layout of the batch array.
type Meta struct {
	Lengths    []int
	SpaceBelow *space.Space
}

// Batch is one fixed-size slice of the dataset. Labels is nil for
// unlabelled providers. The arrays are borrowed: a caller must not retain
// them across the next NextBatch call.
type Batch struct {
	Data   *dense.Array
	Labels *dense.Array
	Meta   Meta
}

// Provider produces an unbounded cyclic sequence of batches. Iteration is
// synchronous and single-threaded; a provider instance must be owned by one
// iterating goroutine.
type Provider interface {
	NextBatch() *Batch
}

// Option configures a provider.
type Option func(*options)

type options struct {
	rng     *rand.Rand
	shuffle bool
}

func defaultOptions() *options {
	return &options{
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		shuffle: true,
	}
}

// WithRand sets the random source used for end-of-epoch shuffling.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithoutShuffle disables end-of-epoch shuffling; the dataset is visited in
// its original order every epoch.
func WithoutShuffle() Option {
	return func(o *options) {
		o.shuffle = false
	}
}

// epochState is the counter shared by every minibatch variant. index starts
// at -1 and wraps modulo batchesPerEpoch; the wrap to 0 marks an epoch
// boundary.
type epochState struct {
	index           int
	batchesPerEpoch int
}

func newEpochState(numRows, batchSize int) (epochState, error) {
	if batchSize <= 0 {
		return epochState{}, fmt.Errorf("batch size %d must be positive: %w", batchSize, ErrConfiguration)
	}
	if batchSize > numRows {
		return epochState{}, fmt.Errorf("batch size %d exceeds dataset size %d: %w", batchSize, numRows, ErrConfiguration)
	}
	// Integer division: rows past the last full batch are never visited.
	return epochState{index: -1, batchesPerEpoch: numRows / batchSize}, nil
}

// advance moves to the next batch index and reports whether a new epoch
// started.
func (e *epochState) advance() bool {
	e.index = (e.index + 1) % e.batchesPerEpoch
	return e.index == 0
}

// permutation helpers: one permutation vector is generated per shuffle and
// applied identically to every parallel container, so row correspondence
// across features, labels and lengths is preserved.

func permuteRows(a *dense.Array, perm []int) *dense.Array {
	out := dense.Zeros(a.Shape())
	rowSize := a.NumElements() / a.Shape()[0]
	src := a.Data()
	dst := out.Data()
	for i, j := range perm {
		copy(dst[i*rowSize:(i+1)*rowSize], src[j*rowSize:(j+1)*rowSize])
	}
	return out
}

func permuteInts(v []int, perm []int) []int {
	out := make([]int, len(v))
	for i, j := range perm {
		out[i] = v[j]
	}
	return out
}

func permuteRowSlices(rows [][]float64, perm []int) [][]float64 {
	out := make([][]float64, len(rows))
	for i, j := range perm {
		out[i] = rows[j]
	}
	return out
}

// mustRows slices rows [start, end); bounds are established at construction.
func mustRows(a *dense.Array, start, end int) *dense.Array {
	view, err := a.SliceRows(start, end)
	if err != nil {
		panic(err)
	}
	return view
}

// mustInfer labels a batch array with the conventional (batch, width) axes.
func mustInfer(x *dense.Array) *space.Space {
	s, err := space.Infer(x, "b", "w")
	if err != nil {
		panic(err)
	}
	return s
}
