// Package data provides minibatch providers: deterministic, cyclic
// iteration over a dataset in fixed-size contiguous batches, with optional
// end-of-epoch shuffling and optional per-batch padding of variable-length
// rows.
//
// Every batch carries a Meta record with the rows' true lengths and a Space
// describing the batch array's axis layout, conventionally (b, w). A
// training loop pulls batches and passes the metadata downstream to layers
// that reshape through the space.
//
// Providers are not safe for concurrent use; each instance belongs to one
// iterating goroutine.
package data
