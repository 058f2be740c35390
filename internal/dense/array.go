// Package dense implements row-major float64 arrays: shapes, reshaping,
// axis permutation, concatenation and contiguous row slicing. It is the
// substrate the space and data packages operate on.
package dense

import "fmt"

// Array is a dense row-major float64 array.
//
// The backing slice is shared by view operations (Reshape, SliceRows); use
// Clone when an independent copy is needed.
type Array struct {
	data  []float64
	shape Shape
}

// FromSlice creates an array from a flat slice and a shape.
// The slice is used directly, not copied.
func FromSlice(data []float64, shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("FromSlice: %w", err)
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("FromSlice: shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	return &Array{data: data, shape: shape.Clone()}, nil
}

// FromRows creates a rows×cols array from equally sized rows.
func FromRows(rows [][]float64) (*Array, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("FromRows: no rows provided")
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d elements, expected %d", i, len(row), cols)
		}
		data = append(data, row...)
	}
	return &Array{data: data, shape: Shape{len(rows), cols}}, nil
}

// Zeros creates a zero-filled array with the given shape.
func Zeros(shape Shape) *Array {
	return &Array{
		data:  make([]float64, shape.NumElements()),
		shape: shape.Clone(),
	}
}

// Shape returns the array's shape.
func (a *Array) Shape() Shape {
	return a.shape
}

// Rank returns the number of dimensions.
func (a *Array) Rank() int {
	return len(a.shape)
}

// NumElements returns the total number of elements.
func (a *Array) NumElements() int {
	return len(a.data)
}

// Data returns the backing slice (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the array.
func (a *Array) Data() []float64 {
	return a.data
}

// Clone creates a deep copy of the array.
func (a *Array) Clone() *Array {
	data := make([]float64, len(a.data))
	copy(data, a.data)
	return &Array{data: data, shape: a.shape.Clone()}
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (a *Array) At(indices ...int) float64 {
	return a.data[a.offset(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (a *Array) Set(value float64, indices ...int) {
	a.data[a.offset(indices)] = value
}

func (a *Array) offset(indices []int) int {
	if len(indices) != len(a.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(a.shape), len(indices)))
	}
	offset := 0
	strides := a.shape.ComputeStrides()
	for i, idx := range indices {
		if idx < 0 || idx >= a.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, a.shape[i]))
		}
		offset += idx * strides[i]
	}
	return offset
}

// Equal reports whether two arrays have the same shape and contents.
func (a *Array) Equal(other *Array) bool {
	if !a.shape.Equal(other.shape) {
		return false
	}
	for i := range a.data {
		if a.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// String returns a human-readable representation of the array.
func (a *Array) String() string {
	return fmt.Sprintf("Array%v (%d elements)", a.shape, len(a.data))
}
