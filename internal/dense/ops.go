package dense

import "fmt"

// Reshape returns a new array with the given shape, sharing the backing data.
// One dimension may be -1, in which case it is inferred from the element count.
func (a *Array) Reshape(newShape Shape) (*Array, error) {
	totalElements := len(a.data)
	inferIdx := -1
	product := 1
	for i, dim := range newShape {
		switch {
		case dim == -1:
			if inferIdx >= 0 {
				return nil, fmt.Errorf("Reshape: can only have one -1 dimension")
			}
			inferIdx = i
		case dim <= 0:
			return nil, fmt.Errorf("Reshape: dimensions must be positive, got %d", dim)
		default:
			product *= dim
		}
	}

	actualShape := newShape.Clone()
	if inferIdx >= 0 {
		if product == 0 || totalElements%product != 0 {
			return nil, fmt.Errorf("Reshape: cannot infer dimension for shape %v from %d elements", newShape, totalElements)
		}
		actualShape[inferIdx] = totalElements / product
	}

	if actualShape.NumElements() != totalElements {
		return nil, fmt.Errorf("Reshape: cannot reshape %d elements to shape %v (%d elements)", totalElements, actualShape, actualShape.NumElements())
	}

	return &Array{data: a.data, shape: actualShape}, nil
}

// Transpose permutes dimensions according to the given permutation.
// With no arguments, all dimensions are reversed.
func (a *Array) Transpose(axes ...int) (*Array, error) {
	ndim := len(a.shape)

	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}

	if len(axes) != ndim {
		return nil, fmt.Errorf("Transpose: axes length %d must match array dimensions %d", len(axes), ndim)
	}

	newShape := make(Shape, ndim)
	seen := make([]bool, ndim)
	for i, ax := range axes {
		if ax < 0 || ax >= ndim {
			return nil, fmt.Errorf("Transpose: axis %d out of range [0, %d)", ax, ndim)
		}
		if seen[ax] {
			return nil, fmt.Errorf("Transpose: axis %d repeated in permutation %v", ax, axes)
		}
		seen[ax] = true
		newShape[i] = a.shape[ax]
	}

	result := Zeros(newShape)
	transposeData(a.data, result.data, a.shape, newShape, axes)
	return result, nil
}

func transposeData(in, out []float64, oldShape, newShape Shape, axes []int) {
	ndim := len(oldShape)
	oldStrides := oldShape.ComputeStrides()
	newStrides := newShape.ComputeStrides()

	idx := make([]int, ndim)
	for i := range out {
		// Decompose i into multi-dimensional index over the new shape
		tmp := i
		for j := ndim - 1; j >= 0; j-- {
			idx[j] = tmp % newShape[j]
			tmp /= newShape[j]
		}

		oldFlat := 0
		newFlat := 0
		for j := 0; j < ndim; j++ {
			oldFlat += idx[j] * oldStrides[axes[j]]
			newFlat += idx[j] * newStrides[j]
		}
		out[newFlat] = in[oldFlat]
	}
}

// Concat concatenates arrays along the specified axis.
//
// All arrays must have the same shape except along the concatenation axis.
// Supports negative axis indexing (-1 = last dimension).
func Concat(arrays []*Array, axis int) (*Array, error) {
	if len(arrays) == 0 {
		return nil, fmt.Errorf("Concat: no arrays provided")
	}
	if len(arrays) == 1 {
		return arrays[0].Clone(), nil
	}

	first := arrays[0]
	ndim := len(first.shape)

	if axis < 0 {
		axis = ndim + axis
	}
	if axis < 0 || axis >= ndim {
		return nil, fmt.Errorf("Concat: axis %d out of range for %d dimensions", axis, ndim)
	}

	for i, arr := range arrays[1:] {
		if len(arr.shape) != ndim {
			return nil, fmt.Errorf("Concat: array %d has %d dimensions, expected %d", i+1, len(arr.shape), ndim)
		}
		for j := 0; j < ndim; j++ {
			if j != axis && arr.shape[j] != first.shape[j] {
				return nil, fmt.Errorf("Concat: array %d has shape %v, incompatible with %v on axis %d", i+1, arr.shape, first.shape, axis)
			}
		}
	}

	newShape := first.shape.Clone()
	for _, arr := range arrays[1:] {
		newShape[axis] += arr.shape[axis]
	}

	result := Zeros(newShape)

	outerSize := 1
	for i := 0; i < axis; i++ {
		outerSize *= newShape[i]
	}
	innerSize := 1
	for i := axis + 1; i < ndim; i++ {
		innerSize *= newShape[i]
	}

	offset := 0
	for outer := 0; outer < outerSize; outer++ {
		for _, arr := range arrays {
			copyLen := arr.shape[axis] * innerSize
			inStart := outer * copyLen
			copy(result.data[offset:offset+copyLen], arr.data[inStart:inStart+copyLen])
			offset += copyLen
		}
	}

	return result, nil
}

// SliceRows returns a view of rows [start, end) along the first dimension.
// The view shares the backing data with the source array.
func (a *Array) SliceRows(start, end int) (*Array, error) {
	if len(a.shape) == 0 {
		return nil, fmt.Errorf("SliceRows: cannot slice a scalar")
	}
	if start < 0 || end > a.shape[0] || start > end {
		return nil, fmt.Errorf("SliceRows: range [%d, %d) out of bounds for dimension of size %d", start, end, a.shape[0])
	}

	rowSize := 1
	for _, dim := range a.shape[1:] {
		rowSize *= dim
	}

	newShape := a.shape.Clone()
	newShape[0] = end - start
	return &Array{
		data:  a.data[start*rowSize : end*rowSize],
		shape: newShape,
	}, nil
}
