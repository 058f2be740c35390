package dense

import "testing"

func sliceEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func mustFromSlice(t *testing.T, data []float64, shape Shape) *Array {
	t.Helper()
	a, err := FromSlice(data, shape)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	return a
}

func TestShape(t *testing.T) {
	t.Run("num elements", func(t *testing.T) {
		if got := (Shape{2, 3, 4}).NumElements(); got != 24 {
			t.Errorf("expected 24 elements, got %d", got)
		}
		if got := (Shape{}).NumElements(); got != 1 {
			t.Errorf("expected 1 element for scalar shape, got %d", got)
		}
	})

	t.Run("strides", func(t *testing.T) {
		strides := Shape{2, 3, 4}.ComputeStrides()
		want := []int{12, 4, 1}
		for i := range want {
			if strides[i] != want[i] {
				t.Errorf("expected strides %v, got %v", want, strides)
				break
			}
		}
	})

	t.Run("equal", func(t *testing.T) {
		if !(Shape{2, 3}).Equal(Shape{2, 3}) {
			t.Error("expected shapes to be equal")
		}
		if (Shape{2, 3}).Equal(Shape{3, 2}) {
			t.Error("expected shapes to differ")
		}
	})

	t.Run("validate rejects non-positive dims", func(t *testing.T) {
		if err := (Shape{2, 0}).Validate(); err == nil {
			t.Error("expected error for zero dimension")
		}
	})
}

func TestFromSlice(t *testing.T) {
	t.Run("element count must match shape", func(t *testing.T) {
		if _, err := FromSlice([]float64{1, 2, 3}, Shape{2, 2}); err == nil {
			t.Error("expected error for mismatched element count")
		}
	})

	t.Run("shares backing data", func(t *testing.T) {
		data := []float64{1, 2, 3, 4}
		a := mustFromSlice(t, data, Shape{2, 2})
		data[0] = 9
		if a.At(0, 0) != 9 {
			t.Error("expected array to share the source slice")
		}
	})
}

func TestFromRows(t *testing.T) {
	a, err := FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	if err != nil {
		t.Fatalf("FromRows failed: %v", err)
	}
	if !a.Shape().Equal(Shape{2, 3}) {
		t.Errorf("expected shape [2 3], got %v", a.Shape())
	}
	if !sliceEqual(a.Data(), []float64{1, 2, 3, 4, 5, 6}) {
		t.Errorf("unexpected data %v", a.Data())
	}

	if _, err := FromRows([][]float64{{1, 2}, {3}}); err == nil {
		t.Error("expected error for ragged rows")
	}
}

func TestReshape(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})

	t.Run("reshape to compatible shape", func(t *testing.T) {
		b, err := a.Reshape(Shape{3, 2})
		if err != nil {
			t.Fatalf("Reshape failed: %v", err)
		}
		if !b.Shape().Equal(Shape{3, 2}) {
			t.Errorf("expected shape [3 2], got %v", b.Shape())
		}
		if !sliceEqual(b.Data(), a.Data()) {
			t.Error("expected reshape to preserve element order")
		}
	})

	t.Run("infer -1 dimension", func(t *testing.T) {
		b, err := a.Reshape(Shape{-1, 2})
		if err != nil {
			t.Fatalf("Reshape failed: %v", err)
		}
		if !b.Shape().Equal(Shape{3, 2}) {
			t.Errorf("expected shape [3 2], got %v", b.Shape())
		}
	})

	t.Run("shares data with source", func(t *testing.T) {
		b, err := a.Reshape(Shape{6})
		if err != nil {
			t.Fatalf("Reshape failed: %v", err)
		}
		b.Set(42, 0)
		if a.At(0, 0) != 42 {
			t.Error("expected reshape to share backing data")
		}
		a.Set(1, 0, 0)
	})

	t.Run("rejects incompatible shapes", func(t *testing.T) {
		if _, err := a.Reshape(Shape{4, 2}); err == nil {
			t.Error("expected error for incompatible shape")
		}
		if _, err := a.Reshape(Shape{-1, -1}); err == nil {
			t.Error("expected error for two inferred dimensions")
		}
		if _, err := a.Reshape(Shape{-1, 4}); err == nil {
			t.Error("expected error for non-divisible inference")
		}
	})
}

func TestTranspose(t *testing.T) {
	t.Run("2d swap", func(t *testing.T) {
		a := mustFromSlice(t, []float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
		b, err := a.Transpose(1, 0)
		if err != nil {
			t.Fatalf("Transpose failed: %v", err)
		}
		if !b.Shape().Equal(Shape{3, 2}) {
			t.Errorf("expected shape [3 2], got %v", b.Shape())
		}
		if !sliceEqual(b.Data(), []float64{1, 4, 2, 5, 3, 6}) {
			t.Errorf("unexpected data %v", b.Data())
		}
	})

	t.Run("default reverses dimensions", func(t *testing.T) {
		a := mustFromSlice(t, []float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
		b, err := a.Transpose()
		if err != nil {
			t.Fatalf("Transpose failed: %v", err)
		}
		if !b.Shape().Equal(Shape{3, 2}) {
			t.Errorf("expected shape [3 2], got %v", b.Shape())
		}
	})

	t.Run("3d permutation", func(t *testing.T) {
		a := mustFromSlice(t, []float64{1, 2, 3, 4, 5, 6, 7, 8}, Shape{2, 2, 2})
		b, err := a.Transpose(2, 0, 1)
		if err != nil {
			t.Fatalf("Transpose failed: %v", err)
		}
		if !b.Shape().Equal(Shape{2, 2, 2}) {
			t.Errorf("unexpected shape %v", b.Shape())
		}
		// b[i][j][k] = a[j][k][i]
		if b.At(0, 1, 1) != a.At(1, 1, 0) {
			t.Error("unexpected element placement after permutation")
		}
		if b.At(1, 0, 1) != a.At(0, 1, 1) {
			t.Error("unexpected element placement after permutation")
		}
	})

	t.Run("rejects bad permutations", func(t *testing.T) {
		a := mustFromSlice(t, []float64{1, 2, 3, 4}, Shape{2, 2})
		if _, err := a.Transpose(0); err == nil {
			t.Error("expected error for short permutation")
		}
		if _, err := a.Transpose(0, 0); err == nil {
			t.Error("expected error for repeated axis")
		}
		if _, err := a.Transpose(0, 2); err == nil {
			t.Error("expected error for out-of-range axis")
		}
	})
}

func TestConcat(t *testing.T) {
	t.Run("axis 0", func(t *testing.T) {
		a := mustFromSlice(t, []float64{1, 2, 3}, Shape{1, 3})
		b := mustFromSlice(t, []float64{4, 5, 6}, Shape{1, 3})
		c, err := Concat([]*Array{a, b}, 0)
		if err != nil {
			t.Fatalf("Concat failed: %v", err)
		}
		if !c.Shape().Equal(Shape{2, 3}) {
			t.Errorf("expected shape [2 3], got %v", c.Shape())
		}
		if !sliceEqual(c.Data(), []float64{1, 2, 3, 4, 5, 6}) {
			t.Errorf("unexpected data %v", c.Data())
		}
	})

	t.Run("axis 1", func(t *testing.T) {
		a := mustFromSlice(t, []float64{1, 2, 3, 4}, Shape{2, 2})
		b := mustFromSlice(t, []float64{5, 6, 7, 8}, Shape{2, 2})
		c, err := Concat([]*Array{a, b}, 1)
		if err != nil {
			t.Fatalf("Concat failed: %v", err)
		}
		if !c.Shape().Equal(Shape{2, 4}) {
			t.Errorf("expected shape [2 4], got %v", c.Shape())
		}
		if !sliceEqual(c.Data(), []float64{1, 2, 5, 6, 3, 4, 7, 8}) {
			t.Errorf("unexpected data %v", c.Data())
		}
	})

	t.Run("single array returns clone", func(t *testing.T) {
		a := mustFromSlice(t, []float64{1, 2}, Shape{2})
		c, err := Concat([]*Array{a}, 0)
		if err != nil {
			t.Fatalf("Concat failed: %v", err)
		}
		c.Set(9, 0)
		if a.At(0) == 9 {
			t.Error("expected clone, got shared data")
		}
	})

	t.Run("rejects incompatible shapes", func(t *testing.T) {
		a := mustFromSlice(t, []float64{1, 2, 3, 4}, Shape{2, 2})
		b := mustFromSlice(t, []float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
		if _, err := Concat([]*Array{a, b}, 0); err == nil {
			t.Error("expected error for incompatible shapes on axis 0")
		}
		if _, err := Concat(nil, 0); err == nil {
			t.Error("expected error for empty input")
		}
	})
}

func TestSliceRows(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2, 3, 4, 5, 6}, Shape{3, 2})

	t.Run("contiguous view", func(t *testing.T) {
		v, err := a.SliceRows(1, 3)
		if err != nil {
			t.Fatalf("SliceRows failed: %v", err)
		}
		if !v.Shape().Equal(Shape{2, 2}) {
			t.Errorf("expected shape [2 2], got %v", v.Shape())
		}
		if !sliceEqual(v.Data(), []float64{3, 4, 5, 6}) {
			t.Errorf("unexpected data %v", v.Data())
		}

		v.Set(9, 0, 0)
		if a.At(1, 0) != 9 {
			t.Error("expected view to share backing data")
		}
	})

	t.Run("rejects out-of-range slices", func(t *testing.T) {
		if _, err := a.SliceRows(2, 4); err == nil {
			t.Error("expected error for end past dimension")
		}
		if _, err := a.SliceRows(-1, 1); err == nil {
			t.Error("expected error for negative start")
		}
	})
}

func TestCloneAndEqual(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2, 3, 4}, Shape{2, 2})
	b := a.Clone()

	if !a.Equal(b) {
		t.Error("expected clone to equal source")
	}

	b.Set(9, 0, 0)
	if a.At(0, 0) == 9 {
		t.Error("expected clone to own its data")
	}
	if a.Equal(b) {
		t.Error("expected arrays to differ after mutation")
	}

	c := mustFromSlice(t, []float64{1, 2, 3, 4}, Shape{4})
	if a.Equal(c) {
		t.Error("expected arrays with different shapes to differ")
	}
}
