// Copyright 2025 The Geomopt Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Batch is a stack of k dense rows×cols matrices backed by a single
// contiguous array. A batch with k == 0 is valid; every batched operation
// maps it to another empty batch of the appropriate shape. Batched
// operations apply per slice, preserve the slice count and never reorder
// slices.
type Batch struct {
	k, rows, cols int
	data          []float64
}

// NewBatch returns a zero-filled batch of k rows×cols matrices.
// It panics with *ConfigurationError unless k >= 0, rows >= 1 and
// cols >= 1.
func NewBatch(k, rows, cols int) *Batch {
	if k < 0 || rows < 1 || cols < 1 {
		panic(&ConfigurationError{
			Op:     "NewBatch",
			Reason: fmt.Sprintf("sizes must satisfy k >= 0, rows >= 1, cols >= 1; got (%d, %d, %d)", k, rows, cols),
		})
	}
	return &Batch{k: k, rows: rows, cols: cols, data: make([]float64, k*rows*cols)}
}

// FromDense returns a batch whose slices are copies of the given
// matrices, in order. At least one matrix is required, and all matrices
// must share the same shape.
func FromDense(ms ...*mat.Dense) *Batch {
	if len(ms) == 0 {
		panic(&ConfigurationError{Op: "FromDense", Reason: "at least one matrix required"})
	}
	r, c := ms[0].Dims()
	b := NewBatch(len(ms), r, c)
	for i, m := range ms {
		b.Set(i, m)
	}
	return b
}

// Identity returns a batch of k n×n identity matrices.
func Identity(k, n int) *Batch {
	b := NewBatch(k, n, n)
	for i := 0; i < k; i++ {
		s := b.At(i)
		for j := 0; j < n; j++ {
			s.Set(j, j, 1)
		}
	}
	return b
}

// Len returns the number of matrices in the batch.
func (b *Batch) Len() int { return b.k }

// Dims returns the shape shared by all matrices in the batch.
func (b *Batch) Dims() (rows, cols int) { return b.rows, b.cols }

// At returns the i-th matrix as a view sharing the batch's backing
// array: writes through the view write the batch.
func (b *Batch) At(i int) *mat.Dense {
	if i < 0 || i >= b.k {
		panic(&ShapeError{
			Op:   "Batch.At",
			Want: fmt.Sprintf("index in [0, %d)", b.k),
			Got:  fmt.Sprintf("%d", i),
		})
	}
	n := b.rows * b.cols
	return mat.NewDense(b.rows, b.cols, b.data[i*n:(i+1)*n])
}

// Set copies m into the i-th slice of the batch.
func (b *Batch) Set(i int, m mat.Matrix) {
	r, c := m.Dims()
	if r != b.rows || c != b.cols {
		panic(&ShapeError{
			Op:   "Batch.Set",
			Want: fmt.Sprintf("%d×%d", b.rows, b.cols),
			Got:  fmt.Sprintf("%d×%d", r, c),
		})
	}
	b.At(i).Copy(m)
}

// Clone returns a deep copy of the batch.
func (b *Batch) Clone() *Batch {
	out := &Batch{k: b.k, rows: b.rows, cols: b.cols, data: make([]float64, len(b.data))}
	copy(out.data, b.data)
	return out
}

// mapSlices builds a new rows×cols batch of the same length by applying f
// to each (dst, src) slice pair.
func (b *Batch) mapSlices(rows, cols int, f func(dst, src *mat.Dense)) *Batch {
	out := &Batch{k: b.k, rows: rows, cols: cols, data: make([]float64, b.k*rows*cols)}
	for i := 0; i < b.k; i++ {
		f(out.At(i), b.At(i))
	}
	return out
}

func (b *Batch) mustSquare(op string) {
	if b.rows != b.cols {
		panic(&ShapeError{
			Op:   op,
			Want: "square matrices",
			Got:  fmt.Sprintf("%d×%d", b.rows, b.cols),
		})
	}
}
