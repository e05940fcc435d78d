// Copyright 2025 The Geomopt Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Transpose returns the transpose of a.
func Transpose(a *mat.Dense) *mat.Dense {
	r, c := a.Dims()
	t := mat.NewDense(c, r, nil)
	t.Copy(a.T())
	return t
}

// ConjTranspose returns the conjugate transpose of a. Batches hold real
// data, so conjugation is the identity and the result equals
// Transpose(a); the entry point exists because the eigendecomposition
// reconstruction formulas are stated in terms of the conjugate
// transpose.
func ConjTranspose(a *mat.Dense) *mat.Dense {
	return Transpose(a)
}

// Symmetrize returns (a + aᵀ)/2 for a square matrix a.
func Symmetrize(a *mat.Dense) *mat.Dense {
	mustSquareDense("Symmetrize", a)
	r, _ := a.Dims()
	s := mat.NewDense(r, r, nil)
	s.Add(a, a.T())
	s.Scale(0.5, s)
	return s
}

// SkewSymmetrize returns (a - aᵀ)/2 for a square matrix a.
func SkewSymmetrize(a *mat.Dense) *mat.Dense {
	mustSquareDense("SkewSymmetrize", a)
	r, _ := a.Dims()
	s := mat.NewDense(r, r, nil)
	s.Sub(a, a.T())
	s.Scale(0.5, s)
	return s
}

// Transpose returns a batch holding the transpose of every matrix in b.
func (b *Batch) Transpose() *Batch {
	return b.mapSlices(b.cols, b.rows, func(dst, src *mat.Dense) {
		dst.Copy(src.T())
	})
}

// ConjTranspose is the batched form of the package-level ConjTranspose.
func (b *Batch) ConjTranspose() *Batch {
	return b.Transpose()
}

// Symmetrize returns a batch with every matrix replaced by its symmetric
// part (a + aᵀ)/2.
func (b *Batch) Symmetrize() *Batch {
	b.mustSquare("Symmetrize")
	return b.mapSlices(b.rows, b.cols, func(dst, src *mat.Dense) {
		dst.Add(src, src.T())
		dst.Scale(0.5, dst)
	})
}

// SkewSymmetrize returns a batch with every matrix replaced by its
// skew-symmetric part (a - aᵀ)/2.
func (b *Batch) SkewSymmetrize() *Batch {
	b.mustSquare("SkewSymmetrize")
	return b.mapSlices(b.rows, b.cols, func(dst, src *mat.Dense) {
		dst.Sub(src, src.T())
		dst.Scale(0.5, dst)
	})
}

func mustSquareDense(op string, a *mat.Dense) {
	r, c := a.Dims()
	if r != c {
		panic(&ShapeError{
			Op:   op,
			Want: "square matrix",
			Got:  fmt.Sprintf("%d×%d", r, c),
		})
	}
}
