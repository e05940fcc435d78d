// Copyright 2025 The Geomopt Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// QR computes the thin QR factorization a = q·r with the inherent sign
// ambiguity removed: whenever a diagonal entry of r is negative, the
// corresponding column of q and row of r are negated, so the diagonal of
// r comes out nonnegative and the factorization is canonical. A zero
// diagonal entry carries no sign information and is treated as +1: the
// column and row are left untouched. Callers rely on this canonical
// choice for stable, differentiable retractions.
//
// a must have at least as many rows as columns; q is rows×cols with
// orthonormal columns and r is cols×cols upper triangular.
func QR(a *mat.Dense) (q, r *mat.Dense) {
	m, n := a.Dims()
	if m < n {
		panic(&ShapeError{
			Op:   "QR",
			Want: "rows >= cols",
			Got:  fmt.Sprintf("%d×%d", m, n),
		})
	}

	var qr mat.QR
	qr.Factorize(a)
	var qFull, rFull mat.Dense
	qr.QTo(&qFull)
	qr.RTo(&rFull)

	q = mat.NewDense(m, n, nil)
	q.Copy(qFull.Slice(0, m, 0, n))
	r = mat.NewDense(n, n, nil)
	r.Copy(rFull.Slice(0, n, 0, n))

	for j := 0; j < n; j++ {
		if r.At(j, j) >= 0 {
			continue
		}
		for i := 0; i < m; i++ {
			q.Set(i, j, -q.At(i, j))
		}
		for i := 0; i < n; i++ {
			r.Set(j, i, -r.At(j, i))
		}
	}
	return q, r
}

// QR is the batched form of the package-level QR: q holds the
// orthonormal factors, r the upper-triangular factors, slice for slice.
func (b *Batch) QR() (q, r *Batch) {
	if b.rows < b.cols {
		panic(&ShapeError{
			Op:   "QR",
			Want: "rows >= cols",
			Got:  fmt.Sprintf("%d×%d", b.rows, b.cols),
		})
	}
	q = &Batch{k: b.k, rows: b.rows, cols: b.cols, data: make([]float64, b.k*b.rows*b.cols)}
	r = &Batch{k: b.k, rows: b.cols, cols: b.cols, data: make([]float64, b.k*b.cols*b.cols)}
	for i := 0; i < b.k; i++ {
		qi, ri := QR(b.At(i))
		q.At(i).Copy(qi)
		r.At(i).Copy(ri)
	}
	return q, r
}
