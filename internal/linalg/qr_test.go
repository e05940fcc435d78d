// Copyright 2025 The Geomopt Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linalg

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func assertCanonicalQR(t *testing.T, a, q, r *mat.Dense) {
	t.Helper()
	_, n := a.Dims()

	// q·r reconstructs a.
	var qr mat.Dense
	qr.Mul(q, r)
	assert.True(t, mat.EqualApprox(a, &qr, 1e-10), "q·r does not reconstruct the input")

	// q has orthonormal columns.
	var qtq mat.Dense
	qtq.Mul(q.T(), q)
	assert.True(t, mat.EqualApprox(eye(n), &qtq, 1e-10), "qᵀq is not the identity")

	// r is upper triangular with a nonnegative diagonal.
	for i := 0; i < n; i++ {
		assert.GreaterOrEqual(t, r.At(i, i), 0.0, "r diagonal entry %d is negative", i)
		for j := 0; j < i; j++ {
			assert.InDelta(t, 0.0, r.At(i, j), 1e-12, "r(%d,%d) below the diagonal", i, j)
		}
	}
}

func TestQRTall(t *testing.T) {
	rng := rand.New(rand.NewPCG(20, 1))
	a := randomDense(rng, 6, 4)
	q, r := QR(a)
	assertCanonicalQR(t, a, q, r)
}

func TestQRSquare(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 1))
	a := randomDense(rng, 5, 5)
	q, r := QR(a)
	assertCanonicalQR(t, a, q, r)
}

func TestQRCanonicalAgainstSignFlips(t *testing.T) {
	rng := rand.New(rand.NewPCG(22, 1))
	a := randomDense(rng, 5, 3)

	// Negating a column of the input must not change sign conventions:
	// both factorizations have nonnegative diagonals.
	flipped := mat.DenseCopyOf(a)
	for i := 0; i < 5; i++ {
		flipped.Set(i, 1, -flipped.At(i, 1))
	}

	_, r1 := QR(a)
	_, r2 := QR(flipped)
	for i := 0; i < 3; i++ {
		assert.GreaterOrEqual(t, r1.At(i, i), 0.0)
		assert.GreaterOrEqual(t, r2.At(i, i), 0.0)
	}
}

func TestQRZeroDiagonalPolicy(t *testing.T) {
	// A rank-deficient input produces a zero diagonal entry in r; the
	// zero is treated as sign +1 and the factorization stays finite.
	a := mat.NewDense(3, 2, []float64{
		1, 0,
		2, 0,
		2, 0,
	})
	q, r := QR(a)

	assert.InDelta(t, 0.0, r.At(1, 1), 1e-14)
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			assert.False(t, q.At(i, j) != q.At(i, j), "q(%d,%d) is NaN", i, j)
		}
	}

	var qr mat.Dense
	qr.Mul(q, r)
	assert.True(t, mat.EqualApprox(a, &qr, 1e-12))
	for i := 0; i < 2; i++ {
		assert.GreaterOrEqual(t, r.At(i, i), 0.0)
	}
}

func TestQRWideInputPanics(t *testing.T) {
	a := mat.NewDense(2, 3, nil)
	defer func() {
		_, ok := recover().(*ShapeError)
		assert.True(t, ok, "panic value should be *ShapeError")
	}()
	QR(a)
}

func TestQRBatch(t *testing.T) {
	rng := rand.New(rand.NewPCG(23, 1))
	b := randomBatch(rng, 4, 6, 3)

	q, r := b.QR()
	require.Equal(t, 4, q.Len())
	require.Equal(t, 4, r.Len())

	qr, qc := q.Dims()
	assert.Equal(t, 6, qr)
	assert.Equal(t, 3, qc)
	rr, rc := r.Dims()
	assert.Equal(t, 3, rr)
	assert.Equal(t, 3, rc)

	for i := 0; i < 4; i++ {
		assertCanonicalQR(t, b.At(i), q.At(i), r.At(i))
	}
}
