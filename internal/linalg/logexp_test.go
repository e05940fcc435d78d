// Copyright 2025 The Geomopt Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linalg

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// randomSPD returns a well-conditioned symmetric positive-definite
// matrix.
func randomSPD(rng *rand.Rand, n int) *mat.Dense {
	a := randomDense(rng, n, n)
	var spd mat.Dense
	spd.Mul(a.T(), a)
	for i := 0; i < n; i++ {
		spd.Set(i, i, spd.At(i, i)+float64(n))
	}
	return mat.DenseCopyOf(&spd)
}

// randomNearIdentity returns a nonsymmetric matrix with spectrum
// clustered around 1, comfortably inside the principal-logarithm domain.
func randomNearIdentity(rng *rand.Rand, n int) *mat.Dense {
	a := randomDense(rng, n, n)
	a.Scale(0.2/math.Sqrt(float64(n)), a)
	for i := 0; i < n; i++ {
		a.Set(i, i, a.At(i, i)+1)
	}
	return a
}

func TestExpmDiagonal(t *testing.T) {
	a := mat.NewDense(3, 3, nil)
	a.Set(0, 0, 0)
	a.Set(1, 1, 1)
	a.Set(2, 2, -2)

	e, err := Expm(a)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, e.At(0, 0), 1e-12)
	assert.InDelta(t, math.E, e.At(1, 1), 1e-12)
	assert.InDelta(t, math.Exp(-2), e.At(2, 2), 1e-12)
	assert.InDelta(t, 0.0, e.At(0, 1), 1e-12)
}

func TestExpmNilpotent(t *testing.T) {
	// exp([[0, 1], [0, 0]]) = [[1, 1], [0, 1]] exactly.
	a := mat.NewDense(2, 2, []float64{0, 1, 0, 0})
	e, err := Expm(a)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(mat.NewDense(2, 2, []float64{1, 1, 0, 1}), e, 1e-14))
}

func TestExpmLogmRoundTripGeneral(t *testing.T) {
	rng := rand.New(rand.NewPCG(10, 1))
	a := randomNearIdentity(rng, 6)

	l, err := Logm(a)
	require.NoError(t, err)
	back, err := Expm(l)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(a, back, 1e-9), "expm(logm(a)) differs from a")
}

func TestLogmExpmRoundTripGeneral(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 1))
	a := randomDense(rng, 5, 5)
	a.Scale(0.3, a)

	e, err := Expm(a)
	require.NoError(t, err)
	back, err := Logm(e)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(a, back, 1e-9), "logm(expm(a)) differs from a")
}

func TestExpmSymLogmSPDRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(12, 1))
	a := randomSPD(rng, 7)

	l, err := LogmSPD(a)
	require.NoError(t, err)
	// The log of a symmetric matrix is symmetric.
	assert.True(t, mat.EqualApprox(l, Transpose(l), 1e-10))

	back, err := ExpmSym(l)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(a, back, 1e-9), "expmsym(logmspd(a)) differs from a")
}

func TestSymmetricAndGeneralPathsAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 1))
	a := randomSPD(rng, 5)

	general, err := Logm(a)
	require.NoError(t, err)
	symmetric, err := LogmSPD(a)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(general, symmetric, 1e-8))

	eGeneral, err := Expm(symmetric)
	require.NoError(t, err)
	eSymmetric, err := ExpmSym(symmetric)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(eGeneral, eSymmetric, 1e-8))
}

func TestLogmSingularMatrix(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 0, 0, 0})
	_, err := Logm(a)
	require.Error(t, err)
	var domainErr *NumericalDomainError
	assert.True(t, errors.As(err, &domainErr))
}

func TestLogmNegativeRealEigenvalue(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 0, 0, -1})
	_, err := Logm(a)
	require.Error(t, err)
	var domainErr *NumericalDomainError
	assert.True(t, errors.As(err, &domainErr))
}

func TestLogmSPDRejectsIndefiniteSpectrum(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 0, 0, -2})
	_, err := LogmSPD(a)
	require.Error(t, err)
	var domainErr *NumericalDomainError
	assert.True(t, errors.As(err, &domainErr))
}

func TestBatchExpmLogmRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(14, 1))
	b := NewBatch(3, 4, 4)
	for i := 0; i < 3; i++ {
		b.At(i).Copy(randomSPD(rng, 4))
	}

	logs, err := b.LogmSPD()
	require.NoError(t, err)
	back, err := logs.ExpmSym()
	require.NoError(t, err)

	require.Equal(t, 3, back.Len())
	for i := 0; i < 3; i++ {
		assert.True(t, mat.EqualApprox(b.At(i), back.At(i), 1e-9), "slice %d", i)
	}
}

func TestBatchLogmReportsFailingSlice(t *testing.T) {
	b := Identity(2, 2)
	b.At(1).Set(0, 0, 0)
	b.At(1).Set(1, 1, 0)

	_, err := b.Logm()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slice 1")
}
