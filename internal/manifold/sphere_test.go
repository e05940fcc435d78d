// Copyright 2025 The Geomopt Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package manifold

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func newSphere(t *testing.T) *Sphere {
	t.Helper()
	s, err := NewSphere(15)
	require.NoError(t, err)
	return s
}

func TestSphereConstructionRejectsSmallDimension(t *testing.T) {
	_, err := NewSphere(1)
	require.Error(t, err)
	var cfgErr *ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestSphereDimAndTypicalDist(t *testing.T) {
	s := newSphere(t)
	assert.Equal(t, 14, s.Dim())
	assert.InDelta(t, math.Pi, s.TypicalDist(), 1e-15)
}

func TestSphereRandomPointIsUnit(t *testing.T) {
	s := newSphere(t)
	x := s.RandomPoint()
	assert.InDelta(t, 1, mat.Norm(x, 2), 1e-12)
}

func TestSphereDistProperties(t *testing.T) {
	s := newSphere(t)
	x := s.RandomPoint()
	y := s.RandomPoint()

	assert.InDelta(t, s.Dist(x, y), s.Dist(y, x), 1e-12)
	assert.InDelta(t, 0, s.Dist(x, x), 1e-6)
	assert.GreaterOrEqual(t, s.Dist(x, y), 0.0)

	// The antipode is half a great circle away.
	antipode := mat.DenseCopyOf(x)
	antipode.Scale(-1, antipode)
	assert.InDelta(t, math.Pi, s.Dist(x, antipode), 1e-6)
}

func TestSphereProjectionIsIdempotentAndTangent(t *testing.T) {
	s := newSphere(t)
	x := s.RandomPoint()
	v := randNormal(15, 1)

	p := s.Projection(x, v)
	assert.InDelta(t, 0, frobInner(x, p), 1e-10, "projection should be orthogonal to the point")
	assert.True(t, mat.EqualApprox(p, s.Projection(x, p), 1e-12), "projection should be idempotent")
}

func TestSphereRetractionZeroIsFixedPoint(t *testing.T) {
	s := newSphere(t)
	x := s.RandomPoint()
	zero := mat.NewDense(15, 1, nil)
	assert.True(t, mat.EqualApprox(x, s.Retraction(x, zero), 1e-15))
}

func TestSphereRetractionStaysOnManifold(t *testing.T) {
	s := newSphere(t)
	x := s.RandomPoint()
	u := s.RandomTangentVector(x)
	u.Scale(2.5, u)
	assert.InDelta(t, 1, mat.Norm(s.Retraction(x, u), 2), 1e-12)
}

func TestSphereExpLogInverse(t *testing.T) {
	s := newSphere(t)
	x := s.RandomPoint()
	y := s.RandomPoint()

	assert.True(t, mat.EqualApprox(y, s.Exp(x, s.Log(x, y)), 1e-6))
}

func TestSphereLogExpInverse(t *testing.T) {
	s := newSphere(t)
	x := s.RandomPoint()
	u := s.RandomTangentVector(x)

	assert.True(t, mat.EqualApprox(u, s.Log(x, s.Exp(x, u)), 1e-6))
}

func TestSphereExpZeroTangent(t *testing.T) {
	s := newSphere(t)
	x := s.RandomPoint()
	zero := mat.NewDense(15, 1, nil)
	assert.True(t, mat.EqualApprox(x, s.Exp(x, zero), 1e-15))
}

func TestSphereGradientConversion(t *testing.T) {
	s := newSphere(t)
	x := s.RandomPoint()
	egrad := randNormal(15, 1)

	rgrad := s.EuclideanToRiemannianGradient(x, egrad)
	assert.InDelta(t, 0, frobInner(x, rgrad), 1e-10, "riemannian gradient should be tangent")
}

func TestSphereHessianConversion(t *testing.T) {
	s := newSphere(t)
	x := s.RandomPoint()
	u := s.RandomTangentVector(x)
	egrad := randNormal(15, 1)
	ehess := randNormal(15, 1)

	rhess := s.EuclideanToRiemannianHessian(x, egrad, ehess, u)

	// proj(ehess) - <x, egrad>·u computed straight from the formula.
	want := s.Projection(x, ehess)
	var corr mat.Dense
	corr.Scale(frobInner(x, egrad), u)
	want.Sub(want, &corr)
	assert.True(t, mat.EqualApprox(want, rhess, 1e-12))
}

func TestSphereTransportLandsInTangentSpace(t *testing.T) {
	s := newSphere(t)
	x := s.RandomPoint()
	y := s.RandomPoint()
	u := s.RandomTangentVector(x)

	v := s.Transport(x, y, u)
	assert.InDelta(t, 0, frobInner(y, v), 1e-10)

	// Transporting to the same point is the identity on tangents.
	assert.True(t, mat.EqualApprox(u, s.Transport(x, x, u), 1e-12))
}

func TestSpherePairMeanIsEquidistantUnitPoint(t *testing.T) {
	s := newSphere(t)
	x := s.RandomPoint()
	y := s.RandomPoint()

	z := s.PairMean(x, y)
	assert.InDelta(t, 1, mat.Norm(z, 2), 1e-12)
	assert.InDelta(t, s.Dist(x, z), s.Dist(y, z), 1e-10)
}

func TestSphereRandomTangentVector(t *testing.T) {
	s := newSphere(t)
	x := s.RandomPoint()
	u := s.RandomTangentVector(x)
	v := s.RandomTangentVector(x)

	assert.InDelta(t, 1, s.Norm(x, u), 1e-6)
	assert.InDelta(t, 0, frobInner(x, u), 1e-10)

	var d mat.Dense
	d.Sub(u, v)
	assert.Greater(t, mat.Norm(&d, 2), 1e-6)
}
