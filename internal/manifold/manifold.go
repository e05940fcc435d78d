// Copyright 2025 The Geomopt Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package manifold

import (
	"errors"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/geomopt-ml/geomopt/internal/linalg"
)

// Manifold is the contract every concrete geometry implements. It is the
// sole surface optimizers program against: they query the metric, convert
// Euclidean derivatives to Riemannian ones, and move along the manifold
// through retractions and transports without knowing which geometry they
// are on.
type Manifold interface {
	// Dim returns the real dimension of the tangent space.
	Dim() int

	// TypicalDist returns a characteristic distance scale of the
	// manifold, used by optimizers for initial step sizing.
	TypicalDist() float64

	// InnerProduct evaluates the Riemannian metric at point on the
	// tangent vectors u and v. It is symmetric, bilinear and positive
	// definite on the tangent space.
	InnerProduct(point, u, v *mat.Dense) float64

	// Norm returns sqrt(InnerProduct(point, u, u)).
	Norm(point, u *mat.Dense) float64

	// Dist returns the geodesic distance between the points x and y.
	Dist(x, y *mat.Dense) float64

	// Projection orthogonally projects an ambient vector onto the
	// tangent space at point. It is idempotent.
	Projection(point, vector *mat.Dense) *mat.Dense

	// EuclideanToRiemannianGradient converts the Euclidean gradient of a
	// cost function at point into the Riemannian gradient.
	EuclideanToRiemannianGradient(point, egrad *mat.Dense) *mat.Dense

	// EuclideanToRiemannianHessian converts the Euclidean gradient and
	// Hessian-vector product at point into the Riemannian Hessian-vector
	// product along the tangent direction u.
	EuclideanToRiemannianHessian(point, egrad, ehess, u *mat.Dense) *mat.Dense

	// Retraction maps the tangent vector u at point to a new point on
	// the manifold, approximating the exponential map to first order.
	// The zero vector is a fixed point: Retraction(x, 0) == x.
	Retraction(point, u *mat.Dense) *mat.Dense

	// Exp is the exponential map where the manifold defines one in
	// closed form, and otherwise the best available retraction; see the
	// concrete type's documentation. Exp and Log are mutual inverses to
	// numerical tolerance where both are exact.
	Exp(point, u *mat.Dense) *mat.Dense

	// Log is the inverse of Exp: the tangent vector at point that
	// reaches other along the geodesic. Manifolds without a defined
	// logarithm panic with *UnsupportedOperationError.
	Log(point, other *mat.Dense) *mat.Dense

	// Transport moves the tangent vector u from the tangent space at x
	// to (an approximation of) the tangent space at y. It behaves as
	// the identity when x == y.
	Transport(x, y, u *mat.Dense) *mat.Dense

	// PairMean returns a point geodesically equidistant from x and y.
	// Manifolds without a defined midpoint panic with
	// *UnsupportedOperationError.
	PairMean(x, y *mat.Dense) *mat.Dense

	// RandomPoint draws a random point with respect to a measure natural
	// to the manifold.
	RandomPoint() *mat.Dense

	// RandomTangentVector draws a random unit-norm tangent vector at
	// point.
	RandomTangentVector(point *mat.Dense) *mat.Dense
}

// frobInner is the Frobenius inner product Σ aᵢⱼ·bᵢⱼ. The operands must
// have equal dimensions; callers validate shapes before using it.
func frobInner(a, b *mat.Dense) float64 {
	r, c := a.Dims()
	var s float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			s += a.At(i, j) * b.At(i, j)
		}
	}
	return s
}

// randNormal returns an r×c matrix of independent standard normal draws.
func randNormal(r, c int) *mat.Dense {
	m := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(i, j, rand.NormFloat64())
		}
	}
	return m
}

// mustDims panics with *ShapeError unless every operand is rows×cols.
func mustDims(manifold, op string, rows, cols int, operands ...*mat.Dense) {
	for _, m := range operands {
		r, c := m.Dims()
		if r != rows || c != cols {
			panic(&ShapeError{
				Manifold: manifold,
				Op:       op,
				WantRows: rows,
				WantCols: cols,
				GotRows:  r,
				GotCols:  c,
			})
		}
	}
}

// denseSolve solves a·x = b, tolerating gonum's finite-conditioning
// warnings and panicking with *linalg.NumericalDomainError when a is
// singular.
func denseSolve(op string, a, b mat.Matrix) *mat.Dense {
	var x mat.Dense
	if err := x.Solve(a, b); err != nil {
		var c mat.Condition
		if !errors.As(err, &c) || math.IsInf(float64(c), 1) {
			panic(&linalg.NumericalDomainError{Op: op, Reason: "singular linear system"})
		}
	}
	return mat.DenseCopyOf(&x)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
