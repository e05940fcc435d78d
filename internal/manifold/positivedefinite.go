// Copyright 2025 The Geomopt Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package manifold

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/geomopt-ml/geomopt/internal/linalg"
)

// SymmetricPositiveDefinite is the manifold of n×n symmetric
// positive-definite matrices with the affine-invariant metric
// ⟨u, v⟩_x = tr(x⁻¹u·x⁻¹v). Tangent vectors are symmetric matrices; the
// tangent space is the same linear space Sym(n) at every point, only the
// metric varies. Exp, Log and Dist are computed through the Cholesky
// factor of the base point and the symmetric matrix exponential and
// logarithm kernels.
//
// Operands must be symmetric (and points positive definite); this is a
// contract precondition and is not checked.
type SymmetricPositiveDefinite struct {
	n int
}

// NewSymmetricPositiveDefinite returns the manifold of n×n symmetric
// positive-definite matrices.
func NewSymmetricPositiveDefinite(n int) (*SymmetricPositiveDefinite, error) {
	if n < 1 {
		return nil, &ConfigurationError{
			Manifold: "SymmetricPositiveDefinite",
			Reason:   fmt.Sprintf("dimension must be positive, got %d", n),
		}
	}
	return &SymmetricPositiveDefinite{n: n}, nil
}

func (s *SymmetricPositiveDefinite) Dim() int { return s.n * (s.n + 1) / 2 }

func (s *SymmetricPositiveDefinite) TypicalDist() float64 {
	return math.Sqrt(float64(s.Dim()))
}

func (s *SymmetricPositiveDefinite) InnerProduct(point, u, v *mat.Dense) float64 {
	s.check("InnerProduct", point, u, v)
	xu := denseSolve("SymmetricPositiveDefinite.InnerProduct", point, u)
	xv := denseSolve("SymmetricPositiveDefinite.InnerProduct", point, v)
	var prod mat.Dense
	prod.Mul(xu, xv)
	return mat.Trace(&prod)
}

func (s *SymmetricPositiveDefinite) Norm(point, u *mat.Dense) float64 {
	s.check("Norm", point, u)
	// ‖c⁻¹·u·c⁻ᵀ‖_F through the Cholesky factor c is the metric norm and
	// cheaper than the trace form.
	return mat.Norm(s.cholCongruence("Norm", point, u), 2)
}

func (s *SymmetricPositiveDefinite) Dist(x, y *mat.Dense) float64 {
	s.check("Dist", x, y)
	l, err := linalg.LogmSPD(s.cholCongruence("Dist", x, y))
	if err != nil {
		panic(err)
	}
	return mat.Norm(l, 2)
}

// Projection symmetrizes the ambient vector; Sym(n) is the tangent space
// at every point.
func (s *SymmetricPositiveDefinite) Projection(point, vector *mat.Dense) *mat.Dense {
	s.check("Projection", point, vector)
	return linalg.Symmetrize(vector)
}

// EuclideanToRiemannianGradient rescales by the metric: x·sym(egrad)·x.
func (s *SymmetricPositiveDefinite) EuclideanToRiemannianGradient(point, egrad *mat.Dense) *mat.Dense {
	s.check("EuclideanToRiemannianGradient", point, egrad)
	g := linalg.Symmetrize(egrad)
	var out mat.Dense
	out.Mul(point, g)
	out.Mul(mat.DenseCopyOf(&out), point)
	return mat.DenseCopyOf(&out)
}

func (s *SymmetricPositiveDefinite) EuclideanToRiemannianHessian(point, egrad, ehess, u *mat.Dense) *mat.Dense {
	s.check("EuclideanToRiemannianHessian", point, egrad, ehess, u)
	var h mat.Dense
	h.Mul(point, linalg.Symmetrize(ehess))
	h.Mul(mat.DenseCopyOf(&h), point)

	var corr mat.Dense
	corr.Mul(u, linalg.Symmetrize(egrad))
	corr.Mul(mat.DenseCopyOf(&corr), point)
	h.Add(&h, linalg.Symmetrize(&corr))
	return linalg.Symmetrize(&h)
}

// Retraction is the symmetrized second-order formula
// x + u + u·x⁻¹u/2.
func (s *SymmetricPositiveDefinite) Retraction(point, u *mat.Dense) *mat.Dense {
	s.check("Retraction", point, u)
	xiu := denseSolve("SymmetricPositiveDefinite.Retraction", point, u)
	var q mat.Dense
	q.Mul(u, xiu)
	q.Scale(0.5, &q)
	q.Add(&q, point)
	q.Add(&q, u)
	return linalg.Symmetrize(&q)
}

// Exp is the exact exponential map c·expm(c⁻¹u·c⁻ᵀ)·cᵀ through the
// Cholesky factor c of the base point.
func (s *SymmetricPositiveDefinite) Exp(point, u *mat.Dense) *mat.Dense {
	s.check("Exp", point, u)
	e, err := linalg.ExpmSym(s.cholCongruence("Exp", point, u))
	if err != nil {
		panic(err)
	}
	return s.cholCongruenceBack("Exp", point, e)
}

// Log is the inverse of Exp: c·logm(c⁻¹y·c⁻ᵀ)·cᵀ.
func (s *SymmetricPositiveDefinite) Log(point, other *mat.Dense) *mat.Dense {
	s.check("Log", point, other)
	l, err := linalg.LogmSPD(s.cholCongruence("Log", point, other))
	if err != nil {
		panic(err)
	}
	return s.cholCongruenceBack("Log", point, l)
}

// Transport copies the symmetric part of u: tangent spaces coincide as
// linear spaces, so the identity is an exact transport.
func (s *SymmetricPositiveDefinite) Transport(x, y, u *mat.Dense) *mat.Dense {
	s.check("Transport", x, y, u)
	return linalg.Symmetrize(u)
}

// PairMean is the geometric matrix mean, the midpoint of the geodesic
// from x to y.
func (s *SymmetricPositiveDefinite) PairMean(x, y *mat.Dense) *mat.Dense {
	s.check("PairMean", x, y)
	half := s.Log(x, y)
	half.Scale(0.5, half)
	return s.Exp(x, half)
}

// RandomPoint draws q·diag(d)·qᵀ with eigenvalues d uniform in [1, 2)
// and q from the sign-stabilized QR of a standard normal matrix.
func (s *SymmetricPositiveDefinite) RandomPoint() *mat.Dense {
	q, _ := linalg.QR(randNormal(s.n, s.n))
	scaled := mat.NewDense(s.n, s.n, nil)
	scaled.Copy(q)
	for j := 0; j < s.n; j++ {
		d := 1 + rand.Float64()
		for i := 0; i < s.n; i++ {
			scaled.Set(i, j, scaled.At(i, j)*d)
		}
	}
	var out mat.Dense
	out.Mul(scaled, q.T())
	return linalg.Symmetrize(&out)
}

func (s *SymmetricPositiveDefinite) RandomTangentVector(point *mat.Dense) *mat.Dense {
	s.check("RandomTangentVector", point)
	u := linalg.Symmetrize(randNormal(s.n, s.n))
	u.Scale(1/s.Norm(point, u), u)
	return u
}

func (s *SymmetricPositiveDefinite) check(op string, operands ...*mat.Dense) {
	mustDims("SymmetricPositiveDefinite", op, s.n, s.n, operands...)
}

// cholCongruence returns c⁻¹·a·c⁻ᵀ where c is the Cholesky factor of
// point.
func (s *SymmetricPositiveDefinite) cholCongruence(op string, point, a *mat.Dense) *mat.Dense {
	l := s.cholFactor(op, point)
	// Solve l·w = a, then l·outᵀ = wᵀ.
	w := denseSolve("SymmetricPositiveDefinite."+op, l, a)
	out := denseSolve("SymmetricPositiveDefinite."+op, l, w.T())
	return linalg.Transpose(out)
}

// cholCongruenceBack returns c·a·cᵀ for the Cholesky factor c of point.
func (s *SymmetricPositiveDefinite) cholCongruenceBack(op string, point, a *mat.Dense) *mat.Dense {
	l := s.cholFactor(op, point)
	var out mat.Dense
	out.Mul(l, a)
	out.Mul(mat.DenseCopyOf(&out), l.T())
	return mat.DenseCopyOf(&out)
}

func (s *SymmetricPositiveDefinite) cholFactor(op string, point *mat.Dense) *mat.TriDense {
	sym := mat.NewSymDense(s.n, nil)
	for i := 0; i < s.n; i++ {
		for j := i; j < s.n; j++ {
			sym.SetSym(i, j, 0.5*(point.At(i, j)+point.At(j, i)))
		}
	}
	var ch mat.Cholesky
	if !ch.Factorize(sym) {
		panic(&linalg.NumericalDomainError{
			Op:     "SymmetricPositiveDefinite." + op,
			Reason: "point is not positive definite",
		})
	}
	l := mat.NewTriDense(s.n, mat.Lower, nil)
	ch.LTo(l)
	return l
}
