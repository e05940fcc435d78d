// Copyright 2025 The Geomopt Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package manifold

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sphere is the unit sphere in Rⁿ: points are n×1 matrices of unit
// Euclidean norm, tangent vectors at x are the n×1 matrices orthogonal
// to x. Geodesics are great circles, so Exp and Log are closed form and
// exact mutual inverses.
type Sphere struct {
	n int
}

// NewSphere returns the unit sphere in Rⁿ. n must be at least 2 so the
// tangent space is nontrivial.
func NewSphere(n int) (*Sphere, error) {
	if n < 2 {
		return nil, &ConfigurationError{
			Manifold: "Sphere",
			Reason:   fmt.Sprintf("ambient dimension must be at least 2, got %d", n),
		}
	}
	return &Sphere{n: n}, nil
}

func (s *Sphere) Dim() int { return s.n - 1 }

func (s *Sphere) TypicalDist() float64 { return math.Pi }

func (s *Sphere) InnerProduct(point, u, v *mat.Dense) float64 {
	s.check("InnerProduct", point, u, v)
	return frobInner(u, v)
}

func (s *Sphere) Norm(point, u *mat.Dense) float64 {
	s.check("Norm", point, u)
	return mat.Norm(u, 2)
}

// Dist is the great-circle distance arccos⟨x, y⟩, with the inner product
// clamped to [-1, 1] against rounding drift.
func (s *Sphere) Dist(x, y *mat.Dense) float64 {
	s.check("Dist", x, y)
	return math.Acos(clamp(frobInner(x, y), -1, 1))
}

func (s *Sphere) Projection(point, vector *mat.Dense) *mat.Dense {
	s.check("Projection", point, vector)
	out := mat.NewDense(s.n, 1, nil)
	out.Scale(frobInner(point, vector), point)
	out.Sub(vector, out)
	return out
}

func (s *Sphere) EuclideanToRiemannianGradient(point, egrad *mat.Dense) *mat.Dense {
	s.check("EuclideanToRiemannianGradient", point, egrad)
	return s.Projection(point, egrad)
}

// EuclideanToRiemannianHessian applies the sphere's curvature
// correction: proj(ehess) - ⟨x, egrad⟩·u.
func (s *Sphere) EuclideanToRiemannianHessian(point, egrad, ehess, u *mat.Dense) *mat.Dense {
	s.check("EuclideanToRiemannianHessian", point, egrad, ehess, u)
	out := s.Projection(point, ehess)
	var w mat.Dense
	w.Scale(frobInner(point, egrad), u)
	out.Sub(out, &w)
	return out
}

func (s *Sphere) Retraction(point, u *mat.Dense) *mat.Dense {
	s.check("Retraction", point, u)
	out := mat.NewDense(s.n, 1, nil)
	out.Add(point, u)
	out.Scale(1/mat.Norm(out, 2), out)
	return out
}

// Exp follows the great circle: cos(‖u‖)·x + sin(‖u‖)/‖u‖·u. The
// sin(t)/t factor is taken as 1 at t = 0, so the zero vector maps to x.
func (s *Sphere) Exp(point, u *mat.Dense) *mat.Dense {
	s.check("Exp", point, u)
	nrm := mat.Norm(u, 2)
	factor := 1.0
	if nrm > 0 {
		factor = math.Sin(nrm) / nrm
	}
	out := mat.NewDense(s.n, 1, nil)
	out.Scale(math.Cos(nrm), point)
	var w mat.Dense
	w.Scale(factor, u)
	out.Add(out, &w)
	return out
}

// Log rescales the tangent projection of other - point to the geodesic
// distance. Both norms are epsilon-guarded so antipodal rounding noise
// cannot divide by zero.
func (s *Sphere) Log(point, other *mat.Dense) *mat.Dense {
	s.check("Log", point, other)
	v := mat.NewDense(s.n, 1, nil)
	v.Sub(other, point)
	v = s.Projection(point, v)
	const eps = 2.220446049250313e-16
	factor := (s.Dist(point, other) + eps) / (mat.Norm(v, 2) + eps)
	v.Scale(factor, v)
	return v
}

func (s *Sphere) Transport(x, y, u *mat.Dense) *mat.Dense {
	s.check("Transport", x, y, u)
	return s.Projection(y, u)
}

func (s *Sphere) PairMean(x, y *mat.Dense) *mat.Dense {
	s.check("PairMean", x, y)
	out := mat.NewDense(s.n, 1, nil)
	out.Add(x, y)
	out.Scale(1/mat.Norm(out, 2), out)
	return out
}

func (s *Sphere) RandomPoint() *mat.Dense {
	x := randNormal(s.n, 1)
	x.Scale(1/mat.Norm(x, 2), x)
	return x
}

func (s *Sphere) RandomTangentVector(point *mat.Dense) *mat.Dense {
	s.check("RandomTangentVector", point)
	u := s.Projection(point, randNormal(s.n, 1))
	u.Scale(1/mat.Norm(u, 2), u)
	return u
}

func (s *Sphere) check(op string, operands ...*mat.Dense) {
	mustDims("Sphere", op, s.n, 1, operands...)
}
