// Copyright 2025 The Geomopt Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package manifold

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Euclidean is the flat manifold of m×n real matrices with the Frobenius
// metric. Every geometric operation is closed form and trivial; it exists
// both as a usable manifold and as the reference geometry the others
// reduce to locally.
type Euclidean struct {
	m, n int
}

// NewEuclidean returns the manifold of m×n real matrices.
func NewEuclidean(m, n int) (*Euclidean, error) {
	if m < 1 || n < 1 {
		return nil, &ConfigurationError{
			Manifold: "Euclidean",
			Reason:   fmt.Sprintf("dimensions must be positive, got (%d, %d)", m, n),
		}
	}
	return &Euclidean{m: m, n: n}, nil
}

func (e *Euclidean) Dim() int { return e.m * e.n }

func (e *Euclidean) TypicalDist() float64 { return math.Sqrt(float64(e.m * e.n)) }

func (e *Euclidean) InnerProduct(point, u, v *mat.Dense) float64 {
	e.check("InnerProduct", point, u, v)
	return frobInner(u, v)
}

func (e *Euclidean) Norm(point, u *mat.Dense) float64 {
	e.check("Norm", point, u)
	return mat.Norm(u, 2)
}

func (e *Euclidean) Dist(x, y *mat.Dense) float64 {
	e.check("Dist", x, y)
	var d mat.Dense
	d.Sub(x, y)
	return mat.Norm(&d, 2)
}

func (e *Euclidean) Projection(point, vector *mat.Dense) *mat.Dense {
	e.check("Projection", point, vector)
	return mat.DenseCopyOf(vector)
}

func (e *Euclidean) EuclideanToRiemannianGradient(point, egrad *mat.Dense) *mat.Dense {
	e.check("EuclideanToRiemannianGradient", point, egrad)
	return mat.DenseCopyOf(egrad)
}

func (e *Euclidean) EuclideanToRiemannianHessian(point, egrad, ehess, u *mat.Dense) *mat.Dense {
	e.check("EuclideanToRiemannianHessian", point, egrad, ehess, u)
	return mat.DenseCopyOf(ehess)
}

func (e *Euclidean) Retraction(point, u *mat.Dense) *mat.Dense {
	e.check("Retraction", point, u)
	out := mat.NewDense(e.m, e.n, nil)
	out.Add(point, u)
	return out
}

// Exp coincides with Retraction: straight lines are the geodesics.
func (e *Euclidean) Exp(point, u *mat.Dense) *mat.Dense {
	e.check("Exp", point, u)
	return e.Retraction(point, u)
}

func (e *Euclidean) Log(point, other *mat.Dense) *mat.Dense {
	e.check("Log", point, other)
	out := mat.NewDense(e.m, e.n, nil)
	out.Sub(other, point)
	return out
}

func (e *Euclidean) Transport(x, y, u *mat.Dense) *mat.Dense {
	e.check("Transport", x, y, u)
	return mat.DenseCopyOf(u)
}

func (e *Euclidean) PairMean(x, y *mat.Dense) *mat.Dense {
	e.check("PairMean", x, y)
	out := mat.NewDense(e.m, e.n, nil)
	out.Add(x, y)
	out.Scale(0.5, out)
	return out
}

func (e *Euclidean) RandomPoint() *mat.Dense {
	return randNormal(e.m, e.n)
}

func (e *Euclidean) RandomTangentVector(point *mat.Dense) *mat.Dense {
	e.check("RandomTangentVector", point)
	u := randNormal(e.m, e.n)
	u.Scale(1/mat.Norm(u, 2), u)
	return u
}

func (e *Euclidean) check(op string, operands ...*mat.Dense) {
	mustDims("Euclidean", op, e.m, e.n, operands...)
}
