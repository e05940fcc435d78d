// Copyright 2025 The Geomopt Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package manifold

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/geomopt-ml/geomopt/internal/linalg"
)

// PSDFixedRank is the quotient geometry of rank-k positive-semidefinite
// n×n matrices. A point is an n×k factor Y standing for the matrix Y·Yᵀ,
// so Y and Y·Q describe the same matrix for any k×k orthogonal Q. The
// metric, distance and logarithm are invariant under that rotation: Dist
// of two factors related by an orthogonal right factor is zero.
//
// A point must have full column rank k; rank deficiency is a contract
// violation and is not checked.
type PSDFixedRank struct {
	n, k int
}

// NewPSDFixedRank returns the manifold of n×n positive-semidefinite
// matrices of fixed rank k, represented by their n×k factors.
func NewPSDFixedRank(n, k int) (*PSDFixedRank, error) {
	if n < 1 || k < 1 || k > n {
		return nil, &ConfigurationError{
			Manifold: "PSDFixedRank",
			Reason:   fmt.Sprintf("need 1 <= k <= n, got (n, k) = (%d, %d)", n, k),
		}
	}
	return &PSDFixedRank{n: n, k: k}, nil
}

func (p *PSDFixedRank) Dim() int { return p.k*p.n - p.k*(p.k-1)/2 }

func (p *PSDFixedRank) TypicalDist() float64 { return 10 + float64(p.k) }

func (p *PSDFixedRank) InnerProduct(point, u, v *mat.Dense) float64 {
	p.check("InnerProduct", point, u, v)
	return frobInner(u, v)
}

func (p *PSDFixedRank) Norm(point, u *mat.Dense) float64 {
	p.check("Norm", point, u)
	return mat.Norm(u, 2)
}

// Dist measures the quotient geodesic distance as the norm of Log, so it
// ignores the orthogonal ambiguity of the factors.
func (p *PSDFixedRank) Dist(x, y *mat.Dense) float64 {
	p.check("Dist", x, y)
	return mat.Norm(p.Log(x, y), 2)
}

// Projection maps an ambient n×k vector onto the horizontal space at Y:
// the component YΩ along the vertical (rotation) directions is removed,
// with the skew-symmetric Ω solving the Lyapunov equation
// (YᵀY)Ω + Ω(YᵀY) = YᵀV - VᵀY.
func (p *PSDFixedRank) Projection(point, vector *mat.Dense) *mat.Dense {
	p.check("Projection", point, vector)
	var yty, ytv mat.Dense
	yty.Mul(point.T(), point)
	ytv.Mul(point.T(), vector)
	rhs := linalg.SkewSymmetrize(&ytv)
	rhs.Scale(2, rhs)

	omega := lyapSym(&yty, rhs)
	out := mat.NewDense(p.n, p.k, nil)
	out.Mul(point, omega)
	out.Sub(vector, out)
	return out
}

// EuclideanToRiemannianGradient is the identity: the Euclidean gradient
// of a rotation-invariant cost is already horizontal.
func (p *PSDFixedRank) EuclideanToRiemannianGradient(point, egrad *mat.Dense) *mat.Dense {
	p.check("EuclideanToRiemannianGradient", point, egrad)
	return mat.DenseCopyOf(egrad)
}

func (p *PSDFixedRank) EuclideanToRiemannianHessian(point, egrad, ehess, u *mat.Dense) *mat.Dense {
	p.check("EuclideanToRiemannianHessian", point, egrad, ehess, u)
	return p.Projection(point, ehess)
}

func (p *PSDFixedRank) Retraction(point, u *mat.Dense) *mat.Dense {
	p.check("Retraction", point, u)
	out := mat.NewDense(p.n, p.k, nil)
	out.Add(point, u)
	return out
}

// Exp coincides with Retraction. It is a first-order approximation of
// the exponential map, not the exact geodesic.
func (p *PSDFixedRank) Exp(point, u *mat.Dense) *mat.Dense {
	p.check("Exp", point, u)
	return p.Retraction(point, u)
}

// Log aligns other to point by the orthogonal Procrustes rotation
// (via the SVD of otherᵀ·point) before subtracting, which makes it
// invariant under the factor ambiguity.
func (p *PSDFixedRank) Log(point, other *mat.Dense) *mat.Dense {
	p.check("Log", point, other)
	var m mat.Dense
	m.Mul(other.T(), point)
	var svd mat.SVD
	if !svd.Factorize(&m, mat.SVDThin) {
		panic(&linalg.NumericalDomainError{Op: "PSDFixedRank.Log", Reason: "SVD failed to converge"})
	}
	var u, v, rot mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	rot.Mul(&u, v.T())

	out := mat.NewDense(p.n, p.k, nil)
	out.Mul(other, &rot)
	out.Sub(out, point)
	return out
}

func (p *PSDFixedRank) Transport(x, y, u *mat.Dense) *mat.Dense {
	p.check("Transport", x, y, u)
	return p.Projection(y, u)
}

// PairMean is not defined for this quotient geometry.
func (p *PSDFixedRank) PairMean(x, y *mat.Dense) *mat.Dense {
	panic(&UnsupportedOperationError{Manifold: "PSDFixedRank", Op: "PairMean"})
}

func (p *PSDFixedRank) RandomPoint() *mat.Dense {
	return randNormal(p.n, p.k)
}

func (p *PSDFixedRank) RandomTangentVector(point *mat.Dense) *mat.Dense {
	p.check("RandomTangentVector", point)
	u := p.Projection(point, randNormal(p.n, p.k))
	u.Scale(1/mat.Norm(u, 2), u)
	return u
}

func (p *PSDFixedRank) check(op string, operands ...*mat.Dense) {
	mustDims("PSDFixedRank", op, p.n, p.k, operands...)
}

// lyapSym solves s·x + x·s = rhs for symmetric positive-definite s by
// eigendecomposition: with s = q·diag(d)·qᵀ, the solution in the
// eigenbasis divides entrywise by dᵢ + dⱼ.
func lyapSym(s, rhs *mat.Dense) *mat.Dense {
	k, _ := s.Dims()
	sym := mat.NewSymDense(k, nil)
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			sym.SetSym(i, j, 0.5*(s.At(i, j)+s.At(j, i)))
		}
	}
	var es mat.EigenSym
	if !es.Factorize(sym, true) {
		panic(&linalg.NumericalDomainError{Op: "PSDFixedRank.Projection", Reason: "eigendecomposition failed to converge"})
	}
	d := es.Values(nil)
	var q mat.Dense
	es.VectorsTo(&q)

	var c mat.Dense
	c.Mul(q.T(), rhs)
	c.Mul(mat.DenseCopyOf(&c), &q)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			c.Set(i, j, c.At(i, j)/(d[i]+d[j]))
		}
	}
	var x mat.Dense
	x.Mul(&q, &c)
	x.Mul(mat.DenseCopyOf(&x), q.T())
	return &x
}
