// Copyright 2025 The Geomopt Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"gonum.org/v1/gonum/mat"

	"github.com/geomopt-ml/geomopt/internal/manifold"
)

// Problem binds a cost function on a manifold to the callbacks that
// differentiate it. Cost and EuclideanGradient are required;
// EuclideanHessian is optional and only consulted by algorithms that use
// second-order information.
//
// The gradient callbacks return plain Euclidean derivatives in the
// ambient space; Problem converts them to Riemannian quantities through
// the manifold. The derivatives may come from automatic differentiation,
// hand-written formulas or finite differences; the optimizers are
// agnostic.
type Problem struct {
	Manifold manifold.Manifold

	// Cost evaluates the objective at a point.
	Cost func(point *mat.Dense) float64

	// EuclideanGradient evaluates the ambient gradient of Cost.
	EuclideanGradient func(point *mat.Dense) *mat.Dense

	// EuclideanHessian evaluates the ambient Hessian-vector product of
	// Cost along direction. May be nil.
	EuclideanHessian func(point, direction *mat.Dense) *mat.Dense
}

// RiemannianGradient returns the Riemannian gradient of the cost at
// point.
func (p *Problem) RiemannianGradient(point *mat.Dense) *mat.Dense {
	return p.Manifold.EuclideanToRiemannianGradient(point, p.EuclideanGradient(point))
}

// RiemannianHessian returns the Riemannian Hessian-vector product of the
// cost at point along the tangent direction u. It panics if the problem
// has no EuclideanHessian callback.
func (p *Problem) RiemannianHessian(point, u *mat.Dense) *mat.Dense {
	if p.EuclideanHessian == nil {
		panic("optim: Problem has no EuclideanHessian callback")
	}
	egrad := p.EuclideanGradient(point)
	ehess := p.EuclideanHessian(point, u)
	return p.Manifold.EuclideanToRiemannianHessian(point, egrad, ehess, u)
}

func (p *Problem) validate() error {
	if p.Manifold == nil {
		return &ConfigurationError{Component: "Problem", Reason: "Manifold is nil"}
	}
	if p.Cost == nil {
		return &ConfigurationError{Component: "Problem", Reason: "Cost is nil"}
	}
	if p.EuclideanGradient == nil {
		return &ConfigurationError{Component: "Problem", Reason: "EuclideanGradient is nil"}
	}
	return nil
}
