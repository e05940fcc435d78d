// Copyright 2025 The Geomopt Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides Riemannian optimization algorithms over the
// manifold contract.
//
// # Overview
//
// This package contains:
//   - SteepestDescent: gradient descent with backtracking line search
//   - ConjugateGradient: nonlinear conjugate gradient with a choice of
//     beta-update rules
//   - Problem: a cost function on a manifold with externally supplied
//     Euclidean derivatives
//
// # Basic Usage
//
//	sphere, _ := manifold.NewSphere(32)
//	problem := &optim.Problem{
//	    Manifold: sphere,
//	    Cost: func(x *mat.Dense) float64 { ... },
//	    EuclideanGradient: func(x *mat.Dense) *mat.Dense { ... },
//	}
//	cg, err := optim.NewConjugateGradient(optim.ConjugateGradientConfig{
//	    BetaRule: optim.BetaPolakRibiere,
//	})
//	if err != nil { ... }
//	result, err := cg.Run(problem, nil)
//
// The gradient callback is the integration point for any automatic
// differentiation machinery; the optimizers never differentiate
// anything themselves.
package optim
