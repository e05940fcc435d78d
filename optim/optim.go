// Copyright 2025 The Geomopt Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/geomopt-ml/geomopt/internal/optim"
)

// Optimizer is the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Result reports the outcome of an optimizer run.
type Result = optim.Result

// Problem binds a cost function on a manifold to the callbacks that
// differentiate it.
type Problem = optim.Problem

// StoppingConfig carries the stopping criteria shared by the iterative
// optimizers.
type StoppingConfig = optim.StoppingConfig

// ConfigurationError is returned by constructors on invalid
// configuration, such as an unknown beta-rule name.
type ConfigurationError = optim.ConfigurationError

// SteepestDescent (Riemannian gradient descent)

// SteepestDescent minimizes a cost by moving against the Riemannian
// gradient with a backtracking line search.
type SteepestDescent = optim.SteepestDescent

// SteepestDescentConfig contains configuration for SteepestDescent.
type SteepestDescentConfig = optim.SteepestDescentConfig

// NewSteepestDescent creates a steepest-descent optimizer.
//
// Example:
//
//	sd, err := optim.NewSteepestDescent(optim.SteepestDescentConfig{
//	    StoppingConfig: optim.StoppingConfig{MaxIterations: 500},
//	})
func NewSteepestDescent(config SteepestDescentConfig) (*SteepestDescent, error) {
	return optim.NewSteepestDescent(config)
}

// ConjugateGradient (nonlinear conjugate gradient)

// ConjugateGradient minimizes a cost by nonlinear conjugate gradient
// with a configurable beta-update rule.
type ConjugateGradient = optim.ConjugateGradient

// ConjugateGradientConfig contains configuration for ConjugateGradient.
type ConjugateGradientConfig = optim.ConjugateGradientConfig

// Beta-update rule names accepted by ConjugateGradientConfig.BetaRule.
const (
	BetaFletcherReeves  = optim.BetaFletcherReeves
	BetaPolakRibiere    = optim.BetaPolakRibiere
	BetaHestenesStiefel = optim.BetaHestenesStiefel
	BetaHagerZhang      = optim.BetaHagerZhang
	BetaLiuStorey       = optim.BetaLiuStorey
)

// NewConjugateGradient creates a conjugate-gradient optimizer.
//
// Example:
//
//	cg, err := optim.NewConjugateGradient(optim.ConjugateGradientConfig{
//	    BetaRule: optim.BetaHagerZhang,
//	})
func NewConjugateGradient(config ConjugateGradientConfig) (*ConjugateGradient, error) {
	return optim.NewConjugateGradient(config)
}
