// Copyright 2025 The Geomopt Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"gonum.org/v1/gonum/mat"
)

// SteepestDescentConfig configures a SteepestDescent optimizer. The zero
// value selects the default stopping criteria.
type SteepestDescentConfig struct {
	StoppingConfig
}

// SteepestDescent minimizes a cost over a manifold by moving against the
// Riemannian gradient with a backtracking Armijo line search. Simple and
// robust; conjugate gradient usually converges in far fewer iterations.
type SteepestDescent struct {
	stopping StoppingConfig
}

// NewSteepestDescent validates the configuration and returns the
// optimizer.
func NewSteepestDescent(config SteepestDescentConfig) (*SteepestDescent, error) {
	stopping, err := config.StoppingConfig.withDefaults()
	if err != nil {
		return nil, err
	}
	return &SteepestDescent{stopping: stopping}, nil
}

// Run minimizes the problem starting from initial, or from a random
// point when initial is nil.
func (sd *SteepestDescent) Run(problem *Problem, initial *mat.Dense) (*Result, error) {
	if err := problem.validate(); err != nil {
		return nil, err
	}
	m := problem.Manifold
	searcher := newBackTrackingLineSearcher()

	point := initial
	if point == nil {
		point = m.RandomPoint()
	} else {
		point = mat.DenseCopyOf(point)
	}

	cost := problem.Cost(point)
	gradient := problem.RiemannianGradient(point)
	gradNorm := m.Norm(point, gradient)
	stepSize := -1.0

	iteration := 0
	for {
		reason := sd.stopping.stopReason(iteration, gradNorm, stepSize)
		if reason != "" {
			return &Result{
				Point:        point,
				Cost:         cost,
				GradientNorm: gradNorm,
				Iterations:   iteration,
				Reason:       reason,
			}, nil
		}
		iteration++

		descent := negated(gradient)
		df0 := -gradNorm * gradNorm

		var newPoint *mat.Dense
		stepSize, newPoint = searcher.search(problem.Cost, m, point, descent, cost, df0)

		point = newPoint
		cost = problem.Cost(point)
		gradient = problem.RiemannianGradient(point)
		gradNorm = m.Norm(point, gradient)
	}
}
