// Copyright 2025 The Geomopt Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"gonum.org/v1/gonum/mat"

	"github.com/geomopt-ml/geomopt/internal/manifold"
)

// lineSearcher finds an acceptable step along a descent direction.
// search returns the length of the accepted step (measured on the
// manifold, i.e. alpha times the direction norm) and the retracted
// point. A zero step length with newPoint == point means no decrease was
// found. Searchers keep per-run state (step memory), so each Run creates
// a fresh one.
type lineSearcher interface {
	search(objective func(*mat.Dense) float64, m manifold.Manifold,
		point, direction *mat.Dense, cost, directionalDerivative float64) (stepSize float64, newPoint *mat.Dense)
}

// backTrackingLineSearcher is an Armijo backtracking search with a warm
// start guessed from the previous cost decrease.
type backTrackingLineSearcher struct {
	contractionFactor  float64
	optimism           float64
	sufficientDecrease float64
	maxEvaluations     int
	initialStepSize    float64

	oldCost    float64
	hasOldCost bool
}

func newBackTrackingLineSearcher() *backTrackingLineSearcher {
	return &backTrackingLineSearcher{
		contractionFactor:  0.5,
		optimism:           2,
		sufficientDecrease: 1e-4,
		maxEvaluations:     25,
		initialStepSize:    1,
	}
}

func (ls *backTrackingLineSearcher) search(objective func(*mat.Dense) float64, m manifold.Manifold,
	point, direction *mat.Dense, cost, df0 float64) (float64, *mat.Dense) {
	normDirection := m.Norm(point, direction)

	var alpha float64
	if ls.hasOldCost && df0 != 0 {
		// First-order guess from the decrease achieved last iteration.
		alpha = ls.optimism * 2 * (cost - ls.oldCost) / df0
	} else {
		alpha = ls.initialStepSize / normDirection
	}
	if alpha <= 0 {
		alpha = ls.initialStepSize / normDirection
	}

	newPoint, newCost := retractAndEvaluate(objective, m, point, direction, alpha)
	evaluations := 1
	for newCost > cost+ls.sufficientDecrease*alpha*df0 && evaluations <= ls.maxEvaluations {
		alpha *= ls.contractionFactor
		newPoint, newCost = retractAndEvaluate(objective, m, point, direction, alpha)
		evaluations++
	}
	if newCost > cost {
		alpha = 0
		newPoint = mat.DenseCopyOf(point)
	}
	ls.oldCost = cost
	ls.hasOldCost = true
	return alpha * normDirection, newPoint
}

// adaptiveLineSearcher is a backtracking search that remembers the
// accepted step length and reuses (or doubles) it as the next starting
// guess.
type adaptiveLineSearcher struct {
	contractionFactor  float64
	sufficientDecrease float64
	maxEvaluations     int
	initialStepSize    float64

	oldAlpha    float64
	hasOldAlpha bool
}

func newAdaptiveLineSearcher() *adaptiveLineSearcher {
	return &adaptiveLineSearcher{
		contractionFactor:  0.5,
		sufficientDecrease: 0.5,
		maxEvaluations:     10,
		initialStepSize:    1,
	}
}

func (ls *adaptiveLineSearcher) search(objective func(*mat.Dense) float64, m manifold.Manifold,
	point, direction *mat.Dense, cost, df0 float64) (float64, *mat.Dense) {
	normDirection := m.Norm(point, direction)

	var alpha float64
	if ls.hasOldAlpha {
		alpha = ls.oldAlpha
	} else {
		alpha = ls.initialStepSize / normDirection
	}

	newPoint, newCost := retractAndEvaluate(objective, m, point, direction, alpha)
	evaluations := 1
	for newCost > cost+ls.sufficientDecrease*alpha*df0 && evaluations <= ls.maxEvaluations {
		alpha *= ls.contractionFactor
		newPoint, newCost = retractAndEvaluate(objective, m, point, direction, alpha)
		evaluations++
	}
	if newCost > cost {
		alpha = 0
		newPoint = mat.DenseCopyOf(point)
	}

	if evaluations == 2 {
		// The first guess was accepted after one contraction; keep it.
		ls.oldAlpha = alpha
	} else {
		// Accepted immediately or after heavy contraction; be more
		// ambitious next time.
		ls.oldAlpha = 2 * alpha
	}
	ls.hasOldAlpha = true
	return alpha * normDirection, newPoint
}

func retractAndEvaluate(objective func(*mat.Dense) float64, m manifold.Manifold,
	point, direction *mat.Dense, alpha float64) (*mat.Dense, float64) {
	var step mat.Dense
	step.Scale(alpha, direction)
	newPoint := m.Retraction(point, &step)
	return newPoint, objective(newPoint)
}
