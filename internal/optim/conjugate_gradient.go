// Copyright 2025 The Geomopt Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/geomopt-ml/geomopt/internal/manifold"
)

// Beta-update rule names accepted by ConjugateGradientConfig.BetaRule.
const (
	BetaFletcherReeves  = "FletcherReeves"
	BetaPolakRibiere    = "PolakRibiere"
	BetaHestenesStiefel = "HestenesStiefel"
	BetaHagerZhang      = "HagerZhang"
	BetaLiuStorey       = "LiuStorey"
)

// betaState carries everything a beta rule may inspect: the old and new
// iterates, the gradients at both, and transported copies of the old
// gradient and descent direction.
type betaState struct {
	m                    manifold.Manifold
	point, newPoint      *mat.Dense
	gradient             *mat.Dense
	newGradient          *mat.Dense
	transportedGradient  *mat.Dense
	transportedDirection *mat.Dense
	gradientNormSquared  float64
	descentDirection     *mat.Dense
}

type betaRule func(s *betaState) float64

var betaRules = map[string]betaRule{
	BetaFletcherReeves:  betaFletcherReeves,
	BetaPolakRibiere:    betaPolakRibiere,
	BetaHestenesStiefel: betaHestenesStiefel,
	BetaHagerZhang:      betaHagerZhang,
	BetaLiuStorey:       betaLiuStorey,
}

func betaFletcherReeves(s *betaState) float64 {
	newNormSquared := s.m.InnerProduct(s.newPoint, s.newGradient, s.newGradient)
	return newNormSquared / s.gradientNormSquared
}

func betaPolakRibiere(s *betaState) float64 {
	diff := gradientDifference(s)
	ip := s.m.InnerProduct(s.newPoint, s.newGradient, diff)
	return math.Max(0, ip/s.gradientNormSquared)
}

func betaHestenesStiefel(s *betaState) float64 {
	diff := gradientDifference(s)
	denominator := s.m.InnerProduct(s.newPoint, diff, s.transportedDirection)
	if denominator == 0 {
		// Degenerate update; restart from the gradient.
		return 0
	}
	numerator := s.m.InnerProduct(s.newPoint, s.newGradient, diff)
	return math.Max(0, numerator/denominator)
}

func betaHagerZhang(s *betaState) float64 {
	diff := gradientDifference(s)
	denominator := s.m.InnerProduct(s.newPoint, diff, s.transportedDirection)
	numerator := s.m.InnerProduct(s.newPoint, diff, s.newGradient)
	numerator -= 2 * s.m.InnerProduct(s.newPoint, diff, diff) *
		s.m.InnerProduct(s.newPoint, s.transportedDirection, s.newGradient) / denominator
	beta := numerator / denominator

	// Truncation keeping the method globally convergent without
	// assumptions on the cost.
	directionNorm := s.m.Norm(s.newPoint, s.transportedDirection)
	eta := -1 / (directionNorm * math.Min(0.01, math.Sqrt(s.gradientNormSquared)))
	return math.Max(beta, eta)
}

func betaLiuStorey(s *betaState) float64 {
	diff := gradientDifference(s)
	ip := s.m.InnerProduct(s.newPoint, s.newGradient, diff)
	denominator := -s.m.InnerProduct(s.point, s.gradient, s.descentDirection)
	betaLS := ip / denominator
	betaCD := s.m.InnerProduct(s.newPoint, s.newGradient, s.newGradient) / denominator
	return math.Max(0, math.Min(betaLS, betaCD))
}

// gradientDifference returns the new gradient minus the transported old
// gradient.
func gradientDifference(s *betaState) *mat.Dense {
	var diff mat.Dense
	diff.Sub(s.newGradient, s.transportedGradient)
	return mat.DenseCopyOf(&diff)
}

// ConjugateGradientConfig configures a ConjugateGradient optimizer. The
// zero value selects the Hestenes-Stiefel rule with the default stopping
// criteria.
type ConjugateGradientConfig struct {
	StoppingConfig

	// BetaRule selects the conjugacy coefficient update. One of
	// FletcherReeves, PolakRibiere, HestenesStiefel, HagerZhang or
	// LiuStorey. Default HestenesStiefel.
	BetaRule string

	// OrthValue triggers a restart when successive gradients are far
	// from orthogonal by the Powell ratio. Default +Inf (never).
	OrthValue float64
}

// ConjugateGradient minimizes a cost over a manifold by nonlinear
// conjugate gradient: the descent direction mixes the new gradient with
// the transported previous direction, weighted by the configured beta
// rule, and an adaptive Armijo search picks the step.
type ConjugateGradient struct {
	stopping  StoppingConfig
	ruleName  string
	rule      betaRule
	orthValue float64
}

// NewConjugateGradient validates the configuration and returns the
// optimizer. An unknown beta-rule name is a *ConfigurationError.
func NewConjugateGradient(config ConjugateGradientConfig) (*ConjugateGradient, error) {
	stopping, err := config.StoppingConfig.withDefaults()
	if err != nil {
		return nil, err
	}
	name := config.BetaRule
	if name == "" {
		name = BetaHestenesStiefel
	}
	rule, ok := betaRules[name]
	if !ok {
		known := make([]string, 0, len(betaRules))
		for k := range betaRules {
			known = append(known, k)
		}
		sort.Strings(known)
		return nil, &ConfigurationError{
			Component: "ConjugateGradient",
			Reason:    fmt.Sprintf("unknown beta rule %q; known rules: %s", name, strings.Join(known, ", ")),
		}
	}
	orthValue := config.OrthValue
	if orthValue == 0 {
		orthValue = math.Inf(1)
	}
	if orthValue < 0 {
		return nil, &ConfigurationError{Component: "ConjugateGradient", Reason: "OrthValue must be positive"}
	}
	return &ConjugateGradient{
		stopping:  stopping,
		ruleName:  name,
		rule:      rule,
		orthValue: orthValue,
	}, nil
}

// BetaRule returns the name of the configured beta-update rule.
func (cg *ConjugateGradient) BetaRule() string { return cg.ruleName }

// Run minimizes the problem starting from initial, or from a random
// point when initial is nil.
func (cg *ConjugateGradient) Run(problem *Problem, initial *mat.Dense) (*Result, error) {
	if err := problem.validate(); err != nil {
		return nil, err
	}
	m := problem.Manifold
	searcher := newAdaptiveLineSearcher()

	point := initial
	if point == nil {
		point = m.RandomPoint()
	} else {
		point = mat.DenseCopyOf(point)
	}

	cost := problem.Cost(point)
	gradient := problem.RiemannianGradient(point)
	gradNorm := m.Norm(point, gradient)
	gradNormSquared := gradNorm * gradNorm

	descent := negated(gradient)
	stepSize := -1.0

	iteration := 0
	for {
		reason := cg.stopping.stopReason(iteration, gradNorm, stepSize)
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

		df0 := m.InnerProduct(point, gradient, descent)
		if df0 >= 0 {
			// Not a descent direction; restart from the gradient.
			descent = negated(gradient)
			df0 = -gradNormSquared
		}

		var newPoint *mat.Dense
		stepSize, newPoint = searcher.search(problem.Cost, m, point, descent, cost, df0)
		newCost := problem.Cost(newPoint)
		newGradient := problem.RiemannianGradient(newPoint)
		newGradNorm := m.Norm(newPoint, newGradient)

		transportedGradient := m.Transport(point, newPoint, gradient)
		transportedDirection := m.Transport(point, newPoint, descent)

		var beta float64
		orth := math.Abs(m.InnerProduct(newPoint, newGradient, transportedGradient)) / (newGradNorm * newGradNorm)
		if orth >= cg.orthValue {
			beta = 0
		} else {
			beta = cg.rule(&betaState{
				m:                    m,
				point:                point,
				newPoint:             newPoint,
				gradient:             gradient,
				newGradient:          newGradient,
				transportedGradient:  transportedGradient,
				transportedDirection: transportedDirection,
				gradientNormSquared:  gradNormSquared,
				descentDirection:     descent,
			})
		}

		var next mat.Dense
		next.Scale(beta, transportedDirection)
		next.Sub(&next, newGradient)
		descent = mat.DenseCopyOf(&next)

		point = newPoint
		cost = newCost
		gradient = newGradient
		gradNorm = newGradNorm
		gradNormSquared = newGradNorm * newGradNorm
	}
}

func negated(u *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Scale(-1, u)
	return mat.DenseCopyOf(&out)
}
