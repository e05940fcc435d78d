// Copyright 2025 The Geomopt Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Optimizer is the interface all optimization algorithms implement.
//
// Run minimizes the problem's cost over its manifold, starting from
// initial (or from a random point when initial is nil), and reports the
// final point together with diagnostics. Run does not mutate the initial
// point.
type Optimizer interface {
	Run(problem *Problem, initial *mat.Dense) (*Result, error)
}

// Result reports the outcome of an optimizer run.
type Result struct {
	// Point is the final iterate.
	Point *mat.Dense

	// Cost is the objective value at Point.
	Cost float64

	// GradientNorm is the Riemannian gradient norm at Point.
	GradientNorm float64

	// Iterations is the number of iterations performed.
	Iterations int

	// Reason describes which stopping criterion ended the run.
	Reason string
}

// StoppingConfig carries the stopping criteria shared by the iterative
// optimizers. Zero values select the defaults.
type StoppingConfig struct {
	// MaxIterations caps the number of iterations. Default 1000.
	MaxIterations int

	// MinGradientNorm stops the run once the Riemannian gradient norm
	// falls below it. Default 1e-6.
	MinGradientNorm float64

	// MinStepSize stops the run once the line search produces steps
	// shorter than it. Default 1e-10.
	MinStepSize float64
}

func (c StoppingConfig) withDefaults() (StoppingConfig, error) {
	if c.MaxIterations == 0 {
		c.MaxIterations = 1000
	}
	if c.MinGradientNorm == 0 {
		c.MinGradientNorm = 1e-6
	}
	if c.MinStepSize == 0 {
		c.MinStepSize = 1e-10
	}
	if c.MaxIterations < 0 {
		return c, &ConfigurationError{Component: "StoppingConfig", Reason: fmt.Sprintf("MaxIterations must be positive, got %d", c.MaxIterations)}
	}
	if c.MinGradientNorm < 0 || c.MinStepSize < 0 {
		return c, &ConfigurationError{Component: "StoppingConfig", Reason: "tolerances must be nonnegative"}
	}
	return c, nil
}

// stopReason returns the stopping criterion hit by the current iterate,
// or "" to continue. stepSize < 0 means no step has been taken yet.
func (c StoppingConfig) stopReason(iteration int, gradNorm, stepSize float64) string {
	switch {
	case gradNorm < c.MinGradientNorm:
		return fmt.Sprintf("gradient norm %g below tolerance %g", gradNorm, c.MinGradientNorm)
	case stepSize >= 0 && stepSize < c.MinStepSize:
		return fmt.Sprintf("step size %g below tolerance %g", stepSize, c.MinStepSize)
	case iteration >= c.MaxIterations:
		return fmt.Sprintf("reached maximum of %d iterations", c.MaxIterations)
	}
	return ""
}
