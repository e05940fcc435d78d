// Copyright 2025 The Geomopt Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/geomopt-ml/geomopt/internal/manifold"
)

func TestSteepestDescentMinimizesEuclideanQuadratic(t *testing.T) {
	const m, n = 4, 3
	rng := rand.New(rand.NewPCG(3, 11))

	target := mat.NewDense(m, n, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			target.Set(i, j, rng.NormFloat64())
		}
	}

	euclidean, err := manifold.NewEuclidean(m, n)
	require.NoError(t, err)

	problem := &Problem{
		Manifold: euclidean,
		Cost: func(x *mat.Dense) float64 {
			var d mat.Dense
			d.Sub(x, target)
			norm := mat.Norm(&d, 2)
			return norm * norm
		},
		EuclideanGradient: func(x *mat.Dense) *mat.Dense {
			g := mat.NewDense(m, n, nil)
			g.Sub(x, target)
			g.Scale(2, g)
			return g
		},
	}

	sd, err := NewSteepestDescent(SteepestDescentConfig{})
	require.NoError(t, err)

	result, err := sd.Run(problem, mat.NewDense(m, n, nil))
	require.NoError(t, err)

	assert.True(t, mat.EqualApprox(target, result.Point, 1e-5),
		"stopped after %d iterations: %s", result.Iterations, result.Reason)
	assert.InDelta(t, 0, result.Cost, 1e-10)
	assert.Less(t, result.GradientNorm, 1e-4)
}

func TestSteepestDescentDoesNotMutateInitial(t *testing.T) {
	euclidean, err := manifold.NewEuclidean(2, 2)
	require.NoError(t, err)

	problem := &Problem{
		Manifold: euclidean,
		Cost: func(x *mat.Dense) float64 {
			norm := mat.Norm(x, 2)
			return norm * norm
		},
		EuclideanGradient: func(x *mat.Dense) *mat.Dense {
			g := mat.NewDense(2, 2, nil)
			g.Scale(2, x)
			return g
		},
	}

	initial := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	snapshot := mat.DenseCopyOf(initial)

	sd, err := NewSteepestDescent(SteepestDescentConfig{})
	require.NoError(t, err)
	_, err = sd.Run(problem, initial)
	require.NoError(t, err)

	assert.True(t, mat.Equal(snapshot, initial))
}

func TestSteepestDescentValidatesProblem(t *testing.T) {
	sd, err := NewSteepestDescent(SteepestDescentConfig{})
	require.NoError(t, err)

	euclidean, err := manifold.NewEuclidean(2, 2)
	require.NoError(t, err)

	for name, problem := range map[string]*Problem{
		"nil manifold": {Cost: func(*mat.Dense) float64 { return 0 }, EuclideanGradient: func(x *mat.Dense) *mat.Dense { return x }},
		"nil cost":     {Manifold: euclidean, EuclideanGradient: func(x *mat.Dense) *mat.Dense { return x }},
		"nil gradient": {Manifold: euclidean, Cost: func(*mat.Dense) float64 { return 0 }},
	} {
		_, err := sd.Run(problem, nil)
		require.Error(t, err, name)
		var cfgErr *ConfigurationError
		assert.True(t, errors.As(err, &cfgErr), name)
	}
}

func TestSteepestDescentRejectsInvalidStoppingConfig(t *testing.T) {
	_, err := NewSteepestDescent(SteepestDescentConfig{
		StoppingConfig: StoppingConfig{MaxIterations: -1},
	})
	require.Error(t, err)
	var cfgErr *ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestRiemannianHessianRequiresCallback(t *testing.T) {
	euclidean, err := manifold.NewEuclidean(2, 2)
	require.NoError(t, err)
	problem := &Problem{
		Manifold:          euclidean,
		Cost:              func(*mat.Dense) float64 { return 0 },
		EuclideanGradient: func(x *mat.Dense) *mat.Dense { return mat.NewDense(2, 2, nil) },
	}

	assert.Panics(t, func() {
		problem.RiemannianHessian(mat.NewDense(2, 2, nil), mat.NewDense(2, 2, nil))
	})
}
