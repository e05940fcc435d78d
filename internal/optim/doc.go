// Copyright 2025 The Geomopt Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim implements Riemannian optimization algorithms on top of
// the manifold contract: steepest descent and nonlinear conjugate
// gradient with a choice of beta-update rules.
//
// Optimizers consume a Problem, which pairs a manifold with externally
// supplied cost and Euclidean-derivative callbacks. How the derivatives
// are computed (automatic, symbolic or numeric differentiation) is the
// caller's business; the optimizers only ever see the two closures.
//
// All configuration is validated at construction time; an invalid option
// such as an unknown beta-rule name is returned as *ConfigurationError
// before any iteration runs.
package optim
