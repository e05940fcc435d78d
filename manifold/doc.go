// Copyright 2025 The Geomopt Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package manifold is the public API for the Riemannian manifold
// contract and the concrete geometries: Euclidean space, the unit
// sphere, symmetric positive-definite matrices, and fixed-rank
// positive-semidefinite matrices in factored form.
//
// Example:
//
//	s, err := manifold.NewSphere(32)
//	if err != nil { ... }
//	x := s.RandomPoint()
//	u := s.RandomTangentVector(x)
//	y := s.Retraction(x, u)
package manifold
