// Copyright 2025 The Geomopt Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package manifold

import (
	"github.com/geomopt-ml/geomopt/internal/manifold"
)

// Manifold is the contract every concrete geometry implements; see the
// method documentation on the internal interface for the exact
// semantics of each operation.
type Manifold = manifold.Manifold

// Error types surfaced by manifolds.
type (
	// ShapeError is panicked on operands whose dimensions do not match
	// the manifold descriptor.
	ShapeError = manifold.ShapeError
	// UnsupportedOperationError is panicked when an operation is not
	// defined by the manifold.
	UnsupportedOperationError = manifold.UnsupportedOperationError
	// ConfigurationError is returned by constructors on invalid
	// parameters.
	ConfigurationError = manifold.ConfigurationError
)

// Euclidean is the flat manifold of m×n real matrices.
type Euclidean = manifold.Euclidean

// NewEuclidean returns the manifold of m×n real matrices.
func NewEuclidean(m, n int) (*Euclidean, error) { return manifold.NewEuclidean(m, n) }

// Sphere is the unit sphere in Rⁿ, with points as n×1 matrices.
type Sphere = manifold.Sphere

// NewSphere returns the unit sphere in Rⁿ.
func NewSphere(n int) (*Sphere, error) { return manifold.NewSphere(n) }

// SymmetricPositiveDefinite is the manifold of symmetric
// positive-definite matrices with the affine-invariant metric.
type SymmetricPositiveDefinite = manifold.SymmetricPositiveDefinite

// NewSymmetricPositiveDefinite returns the manifold of n×n symmetric
// positive-definite matrices.
func NewSymmetricPositiveDefinite(n int) (*SymmetricPositiveDefinite, error) {
	return manifold.NewSymmetricPositiveDefinite(n)
}

// PSDFixedRank is the quotient manifold of rank-k positive-semidefinite
// n×n matrices represented by their n×k factors.
type PSDFixedRank = manifold.PSDFixedRank

// NewPSDFixedRank returns the manifold of n×n positive-semidefinite
// matrices of fixed rank k.
func NewPSDFixedRank(n, k int) (*PSDFixedRank, error) { return manifold.NewPSDFixedRank(n, k) }
