// Copyright 2025 The Geomopt Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linalg

import (
	"gonum.org/v1/gonum/mat"

	"github.com/geomopt-ml/geomopt/internal/linalg"
)

// Batch is a stack of k equally-shaped dense matrices processed slice by
// slice by the batched kernel operations.
type Batch = linalg.Batch

// Error types surfaced by the kernels.
type (
	// ShapeError is panicked on operands of inconsistent dimensions.
	ShapeError = linalg.ShapeError
	// ConfigurationError is panicked on invalid construction sizes.
	ConfigurationError = linalg.ConfigurationError
	// NumericalDomainError is returned for inputs outside an
	// algorithm's mathematical domain.
	NumericalDomainError = linalg.NumericalDomainError
)

// NewBatch returns a zero-filled batch of k rows×cols matrices.
func NewBatch(k, rows, cols int) *Batch { return linalg.NewBatch(k, rows, cols) }

// FromDense returns a batch copying the given equally-shaped matrices.
func FromDense(ms ...*mat.Dense) *Batch { return linalg.FromDense(ms...) }

// Identity returns a batch of k n×n identity matrices.
func Identity(k, n int) *Batch { return linalg.Identity(k, n) }

// Transpose returns the transpose of a.
func Transpose(a *mat.Dense) *mat.Dense { return linalg.Transpose(a) }

// ConjTranspose returns the conjugate transpose of a; for real data it
// equals Transpose.
func ConjTranspose(a *mat.Dense) *mat.Dense { return linalg.ConjTranspose(a) }

// Symmetrize returns (a + aᵀ)/2.
func Symmetrize(a *mat.Dense) *mat.Dense { return linalg.Symmetrize(a) }

// SkewSymmetrize returns (a - aᵀ)/2.
func SkewSymmetrize(a *mat.Dense) *mat.Dense { return linalg.SkewSymmetrize(a) }

// Expm computes the matrix exponential by scaling and squaring with a
// diagonal Padé approximant.
func Expm(a *mat.Dense) (*mat.Dense, error) { return linalg.Expm(a) }

// ExpmSym computes the matrix exponential of a symmetric matrix by
// eigendecomposition.
func ExpmSym(a *mat.Dense) (*mat.Dense, error) { return linalg.ExpmSym(a) }

// Logm computes the principal matrix logarithm by inverse scaling and
// squaring.
func Logm(a *mat.Dense) (*mat.Dense, error) { return linalg.Logm(a) }

// LogmSPD computes the matrix logarithm of a symmetric positive-definite
// matrix by eigendecomposition.
func LogmSPD(a *mat.Dense) (*mat.Dense, error) { return linalg.LogmSPD(a) }

// QR computes the thin QR factorization with a nonnegative R diagonal.
func QR(a *mat.Dense) (q, r *mat.Dense) { return linalg.QR(a) }
