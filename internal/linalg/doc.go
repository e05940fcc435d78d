// Copyright 2025 The Geomopt Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linalg implements the batched matrix-function kernels the
// manifold layer is built on: transposition, (skew-)symmetrization,
// matrix exponentials and logarithms, and a sign-stabilized QR
// factorization.
//
// Every operation comes in two explicit forms: a single-matrix function
// taking a *mat.Dense, and a method on Batch applying the same semantics
// independently to each of the k matrices in the stack. There is no rank
// inference; callers choose the entry point, never the other way around.
//
// All operations are pure: inputs are never mutated and results are
// freshly allocated. Precondition violations (wrong shapes, invalid
// construction sizes) panic with *ShapeError or *ConfigurationError,
// following the policy of gonum/mat; detectable violations of an
// algorithm's mathematical domain are returned as *NumericalDomainError.
package linalg
