// Copyright 2025 The Geomopt Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linalg is the public API for the batched matrix-function
// kernels: vectorized transposition and (skew-)symmetrization, matrix
// exponentials and logarithms, and sign-stabilized QR factorization.
//
// Example:
//
//	b := linalg.Identity(8, 4)
//	q, r := b.QR()
//	logs, err := b.LogmSPD()
//
// See the type and function documentation for the single-matrix entry
// points operating on *mat.Dense.
package linalg
