// Copyright 2025 The Geomopt Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package manifold defines the Riemannian manifold contract and the
// concrete geometries built on it: Euclidean space, the unit sphere,
// symmetric positive-definite matrices, and rank-k positive-semidefinite
// matrices in factored form.
//
// Points and tangent vectors are dense float64 matrices whose shape is
// fixed by the manifold descriptor. Descriptors are immutable after
// construction and safe to share; operations never mutate their operands
// and always allocate their results. A tangent vector is only meaningful
// relative to the point it was produced against; maintaining that pairing
// is the caller's responsibility.
//
// Shape mismatches panic with *ShapeError and operations a manifold does
// not define panic with *UnsupportedOperationError; both are call-site
// bugs. Invalid construction parameters are returned eagerly as
// *ConfigurationError.
package manifold
