// Copyright 2025 The Geomopt Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package manifold

import "fmt"

// ShapeError reports a point or tangent vector whose dimensions do not
// match the manifold's declared dimensions. It is delivered by panic.
type ShapeError struct {
	Manifold string
	Op       string
	WantRows int
	WantCols int
	GotRows  int
	GotCols  int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("manifold: %s.%s: want %d×%d operand, got %d×%d",
		e.Manifold, e.Op, e.WantRows, e.WantCols, e.GotRows, e.GotCols)
}

// UnsupportedOperationError reports a request for an operation the
// manifold does not define, such as a closed-form pair mean on a
// quotient geometry that has none. It is delivered by panic: the absence
// is part of the manifold's contract, not a runtime condition.
type UnsupportedOperationError struct {
	Manifold string
	Op       string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("manifold: %s does not define %s", e.Manifold, e.Op)
}

// ConfigurationError reports invalid manifold construction parameters.
// Constructors return it eagerly so misconfiguration never survives to
// first use.
type ConfigurationError struct {
	Manifold string
	Reason   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("manifold: %s: %s", e.Manifold, e.Reason)
}
