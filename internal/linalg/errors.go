// Copyright 2025 The Geomopt Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linalg

import "fmt"

// ShapeError reports an operand whose dimensions are inconsistent with
// what the operation requires. It is delivered by panic: shape mismatches
// are call-site bugs, not runtime conditions.
type ShapeError struct {
	Op   string // operation that rejected the operand
	Want string // what the operation requires
	Got  string // the offending dimensions
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("linalg: %s: want %s, got %s", e.Op, e.Want, e.Got)
}

// ConfigurationError reports invalid construction parameters, such as a
// negative batch size. It is delivered by panic from constructors.
type ConfigurationError struct {
	Op     string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("linalg: %s: %s", e.Op, e.Reason)
}

// NumericalDomainError reports an input outside the mathematical domain
// of the algorithm evaluating it, for example a singular matrix passed to
// the general matrix logarithm. It is returned, not panicked: the caller
// supplied a mathematically ill-posed input and gets told so instead of
// receiving NaNs.
type NumericalDomainError struct {
	Op     string
	Reason string
}

func (e *NumericalDomainError) Error() string {
	return fmt.Sprintf("linalg: %s: %s", e.Op, e.Reason)
}
