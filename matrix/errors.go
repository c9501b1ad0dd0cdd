// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." for consistency. Index errors
// reuse core.ErrInvalidIndex so callers match one sentinel across packages.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested or supplied shape is invalid
	// (negative size, ragged rows).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates that a distance row does not have one
	// entry per node.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrBadDistance indicates a NaN or negative distance.
	// +Inf is accepted and means "unreachable".
	ErrBadDistance = errors.New("matrix: invalid distance")
)
