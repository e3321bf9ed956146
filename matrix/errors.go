// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." for easy grepping. Callers match
// with errors.Is; call sites add context with fmt.Errorf("Tag: %w", ErrX).

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid.
	// Spec.Validate rejects rows<=0 or cols<=0; NewBuffer only rejects negatives.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNegativeOffset indicates a negative count of leading padding elements.
	ErrNegativeOffset = errors.New("matrix: offset must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilBuffer indicates that a nil *Buffer (receiver or argument) was used.
	ErrNilBuffer = errors.New("matrix: nil buffer")
)
