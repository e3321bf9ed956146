// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for Spec and Buffer checks.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSpec – Ensures rows and cols are positive, the offset is non-negative
// and Offset + Rows*Cols does not overflow int.
//
// Returns wrapped ErrBadShape or ErrNegativeOffset.
// Complexity: O(1).
func ValidateSpec(s Spec) error {
	if s.Rows <= 0 || s.Cols <= 0 {
		return validatorErrorf("ValidateSpec", ErrBadShape)
	}
	if err := validateOffset("ValidateSpec", s.Offset); err != nil {
		return err
	}

	return validateLen("ValidateSpec", s)
}

// ValidateLayout – Weaker check used by NewBuffer: dimensions may be zero
// (degenerate, no-op traversal) but never negative, and Len() must fit in an int.
//
// Complexity: O(1).
func ValidateLayout(s Spec) error {
	if s.Rows < 0 || s.Cols < 0 {
		return validatorErrorf("ValidateLayout", ErrBadShape)
	}
	if err := validateOffset("ValidateLayout", s.Offset); err != nil {
		return err
	}

	return validateLen("ValidateLayout", s)
}

// ValidateNotNil – Ensures the buffer reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(b *Buffer) error {
	if b == nil {
		return validatorErrorf("ValidateNotNil", ErrNilBuffer)
	}

	return nil
}

func validateOffset(tag string, offset int) error {
	if offset < 0 {
		return validatorErrorf(tag, ErrNegativeOffset)
	}

	return nil
}

// validateLen rejects shapes whose Len() does not fit in an int.
// Requires non-negative Rows, Cols and Offset.
func validateLen(tag string, s Spec) error {
	if s.Cols > 0 && s.Rows > (math.MaxInt-s.Offset)/s.Cols {
		return validatorErrorf(tag, fmt.Errorf("%w: %d x %d + %d overflows int", ErrBadShape, s.Rows, s.Cols, s.Offset))
	}

	return nil
}
