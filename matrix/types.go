// SPDX-License-Identifier: MIT

// Package matrix: domain types. Spec is a plain value, copied freely and never
// mutated after construction; Buffer (buffer.go) owns the storage it describes.
package matrix

import (
	"fmt"
	"unsafe"
)

// ElemSize is the width in bytes of one matrix element (int32).
const ElemSize = int(unsafe.Sizeof(int32(0)))

// Spec describes the logical shape of a matrix and the padding placed before it.
//
// Invariants (checked by Validate):
//   - Rows > 0, Cols > 0.
//   - Offset >= 0; it counts leading elements, not bytes.
type Spec struct {
	Rows   int // number of rows
	Cols   int // number of columns (also the column-major stride)
	Offset int // leading padding elements before (0,0)
}

// Elements returns Rows*Cols, the number of logical elements.
// Complexity: O(1).
func (s Spec) Elements() int {
	return s.Rows * s.Cols
}

// Len returns the full buffer length Offset + Rows*Cols.
// Complexity: O(1).
func (s Spec) Len() int {
	return s.Offset + s.Elements()
}

// WithOffset returns a copy of s with Offset replaced.
func (s Spec) WithOffset(offset int) Spec {
	s.Offset = offset // s is a copy; caller's value is untouched

	return s
}

// Validate reports whether s satisfies the Spec invariants.
// Delegates to ValidateSpec so the check lives in one place.
func (s Spec) Validate() error {
	return ValidateSpec(s)
}

// String renders the shape as "<rows> x <cols>", the form used in reports.
func (s Spec) String() string {
	return fmt.Sprintf("%d x %d", s.Rows, s.Cols)
}
