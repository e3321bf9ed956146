// SPDX-License-Identifier: MIT

// Package matrix: Buffer, a row-major grid of int32 values stored in a single
// slice with optional leading padding.
package matrix

import (
	"fmt"
	"unsafe"
)

// bufferErrorf wraps an underlying error with Buffer method context.
func bufferErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Buffer.%s(%d,%d): %w", method, row, col, err)
}

// Buffer is a row-major int32 matrix with Offset leading padding elements.
// spec is the shape, line the cache line size used for placement, and data
// holds exactly spec.Len() elements.
type Buffer struct {
	spec Spec    // shape + padding
	line int     // cache line size in bytes
	data []int32 // flat backing storage, len == Offset + Rows*Cols
}

// Value is the deterministic content of element (i, j) in a matrix with cols columns.
// Complexity: O(1).
func Value(i, j, cols int) int32 {
	return int32(i*cols + j) // wraps for matrices beyond 2^31 elements; still deterministic
}

// NewBuffer allocates and fills a Buffer for spec.
// Stage 1 (Validate): reject negative dimensions or offset.
// Stage 2 (Prepare): allocate a cache-line-aligned slice of spec.Len() elements.
// Stage 3 (Fill): write Value(i, j) at Offset + i*Cols + j; padding stays zero.
// Zero rows or cols are accepted and produce an empty logical region.
// Complexity: O(Offset + Rows*Cols) time and memory.
func NewBuffer(spec Spec, opts ...Option) (*Buffer, error) {
	// Validate layout (degenerate shapes allowed)
	if err := ValidateLayout(spec); err != nil {
		return nil, fmt.Errorf("NewBuffer: %w", err)
	}
	o := gatherOptions(opts...)

	// Allocate flat slice
	var data []int32
	if o.align {
		data = alignedInt32s(spec.Len(), o.cacheLine)
	} else {
		data = make([]int32, spec.Len())
	}

	b := &Buffer{spec: spec, line: o.cacheLine, data: data}
	b.fill()

	return b, nil
}

// fill writes the deterministic value function into the logical region.
func (b *Buffer) fill() {
	var i, j int
	rows, cols, base := b.spec.Rows, b.spec.Cols, b.spec.Offset
	for i = 0; i < rows; i++ { // row-major fill, unit stride
		row := base + i*cols
		for j = 0; j < cols; j++ {
			b.data[row+j] = Value(i, j, cols)
		}
	}
}

// alignedInt32s returns a slice of n int32 whose first element sits on a
// line-byte boundary. It over-allocates by one line and reslices; the Go heap
// does not move objects, so the placement is stable for the slice's lifetime.
func alignedInt32s(n, line int) []int32 {
	raw := make([]int32, n+line/ElemSize)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
	shift := 0
	if rem := int(addr % uintptr(line)); rem != 0 {
		shift = (line - rem) / ElemSize // rem is a multiple of ElemSize (int32 alignment)
	}

	return raw[shift : shift+n : shift+n]
}

// Spec returns the shape the buffer was built for.
func (b *Buffer) Spec() Spec { return b.spec }

// Rows returns the number of rows. Complexity: O(1).
func (b *Buffer) Rows() int { return b.spec.Rows }

// Cols returns the number of columns. Complexity: O(1).
func (b *Buffer) Cols() int { return b.spec.Cols }

// Offset returns the number of leading padding elements. Complexity: O(1).
func (b *Buffer) Offset() int { return b.spec.Offset }

// CacheLine returns the cache line size (bytes) used for placement.
func (b *Buffer) CacheLine() int { return b.line }

// Data returns the full backing slice, padding included. Traversal kernels
// index it directly; callers must not retain it past the buffer's lifetime.
func (b *Buffer) Data() []int32 { return b.data }

// Logical returns the window [Offset, Offset+Rows*Cols) holding the matrix.
func (b *Buffer) Logical() []int32 {
	return b.data[b.spec.Offset:b.spec.Len()]
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (b *Buffer) indexOf(row, col int) (int, error) {
	if row < 0 || row >= b.spec.Rows {
		return 0, bufferErrorf("At", row, col, ErrOutOfRange)
	}
	if col < 0 || col >= b.spec.Cols {
		return 0, bufferErrorf("At", row, col, ErrOutOfRange)
	}

	return b.spec.Offset + row*b.spec.Cols + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (b *Buffer) At(row, col int) (int32, error) {
	idx, err := b.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return b.data[idx], nil
}

// Misalignment returns the byte displacement of element (0,0) from the
// previous cache-line boundary, in [0, CacheLine()).
// Complexity: O(1).
func (b *Buffer) Misalignment() int {
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(b.data)))
	addr += uintptr(b.spec.Offset * ElemSize)

	return int(addr % uintptr(b.line))
}

// Equal reports whether b and other have the same Spec and identical contents,
// padding included.
// Complexity: O(Offset + Rows*Cols).
func (b *Buffer) Equal(other *Buffer) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.spec != other.spec || len(b.data) != len(other.data) {
		return false
	}
	for k := range b.data {
		if b.data[k] != other.data[k] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for debugging: shape, offset and placement.
func (b *Buffer) String() string {
	return fmt.Sprintf("Buffer{%s, offset=%d, misalign=%dB/%dB}",
		b.spec, b.spec.Offset, b.Misalignment(), b.line)
}
