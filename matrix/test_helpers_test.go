// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for Buffer tests and benchmarks.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/stridebench/matrix"
)

// MustBuffer ALLOCATES a Buffer for spec or fails the test (fatal on error).
// Implementation:
//   - Stage 1: Call matrix.NewBuffer(spec, opts...).
//   - Stage 2: t.Fatalf on error to abort the test early.
//
// Complexity:
//   - Time O(Offset + Rows*Cols), Space O(Offset + Rows*Cols).
func MustBuffer(t testing.TB, spec matrix.Spec, opts ...matrix.Option) *matrix.Buffer {
	t.Helper()
	b, err := matrix.NewBuffer(spec, opts...)
	if err != nil {
		t.Fatalf("NewBuffer(%+v): %v", spec, err)
	}

	return b
}

// linear returns 0, 1, ..., n-1 as int32, the expected logical contents of
// any buffer with n elements.
func linear(n int) []int32 {
	out := make([]int32, n)
	for k := range out {
		out[k] = int32(k)
	}

	return out
}
