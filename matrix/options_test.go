// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/stridebench/matrix"
	"github.com/stretchr/testify/require"
)

// 1) TestDefaultOptions_Documented verifies that NewOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewOptions()

	require.Equal(t, matrix.DefaultCacheLine, o.CacheLine())
	require.Equal(t, matrix.DefaultAlign, o.Aligned())
	require.GreaterOrEqual(t, matrix.DefaultCacheLine, 32) // every supported target has >= 32B lines
}

// 2) TestOptions_LastWriterWins ensures setters apply in order.
func TestOptions_LastWriterWins(t *testing.T) {
	o := matrix.NewOptions(matrix.WithCacheLine(32), matrix.WithCacheLine(128))
	require.Equal(t, 128, o.CacheLine())

	o = matrix.NewOptions(matrix.WithoutAlignment())
	require.False(t, o.Aligned())
}

// 3) TestWithCacheLine_PanicsOnInvalid checks programmer-error guards.
func TestWithCacheLine_PanicsOnInvalid(t *testing.T) {
	for _, bad := range []int{0, 2, 3, 48, -64} {
		require.Panics(t, func() { matrix.WithCacheLine(bad) }, "bytes=%d", bad)
	}
	require.NotPanics(t, func() { matrix.WithCacheLine(matrix.ElemSize) })
}
