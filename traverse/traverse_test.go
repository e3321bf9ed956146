package traverse_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/stridebench/matrix"
	"github.com/katalvlaran/stridebench/traverse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBuffer(t testing.TB, rows, cols, offset int) *matrix.Buffer {
	t.Helper()
	b, err := matrix.NewBuffer(matrix.Spec{Rows: rows, Cols: cols, Offset: offset})
	if err != nil {
		t.Fatalf("NewBuffer(%d,%d,%d): %v", rows, cols, offset, err)
	}

	return b
}

// sequence records the values visited in order.
func sequence(t *testing.T, b *matrix.Buffer, order traverse.Order, iterations int) []int32 {
	t.Helper()
	var seq []int32
	require.NoError(t, traverse.Visit(b, order, iterations, func(_, _ int, v int32) {
		seq = append(seq, v)
	}))

	return seq
}

func counts(seq []int32) map[int32]int {
	m := make(map[int32]int, len(seq))
	for _, v := range seq {
		m[v]++
	}

	return m
}

func TestVisitOrder2x3(t *testing.T) {
	b := mustBuffer(t, 2, 3, 0)

	assert.Equal(t, []int32{0, 1, 2, 3, 4, 5}, sequence(t, b, traverse.RowMajorOrder, 1))
	assert.Equal(t, []int32{0, 3, 1, 4, 2, 5}, sequence(t, b, traverse.ColMajorOrder, 1))
}

func TestVisitCoverage(t *testing.T) {
	shapes := []struct{ rows, cols, offset, iterations int }{
		{2, 3, 0, 1},
		{4, 5, 1, 3},
		{7, 1, 2, 2},
		{1, 9, 0, 4},
		{16, 13, 5, 2},
	}
	for _, s := range shapes {
		t.Run(fmt.Sprintf("%dx%d+%d*%d", s.rows, s.cols, s.offset, s.iterations), func(t *testing.T) {
			b := mustBuffer(t, s.rows, s.cols, s.offset)
			row := sequence(t, b, traverse.RowMajorOrder, s.iterations)
			col := sequence(t, b, traverse.ColMajorOrder, s.iterations)

			want := s.rows * s.cols * s.iterations
			require.Len(t, row, want)
			require.Len(t, col, want)
			require.Equal(t, counts(row), counts(col)) // identical multiset
			for v, n := range counts(row) {
				require.Equal(t, s.iterations, n, "value %d", v) // each element once per iteration
			}
		})
	}
}

// pow3 returns 3^n with int32 wrapping, the product the kernels produce when
// one element holds 3, every other logical element holds 1 and the marked
// element is loaded exactly n times. 3 has odd multiplicative order mod 2^32,
// so distinct small n give distinct products.
func pow3(n int) int32 {
	p := int32(1)
	for k := 0; k < n; k++ {
		p *= 3
	}

	return p
}

// TestKernelsVisitEachElement marks one element at a time and checks, through
// the timed kernels themselves, that it is loaded once per iteration and that
// the zeroed padding is never loaded.
func TestKernelsVisitEachElement(t *testing.T) {
	shapes := []struct{ rows, cols, offset, iterations int }{
		{2, 3, 0, 1},
		{4, 5, 1, 3},
		{7, 1, 2, 2},
		{1, 9, 0, 4},
		{6, 13, 5, 2},
	}
	kernels := map[string]func(*matrix.Buffer, int) int32{
		"RowMajor": traverse.RowMajor,
		"ColMajor": traverse.ColMajor,
	}
	for _, s := range shapes {
		b := mustBuffer(t, s.rows, s.cols, s.offset) // padding is zero: loading it zeroes the product
		logical := b.Logical()
		want := pow3(s.iterations)
		for k := range logical {
			for m := range logical {
				logical[m] = 1
			}
			logical[k] = 3
			for name, kernel := range kernels {
				require.Equal(t, want, kernel(b, s.iterations),
					"%s %dx%d+%d element %d", name, s.rows, s.cols, s.offset, k)
			}
		}
	}
}

func TestVisitSkipsPadding(t *testing.T) {
	b := mustBuffer(t, 2, 3, 4)
	for k := 0; k < b.Offset(); k++ {
		b.Data()[k] = -7 // poison padding
	}
	for _, order := range []traverse.Order{traverse.RowMajorOrder, traverse.ColMajorOrder} {
		assert.NotContains(t, sequence(t, b, order, 2), int32(-7), order.String())
	}
}

func TestSingleRowOrColumnSameSequence(t *testing.T) {
	for _, b := range []*matrix.Buffer{mustBuffer(t, 1, 12, 0), mustBuffer(t, 12, 1, 3)} {
		assert.Equal(t,
			sequence(t, b, traverse.RowMajorOrder, 2),
			sequence(t, b, traverse.ColMajorOrder, 2))
	}
}

func TestKernelsAgree(t *testing.T) {
	b := mustBuffer(t, 9, 11, 1)
	for k := range b.Logical() {
		b.Logical()[k] = int32(k%5 + 1) // non-zero so the product is not trivially 0
	}

	row := traverse.RowMajor(b, 3)
	col := traverse.ColMajor(b, 3)
	require.Equal(t, row, col) // wrapping multiplication is commutative
	require.Equal(t, col, traverse.Sink)

	var want int32 = 1
	require.NoError(t, traverse.Visit(b, traverse.ColMajorOrder, 3, func(_, _ int, v int32) { want *= v }))
	require.Equal(t, want, row)
}

func TestDegenerateNoWork(t *testing.T) {
	for _, b := range []*matrix.Buffer{mustBuffer(t, 0, 5, 0), mustBuffer(t, 5, 0, 2)} {
		require.Equal(t, int32(1), traverse.RowMajor(b, 10))
		require.Equal(t, int32(1), traverse.ColMajor(b, 10))
		require.Empty(t, sequence(t, b, traverse.ColMajorOrder, 10))
	}
	require.Equal(t, int32(1), traverse.RowMajor(mustBuffer(t, 3, 3, 0), 0)) // zero iterations
}

func TestRun(t *testing.T) {
	b := mustBuffer(t, 3, 4, 0)

	v, err := traverse.Run(b, traverse.RowMajorOrder, 1)
	require.NoError(t, err)
	require.Equal(t, int32(0), v) // element (0,0) is 0

	_, err = traverse.Run(b, traverse.Order(42), 1)
	require.ErrorIs(t, err, traverse.ErrUnknownOrder)
	require.ErrorIs(t, traverse.Visit(b, traverse.Order(-1), 1, func(int, int, int32) {}), traverse.ErrUnknownOrder)

	_, err = traverse.Run(nil, traverse.ColMajorOrder, 1)
	require.ErrorIs(t, err, matrix.ErrNilBuffer)
}

func TestStride(t *testing.T) {
	b := mustBuffer(t, 3, 8, 0)
	assert.Equal(t, 1, traverse.Stride(b, traverse.RowMajorOrder))
	assert.Equal(t, 8, traverse.Stride(b, traverse.ColMajorOrder))
	assert.Equal(t, 0, traverse.Stride(b, traverse.Order(9)))
}

func TestOrderString(t *testing.T) {
	assert.Equal(t, "row-major", traverse.RowMajorOrder.String())
	assert.Equal(t, "column-major", traverse.ColMajorOrder.String())
	assert.Equal(t, "unknown", traverse.Order(7).String())
}
