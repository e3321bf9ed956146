package traverse_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/stridebench/traverse"
)

// benchSizes are square matrix sizes; 2048 exceeds typical L2 so the
// column-major gap is visible.
var benchSizes = []int{256, 1024, 2048}

func BenchmarkRowMajor(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			buf := mustBuffer(b, n, n, 0)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				traverse.RowMajor(buf, 1)
			}
		})
	}
}

func BenchmarkColMajor(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			buf := mustBuffer(b, n, n, 0)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				traverse.ColMajor(buf, 1)
			}
		})
	}
}

func BenchmarkColMajorMisaligned(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			buf := mustBuffer(b, n, n, 1)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				traverse.ColMajor(buf, 1)
			}
		})
	}
}
