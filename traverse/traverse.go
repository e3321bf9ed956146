package traverse

import (
	"fmt"

	"github.com/katalvlaran/stridebench/matrix"
)

// RowMajor folds every logical element of b, iterations times, visiting
// (0,0), (0,1), ... (0,Cols-1), (1,0), ... The result is also published to Sink.
// Zero rows, zero cols or iterations<=0 do no work and return 1.
func RowMajor(b *matrix.Buffer, iterations int) int32 {
	data := b.Data()
	rows, cols, base := b.Rows(), b.Cols(), b.Offset()
	acc := int32(1)
	for it := 0; it < iterations; it++ {
		for i := 0; i < rows; i++ {
			row := base + i*cols
			for j := 0; j < cols; j++ {
				acc *= data[row+j]
			}
		}
	}
	publish(acc)

	return acc
}

// ColMajor folds the same elements as RowMajor in column order:
// (0,0), (1,0), ... (Rows-1,0), (0,1), ... Consecutive loads are Cols elements apart.
func ColMajor(b *matrix.Buffer, iterations int) int32 {
	data := b.Data()
	rows, cols, base := b.Rows(), b.Cols(), b.Offset()
	acc := int32(1)
	for it := 0; it < iterations; it++ {
		for j := 0; j < cols; j++ {
			for i := 0; i < rows; i++ {
				acc *= data[base+i*cols+j]
			}
		}
	}
	publish(acc)

	return acc
}

// Run dispatches to RowMajor or ColMajor.
// Returns an error for a nil buffer or an unknown Order.
func Run(b *matrix.Buffer, order Order, iterations int) (int32, error) {
	if err := matrix.ValidateNotNil(b); err != nil {
		return 0, fmt.Errorf("traverse.Run: %w", err)
	}
	switch order {
	case RowMajorOrder:
		return RowMajor(b, iterations), nil
	case ColMajorOrder:
		return ColMajor(b, iterations), nil
	default:
		return 0, fmt.Errorf("traverse.Run: %w: %d", ErrUnknownOrder, int(order))
	}
}

// Visit calls fn for every element in the exact sequence the given order
// touches them, iterations times. It is the untimed twin of RowMajor/ColMajor
// for checking coverage.
func Visit(b *matrix.Buffer, order Order, iterations int, fn func(i, j int, v int32)) error {
	if err := matrix.ValidateNotNil(b); err != nil {
		return fmt.Errorf("traverse.Visit: %w", err)
	}
	data := b.Data()
	rows, cols, base := b.Rows(), b.Cols(), b.Offset()
	switch order {
	case RowMajorOrder:
		for it := 0; it < iterations; it++ {
			for i := 0; i < rows; i++ {
				for j := 0; j < cols; j++ {
					fn(i, j, data[base+i*cols+j])
				}
			}
		}
	case ColMajorOrder:
		for it := 0; it < iterations; it++ {
			for j := 0; j < cols; j++ {
				for i := 0; i < rows; i++ {
					fn(i, j, data[base+i*cols+j])
				}
			}
		}
	default:
		return fmt.Errorf("traverse.Visit: %w: %d", ErrUnknownOrder, int(order))
	}

	return nil
}

// Stride returns the distance, in elements, between two consecutive
// inner-loop accesses for the given order: 1 for row-major, Cols for
// column-major. Unknown orders report 0.
func Stride(b *matrix.Buffer, order Order) int {
	switch order {
	case RowMajorOrder:
		return 1
	case ColMajorOrder:
		return b.Cols()
	default:
		return 0
	}
}
