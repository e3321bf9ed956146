// Package traverse walks a matrix.Buffer in row-major or column-major order.
//
// Both orders visit every logical element exactly once per iteration and fold
// the values into one int32 accumulator by multiplication. Only the ORDER of the
// accesses differs:
//
//	row-major:    for i { for j { acc *= data[base + i*cols + j] } }   stride 1
//	column-major: for j { for i { acc *= data[base + i*cols + j] } }   stride cols
//
// The accumulator is published through Sink, a non-inlinable store to an
// exported package variable, so the compiler cannot prove the loops dead.
// Its numeric value carries no meaning.
//
// Complexity: O(Rows*Cols*iterations) time, O(1) extra space.
package traverse
