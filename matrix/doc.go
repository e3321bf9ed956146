// Package matrix provides the flat integer buffer that the stride benchmark walks.
//
// What & Why:
//
//	A Buffer stores a rows×cols grid of int32 values in ONE contiguous slice and
//	addresses element (i, j) manually as Offset + i*Cols + j. There is no slice of
//	slices anywhere: the benchmark exists to expose the cost of non-unit stride over
//	a single memory region, and per-row allocations would hide exactly that.
//
// Layout:
//
//	index:  0 .. Offset-1 | Offset .. Offset+Rows*Cols-1
//	        padding       | row 0 | row 1 | ... | row Rows-1
//
//	The slice itself starts on a cache-line boundary (line size detected through
//	golang.org/x/sys/cpu), so Offset=0 is naturally aligned and Offset=k moves the
//	first logical element k*4 bytes into a line.
//
// Determinism:
//
//	Element (i, j) always holds int32(i*Cols + j); padding is zero. Two buffers built
//	from the same Spec are element-wise identical.
//
// Complexity:
//
//	NewBuffer is O(Offset + Rows*Cols) time and memory. At, Misalignment are O(1).
package matrix
