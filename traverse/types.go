package traverse

// Order selects the loop nesting of a traversal.
type Order int

const (
	// RowMajorOrder iterates rows in the outer loop; consecutive accesses are adjacent.
	RowMajorOrder Order = iota

	// ColMajorOrder iterates columns in the outer loop; consecutive accesses are Cols apart.
	ColMajorOrder
)

// String returns a human-readable name for the order.
func (o Order) String() string {
	switch o {
	case RowMajorOrder:
		return "row-major"
	case ColMajorOrder:
		return "column-major"
	default:
		return "unknown"
	}
}
