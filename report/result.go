package report

// Result is one measured test case.
type Result struct {
	Name      string  // test case title
	Rows      int     // matrix rows
	Cols      int     // matrix columns
	RowTimeMS float64 // row-major elapsed, milliseconds, >= 0
	ColTimeMS float64 // column-major elapsed, milliseconds, >= 0
}

// Ratio returns ColTimeMS / RowTimeMS. ok is false when RowTimeMS is not
// positive, in which case the ratio is undefined and reported as NotAvailable.
// A defined ratio is always >= 0.
func (r Result) Ratio() (ratio float64, ok bool) {
	if r.RowTimeMS <= 0 {
		return 0, false
	}

	return r.ColTimeMS / r.RowTimeMS, true
}
