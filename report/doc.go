// Package report renders benchmark results as a fixed-width ASCII table.
//
// Layout per result (both columns are 30 characters wide):
//
//	Test: <name>
//	+------------------------------+------------------------------+
//	|Metric                        |Value                         |
//	+------------------------------+------------------------------+
//	|Matrix size                   |<rows> x <cols>               |
//	|Row major time                |<row_ms> ms                   |
//	|Column major time             |<col_ms> ms                   |
//	|Ratio (col/row)               |<ratio>                       |
//	+------------------------------+------------------------------+
//
// Size and time cells are padded to 29 and closed with " |"; the ratio cell is
// padded to 30 and closed with "|". Times are whole milliseconds (truncated).
// The ratio uses the real-valued times with two decimals and reads "N/A" when
// the row-major time is zero.
package report
