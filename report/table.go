package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/elliotchance/orderedmap"
)

const (
	// ColumnWidth is the inner width of both table columns.
	ColumnWidth = 30

	// NotAvailable is printed in place of an undefined ratio.
	NotAvailable = "N/A"
)

// Metric labels, in table order.
const (
	MetricSize  = "Matrix size"
	MetricRow   = "Row major time"
	MetricCol   = "Column major time"
	MetricRatio = "Ratio (col/row)"
)

var border = "+" + strings.Repeat("-", ColumnWidth) + "+" + strings.Repeat("-", ColumnWidth) + "+\n"

// cell is a rendered value plus its closing: either padded to ColumnWidth-1
// and closed with " |", or padded to ColumnWidth and closed with "|".
type cell struct {
	text string
	wide bool
}

func (c cell) String() string {
	if c.wide {
		return fmt.Sprintf("%-*s|", ColumnWidth, c.text)
	}

	return fmt.Sprintf("%-*s |", ColumnWidth-1, c.text)
}

// metrics builds the ordered label -> cell rows for r.
func metrics(r Result) *orderedmap.OrderedMap {
	m := orderedmap.NewOrderedMap()
	m.Set(MetricSize, cell{text: strconv.Itoa(r.Rows) + " x " + strconv.Itoa(r.Cols)})
	m.Set(MetricRow, cell{text: formatMS(r.RowTimeMS)})
	m.Set(MetricCol, cell{text: formatMS(r.ColTimeMS)})
	m.Set(MetricRatio, cell{text: formatRatio(r), wide: true})

	return m
}

// formatMS truncates to whole milliseconds.
func formatMS(ms float64) string {
	return strconv.FormatInt(int64(ms), 10) + " ms"
}

func formatRatio(r Result) string {
	ratio, ok := r.Ratio()
	if !ok {
		return NotAvailable
	}

	return strconv.FormatFloat(ratio, 'f', 2, 64)
}

// Render returns the title line and table for one result.
func Render(r Result) string {
	var sb strings.Builder
	sb.WriteString("Test: " + r.Name + "\n")
	sb.WriteString(border)
	fmt.Fprintf(&sb, "|%-*s|%-*s|\n", ColumnWidth, "Metric", ColumnWidth, "Value")
	sb.WriteString(border)
	for el := metrics(r).Front(); el != nil; el = el.Next() {
		fmt.Fprintf(&sb, "|%-*s|%s\n", ColumnWidth, el.Key, el.Value)
	}
	sb.WriteString(border)

	return sb.String()
}

// Write renders every result to w in order, separated by a blank line.
func Write(w io.Writer, results ...Result) error {
	for k, r := range results {
		if k > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return fmt.Errorf("report.Write: %w", err)
			}
		}
		if _, err := io.WriteString(w, Render(r)); err != nil {
			return fmt.Errorf("report.Write: %w", err)
		}
	}

	return nil
}
