package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/feel/table"
)

// Section labels used by ReportColumns
const (
	LabelOriginal = "Original"
	LabelFiltered = "Filtered"
)

// CountReporter prints the value distribution of table columns as markdown
// tables
type CountReporter struct {
	writer    io.Writer
	normalize bool
}

// NewCountReporter creates a reporter writing to w. With normalize set the
// reporter prints proportions instead of counts.
func NewCountReporter(w io.Writer, normalize bool) *CountReporter {
	return &CountReporter{writer: w, normalize: normalize}
}

// SetOutput sets the output writer
func (r *CountReporter) SetOutput(w io.Writer) {
	r.writer = w
}

// Report prints one labelled section:
//
//	<label> Counts: <column>
//
//	| column | count |
//	|--------|-------|
//	| value  |     n |
func (r *CountReporter) Report(label string, t *table.Table, column string) error {
	counts, err := t.ValueCounts(column)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(r.writer, "\n%s Counts: %s\n\n", label, column); err != nil {
		return err
	}

	measure := "count"
	if r.normalize {
		measure = "proportion"
	}

	tw := tablewriter.NewWriter(r.writer)
	tw.SetAutoFormatHeaders(false)
	tw.SetHeader([]string{column, measure})
	tw.SetAutoWrapText(false)
	tw.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	tw.SetCenterSeparator("|")

	for _, c := range counts {
		tw.Append([]string{c.Value.String(), r.formatMeasure(c)})
	}
	tw.Render()

	return nil
}

// ReportColumns prints a filtered-counts section for every column, each
// preceded by the original-counts section when withOriginal is set.
func (r *CountReporter) ReportColumns(original, filtered *table.Table, columns []string, withOriginal bool) error {
	for _, column := range columns {
		if withOriginal {
			if err := r.Report(LabelOriginal, original, column); err != nil {
				return err
			}
		}
		if err := r.Report(LabelFiltered, filtered, column); err != nil {
			return err
		}
	}
	return nil
}

func (r *CountReporter) formatMeasure(c table.Count) string {
	if r.normalize {
		return strconv.FormatFloat(c.Proportion, 'g', 6, 64)
	}
	return strconv.Itoa(c.Count)
}
