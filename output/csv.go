package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/vegasq/feel/table"
)

// CSVFormatter outputs a table as CSV with a header row and no index column
type CSVFormatter struct {
	writer io.Writer

	// Sanitize prefixes text cells that a spreadsheet would evaluate as a
	// formula with a single quote
	Sanitize bool
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the table as CSV. The header is written even when the table
// has no rows.
func (c *CSVFormatter) Format(t *table.Table) error {
	csvWriter := csv.NewWriter(c.writer)

	if err := csvWriter.Write(t.Columns()); err != nil {
		return err
	}

	record := make([]string, len(t.Columns()))
	for i := 0; i < t.Len(); i++ {
		for col, cell := range t.Row(i) {
			record[col] = c.formatValue(cell)
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	// Flush and check for errors
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return nil
}

// formatValue converts a cell to its CSV text
func (c *CSVFormatter) formatValue(v table.Value) string {
	text := v.String()
	if !c.Sanitize || v.Kind != table.KindString || text == "" {
		return text
	}

	// Guard against CSV injection by prefixing characters that could
	// trigger formula execution in spreadsheet applications
	switch text[0] {
	case '=', '+', '-', '@', '\t', '\r', '\n', '|':
		return "'" + strings.ReplaceAll(text, "'", "''")
	}
	return text
}
