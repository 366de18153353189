// Package output writes tables and value-count reports.
//
// This package defines the Formatter interface and provides implementations
// for CSV and JSON Lines, plus a CountReporter that prints per-column value
// distributions as markdown tables.
//
// # Supported Formats
//
//   - CSV: comma-separated values with a header row and no index column
//   - JSON Lines: one JSON object per row, keys in column order
//
// # Basic Usage
//
// Writing a table as CSV:
//
//	formatter := output.NewCSVFormatter(os.Stdout)
//	if err := formatter.Format(t); err != nil {
//	    log.Fatal(err)
//	}
//
// # Writing to Different Destinations
//
// Change output destination dynamically:
//
//	formatter := output.NewJSONFormatter(os.Stdout)
//
//	file, err := os.Create("output.jsonl")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer file.Close()
//
//	formatter.SetOutput(file)
//	if err := formatter.Format(t); err != nil {
//	    log.Fatal(err)
//	}
//
// # Value Counts
//
// Printing the distribution of a column before and after filtering:
//
//	reporter := output.NewCountReporter(os.Stdout, false)
//	err := reporter.ReportColumns(original, filtered, []string{"ID"}, true)
//
// which prints sections such as:
//
//	Original Counts: ID
//
//	| ID  | count |
//	|-----|-------|
//	| 123 |     2 |
//	| 342 |     1 |
//
// # Type Handling
//
//   - Int cells are written in decimal, Float cells in their shortest form
//     with a trailing ".0" when integral
//   - Missing values are written as an empty CSV cell or JSON null
//   - With CSVFormatter.Sanitize set, text starting with a formula character
//     is prefixed with a single quote
package output
