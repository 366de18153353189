package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vegasq/feel/table"
)

// ErrEmptyInput is returned when a CSV file has no header row
var ErrEmptyInput = errors.New("no columns to parse from file")

// naValues are cell texts read as missing values
var naValues = map[string]struct{}{
	"":     {},
	"NA":   {},
	"N/A":  {},
	"NaN":  {},
	"nan":  {},
	"NULL": {},
	"null": {},
	"None": {},
}

const utf8BOM = "\ufeff"

// ReadCSVFile reads a CSV file with a header row into a table
func ReadCSVFile(path string) (*table.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return ReadCSV(file)
}

// ReadCSV reads comma-separated values with a header row into a table.
//
// Each column is typed as a whole: Int if every non-missing cell is an
// integer, Float if every non-missing cell is a number, String otherwise.
// Cells listed in naValues become Null. Duplicate header names get a ".N"
// suffix and blank ones are named "Unnamed: <index>".
func ReadCSV(r io.Reader) (*table.Table, error) {
	csvReader := csv.NewReader(r)

	header, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyInput
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)
	names := uniqueNames(header)

	raw := make([][]string, len(names))
	for {
		record, err := csvReader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		for i, cell := range record {
			raw[i] = append(raw[i], cell)
		}
	}

	columns := make([][]table.Value, len(names))
	for i, cells := range raw {
		columns[i] = typeColumn(cells)
	}

	return table.New(names, columns)
}

// uniqueNames fills in blank header names and suffixes repeated ones
func uniqueNames(header []string) []string {
	names := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, name := range header {
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		candidate := name
		for {
			n, exists := seen[candidate]
			if !exists {
				break
			}
			seen[candidate] = n + 1
			candidate = fmt.Sprintf("%s.%d", name, n+1)
		}
		seen[candidate] = 0
		names[i] = candidate
	}
	return names
}

// typeColumn converts raw cells to values of the narrowest kind that fits
// every cell
func typeColumn(cells []string) []table.Value {
	kind := inferKind(cells)
	values := make([]table.Value, len(cells))

	for i, cell := range cells {
		if isNA(cell) {
			values[i] = table.Null()
			continue
		}
		switch kind {
		case table.KindInt:
			n, _ := strconv.ParseInt(strings.TrimSpace(cell), 10, 64)
			values[i] = table.IntValue(n)
		case table.KindFloat:
			f, _ := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			values[i] = table.FloatValue(f)
		default:
			values[i] = table.StringValue(cell)
		}
	}
	return values
}

func inferKind(cells []string) table.Kind {
	isInt, isFloat := true, true
	present := false

	for _, cell := range cells {
		if isNA(cell) {
			continue
		}
		present = true
		trimmed := strings.TrimSpace(cell)
		if isInt {
			if _, err := strconv.ParseInt(trimmed, 10, 64); err != nil {
				isInt = false
			}
		}
		if _, err := strconv.ParseFloat(trimmed, 64); err != nil {
			isFloat = false
			break
		}
	}

	switch {
	case !present:
		// an all-missing column is read as floats of NaN
		return table.KindFloat
	case isInt && isFloat:
		return table.KindInt
	case isFloat:
		return table.KindFloat
	default:
		return table.KindString
	}
}

func isNA(cell string) bool {
	_, ok := naValues[cell]
	return ok
}
