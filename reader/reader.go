package reader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vegasq/feel/table"
)

// maxFiles bounds the number of files a glob pattern may expand to
const maxFiles = 1000

// Load reads the file at path into a table, choosing the format from the
// file extension: ".parquet" files are read as parquet, anything else as
// CSV.
//
// path may be a glob pattern:
//   - * matches any sequence of non-separator characters
//   - ? matches any single non-separator character
//   - [range] matches any character in range
//
// All matched files must share the same columns; their rows are appended in
// the order the files match.
func Load(path string) (*table.Table, error) {
	if !strings.ContainsAny(path, "*?[") {
		return loadFile(path)
	}

	matches, err := filepath.Glob(path)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern: %w", err)
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match pattern: %s", path)
	}

	if len(matches) > maxFiles {
		return nil, fmt.Errorf("glob pattern matched too many files (%d), maximum is %d", len(matches), maxFiles)
	}

	tables := make([]*table.Table, 0, len(matches))
	for _, match := range matches {
		t, err := loadFile(match)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", match, err)
		}
		tables = append(tables, t)
	}

	return table.Concat(tables...)
}

func loadFile(path string) (*table.Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		return ReadParquetFile(path)
	}
	return ReadCSVFile(path)
}
