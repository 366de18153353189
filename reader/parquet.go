package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/feel/table"
)

// ParquetReader reads parquet files into tables.
//
// It maintains both an OS file handle and a parquet file handle to enable
// proper resource cleanup.
type ParquetReader struct {
	file   *os.File
	pqFile *parquet.File
}

// NewParquetReader opens a parquet file for reading.
//
// The file is opened and validated as a parquet file. Returns an error if
// the file doesn't exist or is not a valid parquet file.
func NewParquetReader(path string) (*ParquetReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	return &ParquetReader{
		file:   file,
		pqFile: pqFile,
	}, nil
}

// ReadTable reads every row of the file into memory.
//
// Columns follow the order of the top-level schema fields. Integer leaves
// become Int columns, floating-point leaves Float columns, and everything
// else (strings, booleans, timestamps, nested groups) String columns.
func (r *ParquetReader) ReadTable() (*table.Table, error) {
	fields := r.pqFile.Schema().Fields()
	names := make([]string, len(fields))
	kinds := make([]table.Kind, len(fields))
	for i, field := range fields {
		names[i] = field.Name()
		kinds[i] = fieldKind(field)
	}

	reader := parquet.NewReader(r.pqFile)
	defer func() { _ = reader.Close() }()

	columns := make([][]table.Value, len(fields))
	for {
		row := make(map[string]interface{})
		err := reader.Read(&row)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		for i, name := range names {
			columns[i] = append(columns[i], toValue(row[name], kinds[i]))
		}
	}

	return table.New(names, columns)
}

// Close closes the underlying file. It is safe to call Close multiple times.
func (r *ParquetReader) Close() error {
	if r.file != nil {
		err := r.file.Close()
		r.file = nil
		return err
	}
	return nil
}

// ReadParquetFile reads a whole parquet file into a table
func ReadParquetFile(path string) (*table.Table, error) {
	r, err := NewParquetReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	return r.ReadTable()
}

// fieldKind maps a parquet field to the kind of its table column
func fieldKind(field parquet.Field) table.Kind {
	if field.Type() == nil || len(field.Fields()) > 0 || field.Repeated() {
		return table.KindString
	}

	switch field.Type().Kind() {
	case parquet.Int32, parquet.Int64:
		return table.KindInt
	case parquet.Float, parquet.Double:
		return table.KindFloat
	default:
		return table.KindString
	}
}

// toValue converts a decoded parquet value to a cell of the given kind
func toValue(v interface{}, kind table.Kind) table.Value {
	if v == nil {
		return table.Null()
	}

	switch val := v.(type) {
	case int:
		return numeric(int64(val), kind)
	case int8:
		return numeric(int64(val), kind)
	case int16:
		return numeric(int64(val), kind)
	case int32:
		return numeric(int64(val), kind)
	case int64:
		return numeric(val, kind)
	case uint8:
		return numeric(int64(val), kind)
	case uint16:
		return numeric(int64(val), kind)
	case uint32:
		return numeric(int64(val), kind)
	case float32:
		return table.FloatValue(float64(val))
	case float64:
		return table.FloatValue(val)
	case string:
		return table.StringValue(val)
	case []byte:
		return table.StringValue(string(val))
	case bool:
		return table.StringValue(strconv.FormatBool(val))
	case time.Time:
		return table.StringValue(val.Format(time.RFC3339Nano))
	default:
		return table.StringValue(fmt.Sprintf("%v", val))
	}
}

func numeric(n int64, kind table.Kind) table.Value {
	if kind == table.KindFloat {
		return table.FloatValue(float64(n))
	}
	return table.IntValue(n)
}
