package output

import (
	"bufio"
	"encoding/json"
	"io"
	"math"

	"github.com/vegasq/feel/table"
)

// JSONFormatter outputs a table as JSON Lines, one object per row with keys
// in column order
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes the table as JSON Lines (one JSON object per line)
func (j *JSONFormatter) Format(t *table.Table) error {
	buf := bufio.NewWriter(j.writer)

	keys := make([][]byte, 0, len(t.Columns()))
	for _, name := range t.Columns() {
		key, err := json.Marshal(name)
		if err != nil {
			return err
		}
		keys = append(keys, key)
	}

	for i := 0; i < t.Len(); i++ {
		_ = buf.WriteByte('{')
		for c, cell := range t.Row(i) {
			if c > 0 {
				_ = buf.WriteByte(',')
			}
			_, _ = buf.Write(keys[c])
			_ = buf.WriteByte(':')

			value, err := json.Marshal(jsonValue(cell))
			if err != nil {
				return err
			}
			_, _ = buf.Write(value)
		}
		_, _ = buf.WriteString("}\n")
	}

	return buf.Flush()
}

// jsonValue maps a cell to a value encoding/json accepts. NaN and the
// infinities have no JSON form and become null.
func jsonValue(v table.Value) interface{} {
	switch v.Kind {
	case table.KindInt:
		return v.Int
	case table.KindFloat:
		if math.IsNaN(v.Float) || math.IsInf(v.Float, 0) {
			return nil
		}
		return v.Float
	case table.KindString:
		return v.Str
	default:
		return nil
	}
}
