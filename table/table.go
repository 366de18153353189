package table

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
)

var (
	// ErrColumnLength is returned when columns of a table differ in length
	ErrColumnLength = errors.New("column length mismatch")

	// ErrDuplicateColumn is returned when a schema names a column twice
	ErrDuplicateColumn = errors.New("duplicate column name")

	// ErrNoSuchColumn is returned when a column is looked up by a name the
	// table does not have
	ErrNoSuchColumn = errors.New("no such column")

	// ErrMaskLength is returned when a selection mask does not cover every row
	ErrMaskLength = errors.New("mask length mismatch")

	// ErrSampleSize is returned when a sample is larger than the table or negative
	ErrSampleSize = errors.New("invalid sample size")
)

// Table is an in-memory, column-oriented table. A Table is never modified
// after construction; Select, Sample and Concat return new tables.
type Table struct {
	names   []string
	index   map[string]int
	columns [][]Value
	rows    int
}

// New builds a table from column names and column data.
//
// names and columns must have the same length, every column must hold the
// same number of rows, and names must be unique. The column slices are owned
// by the table after the call.
func New(names []string, columns [][]Value) (*Table, error) {
	if len(names) != len(columns) {
		return nil, fmt.Errorf("%w: %d names for %d columns", ErrColumnLength, len(names), len(columns))
	}

	index := make(map[string]int, len(names))
	for i, name := range names {
		if _, exists := index[name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
		}
		index[name] = i
	}

	rows := 0
	for i, col := range columns {
		if i == 0 {
			rows = len(col)
			continue
		}
		if len(col) != rows {
			return nil, fmt.Errorf("%w: column %q has %d rows, expected %d", ErrColumnLength, names[i], len(col), rows)
		}
	}

	return &Table{
		names:   append([]string(nil), names...),
		index:   index,
		columns: columns,
		rows:    rows,
	}, nil
}

// Columns returns the column names in schema order
func (t *Table) Columns() []string {
	return append([]string(nil), t.names...)
}

// HasColumn reports whether the table has a column with the given name
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns the cells of the named column. The returned slice must not
// be modified.
func (t *Table) Column(name string) ([]Value, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchColumn, name)
	}
	return t.columns[i], nil
}

// Len returns the number of rows
func (t *Table) Len() int {
	return t.rows
}

// Row returns a copy of row i in schema order
func (t *Table) Row(i int) []Value {
	row := make([]Value, len(t.columns))
	for c, col := range t.columns {
		row[c] = col[i]
	}
	return row
}

// Select returns a new table holding the rows whose mask entry is true, in
// their original order.
func (t *Table) Select(mask []bool) (*Table, error) {
	if len(mask) != t.rows {
		return nil, fmt.Errorf("%w: mask has %d entries, table has %d rows", ErrMaskLength, len(mask), t.rows)
	}

	kept := make([]int, 0, t.rows)
	for i, keep := range mask {
		if keep {
			kept = append(kept, i)
		}
	}
	return t.take(kept), nil
}

// Sample returns n rows drawn without replacement, in the order they were
// drawn.
func (t *Table) Sample(n int, rng *rand.Rand) (*Table, error) {
	if n < 0 || n > t.rows {
		return nil, fmt.Errorf("%w: cannot take %d rows from %d", ErrSampleSize, n, t.rows)
	}
	return t.take(rng.Perm(t.rows)[:n]), nil
}

// take copies the given row positions into a new table
func (t *Table) take(positions []int) *Table {
	columns := make([][]Value, len(t.columns))
	for c, col := range t.columns {
		out := make([]Value, len(positions))
		for i, pos := range positions {
			out[i] = col[pos]
		}
		columns[c] = out
	}

	return &Table{
		names:   t.names,
		index:   t.index,
		columns: columns,
		rows:    len(positions),
	}
}

// Concat appends the rows of several tables sharing the same schema.
func Concat(tables ...*Table) (*Table, error) {
	if len(tables) == 0 {
		return New(nil, nil)
	}

	first := tables[0]
	total := 0
	for _, t := range tables {
		if !sameSchema(first.names, t.names) {
			return nil, fmt.Errorf("cannot concatenate tables with columns %v and %v", first.names, t.names)
		}
		total += t.rows
	}

	columns := make([][]Value, len(first.names))
	for c := range columns {
		out := make([]Value, 0, total)
		for _, t := range tables {
			out = append(out, t.columns[c]...)
		}
		columns[c] = out
	}
	return New(first.names, columns)
}

func sameSchema(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Count is one entry of a value distribution.
type Count struct {
	Value      Value
	Count      int
	Proportion float64
}

// ValueCounts returns the distribution of non-null values in a column,
// most frequent first. Ties keep the order in which values first appear.
// Proportion is the share of non-null cells holding the value.
func (t *Table) ValueCounts(column string) ([]Count, error) {
	cells, err := t.Column(column)
	if err != nil {
		return nil, err
	}

	positions := make(map[Value]int)
	var counts []Count
	total := 0
	for _, cell := range cells {
		if cell.IsNull() {
			continue
		}
		total++
		if pos, seen := positions[cell]; seen {
			counts[pos].Count++
			continue
		}
		positions[cell] = len(counts)
		counts = append(counts, Count{Value: cell, Count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	for i := range counts {
		counts[i].Proportion = float64(counts[i].Count) / float64(total)
	}
	return counts, nil
}
