package output

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/vegasq/feel/table"
)

func newTestTable(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.New(
		[]string{"ID", "Name", "Score"},
		[][]table.Value{
			{table.IntValue(123), table.IntValue(342)},
			{table.StringValue("Feel"), table.StringValue("=SUM(A1)")},
			{table.FloatValue(3), table.Null()},
		},
	)
	if err != nil {
		t.Fatalf("table.New() error = %v", err)
	}
	return tbl
}

func TestCSVFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewCSVFormatter(&buf)

	if err := formatter.Format(newTestTable(t)); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "ID,Name,Score\n123,Feel,3.0\n342,=SUM(A1),\n"
	if buf.String() != want {
		t.Errorf("Format() = %q, want %q", buf.String(), want)
	}
}

func TestCSVFormatter_EmptyTable(t *testing.T) {
	tbl, err := newTestTable(t).Select([]bool{false, false})
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	var buf bytes.Buffer
	if err := NewCSVFormatter(&buf).Format(tbl); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	// The header is kept even without rows
	if buf.String() != "ID,Name,Score\n" {
		t.Errorf("Format() = %q, want header only", buf.String())
	}
}

func TestCSVFormatter_Sanitize(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewCSVFormatter(&buf)
	formatter.Sanitize = true

	if err := formatter.Format(newTestTable(t)); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("Format() produced invalid CSV: %v", err)
	}
	if records[2][1] != "'=SUM(A1)" {
		t.Errorf("formula cell should be prefixed, got %q", records[2][1])
	}
	if records[1][1] != "Feel" {
		t.Errorf("plain cell should be unchanged, got %q", records[1][1])
	}
}

func TestCSVFormatter_SpecialCharacters(t *testing.T) {
	tbl, err := table.New(
		[]string{"name", "quote"},
		[][]table.Value{
			{table.StringValue("Alice, Bob")},
			{table.StringValue(`He said "hello"`)},
		},
	)
	if err != nil {
		t.Fatalf("table.New() error = %v", err)
	}

	var buf bytes.Buffer
	if err := NewCSVFormatter(&buf).Format(tbl); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	// CSV library should handle escaping automatically
	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV with special characters: %v", err)
	}
	if records[1][0] != "Alice, Bob" {
		t.Errorf("comma in value not handled correctly")
	}
	if records[1][1] != `He said "hello"` {
		t.Errorf("quotes in value not handled correctly")
	}
}

func TestCSVFormatter_SetOutput(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	formatter := NewCSVFormatter(&buf1)
	tbl := newTestTable(t)

	if err := formatter.Format(tbl); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if buf1.Len() == 0 {
		t.Error("First buffer should have content")
	}

	formatter.SetOutput(&buf2)
	if err := formatter.Format(tbl); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if buf2.String() != buf1.String() {
		t.Error("Second buffer should match the first")
	}
}
