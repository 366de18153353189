package output

import (
	"bytes"
	"math"
	"testing"

	"github.com/vegasq/feel/table"
)

func TestJSONFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewJSONFormatter(&buf)

	if err := formatter.Format(newTestTable(t)); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := `{"ID":123,"Name":"Feel","Score":3}` + "\n" +
		`{"ID":342,"Name":"=SUM(A1)","Score":null}` + "\n"
	if buf.String() != want {
		t.Errorf("Format() = %q, want %q", buf.String(), want)
	}
}

func TestJSONFormatter_NonFinite(t *testing.T) {
	tbl, err := table.New([]string{"x"}, [][]table.Value{{table.FloatValue(math.NaN()), table.FloatValue(math.Inf(1))}})
	if err != nil {
		t.Fatalf("table.New() error = %v", err)
	}

	var buf bytes.Buffer
	if err := NewJSONFormatter(&buf).Format(tbl); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "{\"x\":null}\n{\"x\":null}\n"
	if buf.String() != want {
		t.Errorf("Format() = %q, want %q", buf.String(), want)
	}
}

func TestJSONFormatter_Empty(t *testing.T) {
	tbl, err := table.New([]string{"x"}, [][]table.Value{{}})
	if err != nil {
		t.Fatalf("table.New() error = %v", err)
	}

	var buf bytes.Buffer
	if err := NewJSONFormatter(&buf).Format(tbl); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Format() output should be empty, got %q", buf.String())
	}
}
