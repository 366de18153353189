package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vegasq/feel/table"
)

func countsTable(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.New(
		[]string{"ID"},
		[][]table.Value{{table.IntValue(123), table.IntValue(342), table.IntValue(123), table.IntValue(7)}},
	)
	if err != nil {
		t.Fatalf("table.New() error = %v", err)
	}
	return tbl
}

func TestCountReporter_Report(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewCountReporter(&buf, false)

	if err := reporter.Report(LabelFiltered, countsTable(t), "ID"); err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "\nFiltered Counts: ID\n\n") {
		t.Errorf("Report() missing section title, got %q", out)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// title, blank, header, separator, 3 values
	if len(lines) != 7 {
		t.Fatalf("Report() produced %d lines, want 7:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[2], "count") {
		t.Errorf("header should name the count column, got %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], "|-") {
		t.Errorf("expected markdown separator, got %q", lines[3])
	}
	// most frequent value first
	if !strings.Contains(lines[4], "123") || !strings.Contains(lines[4], "2") {
		t.Errorf("first row should be 123 with count 2, got %q", lines[4])
	}
}

func TestCountReporter_Normalize(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewCountReporter(&buf, true)

	if err := reporter.Report(LabelOriginal, countsTable(t), "ID"); err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Original Counts: ID") {
		t.Errorf("missing section title in %q", out)
	}
	if !strings.Contains(out, "proportion") {
		t.Errorf("header should name the proportion column in %q", out)
	}
	if !strings.Contains(out, "0.5") || !strings.Contains(out, "0.25") {
		t.Errorf("expected proportions 0.5 and 0.25 in %q", out)
	}
}

func TestCountReporter_ReportColumns(t *testing.T) {
	original := countsTable(t)
	filtered, err := original.Select([]bool{true, false, true, false})
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	var buf bytes.Buffer
	reporter := NewCountReporter(&buf, false)
	if err := reporter.ReportColumns(original, filtered, []string{"ID", "ID"}, true); err != nil {
		t.Fatalf("ReportColumns() error = %v", err)
	}

	out := buf.String()
	if got := strings.Count(out, "Original Counts: ID"); got != 2 {
		t.Errorf("expected 2 original sections, got %d", got)
	}
	if got := strings.Count(out, "Filtered Counts: ID"); got != 2 {
		t.Errorf("expected 2 filtered sections, got %d", got)
	}
	if strings.Index(out, "Original Counts") > strings.Index(out, "Filtered Counts") {
		t.Error("original counts should precede filtered counts")
	}

	buf.Reset()
	if err := reporter.ReportColumns(original, filtered, []string{"ID"}, false); err != nil {
		t.Fatalf("ReportColumns() error = %v", err)
	}
	if strings.Contains(buf.String(), "Original Counts") {
		t.Error("original counts should only be printed on request")
	}
}

func TestCountReporter_UnknownColumn(t *testing.T) {
	var buf bytes.Buffer
	if err := NewCountReporter(&buf, false).Report(LabelFiltered, countsTable(t), "missing"); err == nil {
		t.Error("Report() should fail for an unknown column")
	}
}
