package cli

import (
	"errors"

	"github.com/vegasq/feel/query"
	"github.com/vegasq/feel/table"
)

var (
	// ErrPath is returned when the input or output path is empty
	ErrPath = errors.New("valid path to input/output CSV is required")

	// ErrNoFilters is returned when no --filter is given
	ErrNoFilters = errors.New("at least one --filter is required")

	// ErrFormat is returned for an unknown --format value
	ErrFormat = errors.New("unsupported output format")
)

// ErrorKind classifies the errors the command can fail with
type ErrorKind int

const (
	KindOther ErrorKind = iota
	KindPath
	KindUsage
	KindMalformedFilter
	KindUnknownColumn
	KindUnsupportedComparison
	KindInputLimit
	KindSampleSize
)

// String returns the kind name used in logs
func (k ErrorKind) String() string {
	switch k {
	case KindPath:
		return "path"
	case KindUsage:
		return "usage"
	case KindMalformedFilter:
		return "malformed_filter"
	case KindUnknownColumn:
		return "unknown_column"
	case KindUnsupportedComparison:
		return "unsupported_comparison"
	case KindInputLimit:
		return "input_limit"
	case KindSampleSize:
		return "sample_size"
	default:
		return "other"
	}
}

// KindOf returns the kind of err, or KindOther for errors outside the
// taxonomy (I/O failures, unreadable input)
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindOther
	case errors.Is(err, ErrPath):
		return KindPath
	case errors.Is(err, ErrNoFilters), errors.Is(err, ErrFormat):
		return KindUsage
	case errors.Is(err, query.ErrMalformedFilter):
		return KindMalformedFilter
	case errors.Is(err, query.ErrUnknownColumn):
		return KindUnknownColumn
	case errors.Is(err, query.ErrUnsupportedComparison):
		return KindUnsupportedComparison
	case errors.Is(err, query.ErrFilterTooLong),
		errors.Is(err, query.ErrTooManyFilters),
		errors.Is(err, query.ErrTooManyValues):
		return KindInputLimit
	case errors.Is(err, table.ErrSampleSize):
		return KindSampleSize
	default:
		return KindOther
	}
}

// ExitCode maps an error to the process exit status: 0 for success, 2 for
// user input errors and 1 for everything else
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if KindOf(err) == KindOther {
		return 1
	}
	return 2
}
