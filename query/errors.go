package query

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedFilter is returned when a filter token is not of the form
	// "column:spec" or its value cannot be typed
	ErrMalformedFilter = errors.New("malformed filter")

	// ErrUnknownColumn is returned when a filter names a column the table
	// does not have
	ErrUnknownColumn = errors.New("unknown column")

	// ErrUnsupportedComparison is returned when > or < is given a value that
	// is not a number
	ErrUnsupportedComparison = errors.New("unsupported comparison")
)

func malformedFilter(token string) error {
	return fmt.Errorf("%w: %q is not a valid column filter\n%s", ErrMalformedFilter, token, FilterTypes)
}

func unknownColumn(column string, columns []string) error {
	return fmt.Errorf("%w: %q\nUse one of: %s", ErrUnknownColumn, column, strings.Join(columns, ", "))
}
