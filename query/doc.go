// Package query parses feel's filter mini-language and applies it to tables.
//
// # Filter Syntax
//
// A filter token has the form "column:spec". Only the first colon separates
// the column from the spec. The spec carries an optional operator symbol and
// a value:
//
//	ID:123        ID equals 123
//	ID:~123       ID does not equal 123
//	ID:>123       ID is greater than 123
//	ID:<123       ID is less than 123
//	ID:123|124    ID is one of 123, 124
//	ID:~123|124   ID is none of 123, 124
//
// Operator symbols are looked for in the order "~", ">", "<"; the first one
// present anywhere in the spec is used and the value is whatever follows it.
//
// # Type Inference
//
// A value that parses as a float is compared as a number, otherwise one
// with an integral value as an integer, otherwise as a string. For lists,
// the first element decides the type of all elements. The ordering
// operators only accept numbers.
//
// # Basic Usage
//
//	conditions, inUse, err := query.ParseFilters(
//	    []string{"ID:>100", "Name:alice|bob"},
//	    t.Columns(),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	filtered, mask, err := query.ApplyFilters(t, conditions)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Every condition produces a Mask over the table rows and the masks are
// combined with AND; a row survives only if every condition holds.
//
// # Errors
//
// Parsing fails fast with one of the sentinel errors, to be matched with
// errors.Is:
//   - ErrMalformedFilter: no colon, or a list mixing numbers and text
//   - ErrUnknownColumn: the column is not in the table
//   - ErrUnsupportedComparison: ">" or "<" with a non-numeric value
//   - ErrFilterTooLong, ErrTooManyFilters, ErrTooManyValues: input limits
package query
