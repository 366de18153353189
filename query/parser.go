package query

import (
	"strings"
)

// operatorPrecedence lists operator symbols in the order they are looked
// for in a spec. The first one present anywhere in the spec wins.
var operatorPrecedence = []byte{symbolNot, symbolGreater, symbolLess}

// ParseFilters parses command-line filter tokens against the given column
// names.
//
// It returns one Condition per token and the column referenced by each
// token, both in token order (a column filtered twice appears twice).
// Parsing stops at the first invalid token; no conditions are returned in
// that case.
func ParseFilters(tokens []string, columns []string) ([]Condition, []string, error) {
	if err := ValidateFilters(tokens); err != nil {
		return nil, nil, err
	}

	valid := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		valid[col] = struct{}{}
	}

	conditions := make([]Condition, 0, len(tokens))
	inUse := make([]string, 0, len(tokens))
	for _, token := range tokens {
		cond, err := parseFilter(token, valid, columns)
		if err != nil {
			return nil, nil, err
		}
		conditions = append(conditions, cond)
		inUse = append(inUse, cond.Column)
	}

	return conditions, inUse, nil
}

// ParseFilter parses a single "column:spec" token
func ParseFilter(token string, columns []string) (Condition, error) {
	valid := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		valid[col] = struct{}{}
	}
	return parseFilter(token, valid, columns)
}

func parseFilter(token string, valid map[string]struct{}, columns []string) (Condition, error) {
	if err := ValidateFilter(token); err != nil {
		return Condition{}, err
	}

	// Only the first colon separates the column, values may contain more
	column, spec, found := strings.Cut(token, ":")
	if !found {
		return Condition{}, malformedFilter(token)
	}

	if _, ok := valid[column]; !ok {
		return Condition{}, unknownColumn(column, columns)
	}

	op, value := resolveOperator(spec)
	return BuildCondition(column, op, value)
}

// resolveOperator finds the operator symbol of a spec and the value that
// follows it. Text before the symbol is discarded. A spec without any
// symbol is returned whole with symbolNone.
func resolveOperator(spec string) (byte, string) {
	for _, symbol := range operatorPrecedence {
		if i := strings.IndexByte(spec, symbol); i >= 0 {
			return symbol, spec[i+1:]
		}
	}
	return symbolNone, spec
}
