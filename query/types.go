package query

import (
	"fmt"
	"strings"

	"github.com/vegasq/feel/table"
)

// Operator is the comparison a Condition applies to each cell
type Operator int

const (
	OpEquals Operator = iota
	OpNotEquals
	OpGreaterThan
	OpLessThan
	OpIn
	OpNotIn
)

// String returns the operator name
func (o Operator) String() string {
	switch o {
	case OpEquals:
		return "=="
	case OpNotEquals:
		return "!="
	case OpGreaterThan:
		return ">"
	case OpLessThan:
		return "<"
	case OpIn:
		return "in"
	case OpNotIn:
		return "not in"
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

// IsList reports whether the operator takes a list of values
func (o Operator) IsList() bool {
	return o == OpIn || o == OpNotIn
}

// Operator symbols recognised in a filter spec, highest precedence first
const (
	symbolNot     byte = '~'
	symbolGreater byte = '>'
	symbolLess    byte = '<'

	// symbolNone marks a spec without an operator symbol
	symbolNone byte = 0
)

// listSeparator splits a list value into its elements
const listSeparator = "|"

// Condition is a typed predicate on a single column.
//
// Scalar operators use Value; OpIn and OpNotIn use Values.
type Condition struct {
	Column   string
	Operator Operator
	Value    table.Value
	Values   []table.Value
}

// String renders the condition for logs, e.g. `ID > 123` or `ID in [1, 2]`
func (c Condition) String() string {
	if c.Operator.IsList() {
		parts := make([]string, len(c.Values))
		for i, v := range c.Values {
			parts[i] = formatOperand(v)
		}
		return fmt.Sprintf("%s %s [%s]", c.Column, c.Operator, strings.Join(parts, ", "))
	}
	return fmt.Sprintf("%s %s %s", c.Column, c.Operator, formatOperand(c.Value))
}

func formatOperand(v table.Value) string {
	if v.Kind == table.KindString {
		return fmt.Sprintf("%q", v.Str)
	}
	return v.String()
}
