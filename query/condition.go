package query

import (
	"fmt"
	"strings"

	"github.com/vegasq/feel/table"
)

// BuildCondition turns a column, an operator symbol and a raw value into a
// typed Condition.
//
// A raw value containing "|" becomes a list: the first element decides the
// type of every element (float, then int, then string) and the operator is
// OpNotIn for "~" and OpIn otherwise. A scalar value is typed the same way
// and mapped to OpNotEquals, OpGreaterThan, OpLessThan or OpEquals.
//
// op is one of '~', '>', '<', or 0 when the spec had no operator.
func BuildCondition(column string, op byte, raw string) (Condition, error) {
	if strings.Contains(raw, listSeparator) {
		return buildListCondition(column, op, raw)
	}

	value := coerceScalar(raw)
	cond := Condition{Column: column, Value: value}

	switch op {
	case symbolNot:
		cond.Operator = OpNotEquals
	case symbolGreater:
		cond.Operator = OpGreaterThan
	case symbolLess:
		cond.Operator = OpLessThan
	default:
		cond.Operator = OpEquals
	}

	if (cond.Operator == OpGreaterThan || cond.Operator == OpLessThan) && !value.IsNumeric() {
		return Condition{}, fmt.Errorf("%w: %s%s%q requires a number", ErrUnsupportedComparison, column, cond.Operator, raw)
	}

	return cond, nil
}

func buildListCondition(column string, op byte, raw string) (Condition, error) {
	elements := strings.Split(raw, listSeparator)
	if err := validateListSize(elements); err != nil {
		return Condition{}, err
	}
	values := make([]table.Value, len(elements))

	switch first := elements[0]; {
	case CanFloat(first):
		for i, el := range elements {
			f, ok := parseFloat(el)
			if !ok {
				return Condition{}, fmt.Errorf("%w: list %q mixes numbers with %q", ErrMalformedFilter, raw, el)
			}
			values[i] = table.FloatValue(f)
		}
	case CanInt(first):
		for i, el := range elements {
			n, ok := parseInt(el)
			if !ok {
				return Condition{}, fmt.Errorf("%w: list %q mixes integers with %q", ErrMalformedFilter, raw, el)
			}
			values[i] = table.IntValue(n)
		}
	default:
		for i, el := range elements {
			values[i] = table.StringValue(el)
		}
	}

	operator := OpIn
	if op == symbolNot {
		operator = OpNotIn
	}

	return Condition{Column: column, Operator: operator, Values: values}, nil
}

// coerceScalar types a single raw value: float first, then int, then string
func coerceScalar(raw string) table.Value {
	if f, ok := parseFloat(raw); ok {
		return table.FloatValue(f)
	}
	if n, ok := parseInt(raw); ok {
		return table.IntValue(n)
	}
	return table.StringValue(raw)
}
