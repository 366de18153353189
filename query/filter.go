package query

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vegasq/feel/table"
)

// Mask holds one entry per table row; true keeps the row
type Mask []bool

// Matches evaluates the condition against a single cell
func (c Condition) Matches(cell table.Value) bool {
	switch c.Operator {
	case OpEquals:
		return cell.Equal(c.Value)
	case OpNotEquals:
		return !cell.Equal(c.Value)
	case OpGreaterThan:
		cmp, ok := cell.Compare(c.Value)
		return ok && cmp > 0
	case OpLessThan:
		cmp, ok := cell.Compare(c.Value)
		return ok && cmp < 0
	case OpIn:
		return containsValue(c.Values, cell)
	case OpNotIn:
		return !containsValue(c.Values, cell)
	default:
		return false
	}
}

func containsValue(values []table.Value, cell table.Value) bool {
	for _, v := range values {
		if cell.Equal(v) {
			return true
		}
	}
	return false
}

// Mask evaluates the condition against every row of t
func (c Condition) Mask(t *table.Table) (Mask, error) {
	cells, err := t.Column(c.Column)
	if err != nil {
		return nil, unknownColumn(c.Column, t.Columns())
	}

	mask := make(Mask, len(cells))
	for i, cell := range cells {
		mask[i] = c.Matches(cell)
	}
	return mask, nil
}

// Conjunction ANDs masks row-wise. With no masks every one of the rows is
// kept.
func Conjunction(rows int, masks ...Mask) (Mask, error) {
	result := make(Mask, rows)
	for i := range result {
		result[i] = true
	}

	for n, mask := range masks {
		if len(mask) != rows {
			return nil, fmt.Errorf("%w: mask %d has %d entries, expected %d", table.ErrMaskLength, n, len(mask), rows)
		}
		for i, keep := range mask {
			result[i] = result[i] && keep
		}
	}
	return result, nil
}

// ApplyFilters keeps the rows of t that satisfy every condition and returns
// them with the combined mask. Row order is preserved and t is not modified.
//
// Each condition's mask is computed in its own goroutine; the masks are
// combined once all of them are done.
func ApplyFilters(t *table.Table, conditions []Condition) (*table.Table, Mask, error) {
	masks := make([]Mask, len(conditions))

	var g errgroup.Group
	for i, cond := range conditions {
		g.Go(func() error {
			mask, err := cond.Mask(t)
			if err != nil {
				return err
			}
			masks[i] = mask
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	combined, err := Conjunction(t.Len(), masks...)
	if err != nil {
		return nil, nil, err
	}

	filtered, err := t.Select(combined)
	if err != nil {
		return nil, nil, err
	}
	return filtered, combined, nil
}
