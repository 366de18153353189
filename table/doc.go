// Package table holds the in-memory tables that feel filters.
//
// A Table is an ordered list of named columns, each a slice of Values of
// equal length. Values are a tagged union of Null, Int, Float and String
// with explicit comparison rules:
//
//   - Int and Float compare numerically with each other
//   - String compares byte-wise with String
//   - a number never equals a string, and the two are not ordered
//   - Null equals nothing and is not ordered
//
// Tables are read-only once built. Select, Sample and Concat always return
// new tables, so the source can still be used afterwards (for example to
// report the value counts from before filtering).
//
// # Basic Usage
//
//	t, err := table.New(
//	    []string{"ID", "Name"},
//	    [][]table.Value{
//	        {table.IntValue(1), table.IntValue(2)},
//	        {table.StringValue("alice"), table.StringValue("bob")},
//	    },
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	filtered, err := t.Select([]bool{true, false})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	counts, err := t.ValueCounts("Name")
package table
