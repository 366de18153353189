package query

// FilterTypes documents the filter syntax. It is shown in the command help
// and appended to malformed filter errors.
const FilterTypes = `FILTER TYPES                          DESCRIPTION                            SUPPORTED TYPES

"col_name:filter_val"                 col_name IS filter_val                 [number, string]
"col_name:~filter_val"                col_name IS NOT filter_val             [number, string]
"col_name:>filter_val"                col_name IS GREATER THAN filter_val    [number]
"col_name:<filter_val"                col_name IS LESS THAN filter_val       [number]
"col_name:filter_vals|filter_vals"    col_name IS IN [val1, val2]            [number, string]
"col_name:~filter_vals|filter_vals"   col_name IS NOT IN [val1, val2]        [number, string]
`
