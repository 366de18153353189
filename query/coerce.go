package query

import (
	"math"
	"strconv"
	"strings"
)

// CanFloat reports whether s parses as a floating-point number.
// Surrounding whitespace is ignored.
func CanFloat(s string) bool {
	_, ok := parseFloat(s)
	return ok
}

// CanInt reports whether s holds an integer: either a base-10 integer
// literal, or a float literal with no fractional part that fits in an int64
// ("3.0" qualifies, "3.5" does not).
func CanInt(s string) bool {
	_, ok := parseInt(s)
	return ok
}

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func parseInt(s string) (int64, bool) {
	trimmed := strings.TrimSpace(s)
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return i, true
	}

	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	// float64(math.MaxInt64) rounds up to 2^63, hence the strict bound
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
