package query

import (
	"errors"
	"fmt"
)

// Validation limits on command-line filter input
const (
	// MaxFilterLength is the maximum length of a single filter token (64KB)
	MaxFilterLength = 64 * 1024

	// MaxFilters is the maximum number of filter tokens per invocation
	MaxFilters = 1000

	// MaxListValues is the maximum number of elements in a "|" list
	MaxListValues = 10000
)

var (
	// ErrFilterTooLong is returned when a token exceeds MaxFilterLength
	ErrFilterTooLong = errors.New("filter too long")

	// ErrTooManyFilters is returned when more than MaxFilters tokens are given
	ErrTooManyFilters = errors.New("too many filters")

	// ErrTooManyValues is returned when a list exceeds MaxListValues elements
	ErrTooManyValues = errors.New("too many list values")
)

// ValidateFilter checks the length of a single filter token
func ValidateFilter(token string) error {
	if len(token) > MaxFilterLength {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrFilterTooLong, len(token), MaxFilterLength)
	}
	return nil
}

// ValidateFilters checks the number of filter tokens
func ValidateFilters(tokens []string) error {
	if len(tokens) > MaxFilters {
		return fmt.Errorf("%w: %d filters (max %d)", ErrTooManyFilters, len(tokens), MaxFilters)
	}
	return nil
}

// validateListSize checks the number of elements in a list value
func validateListSize(elements []string) error {
	if len(elements) > MaxListValues {
		return fmt.Errorf("%w: %d values (max %d)", ErrTooManyValues, len(elements), MaxListValues)
	}
	return nil
}
