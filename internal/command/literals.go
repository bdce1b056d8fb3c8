package command

import (
	"fmt"
	"strconv"
	"time"
)

// DateLayout is the ISO calendar date format used by every command that
// carries a date literal.
const DateLayout = "2006-01-02"

// ParseDate parses a strict YYYY-MM-DD date. time.Parse validates the
// calendar, so non-existent dates such as 2025-02-30 are rejected.
func ParseDate(value string) (time.Time, error) {
	d, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("Invalid date '%s'. Expected format: YYYY-MM-DD.", value)
	}
	return d, nil
}

// ParseQuantity parses an integer or decimal quantity literal.
func ParseQuantity(value string) (float64, error) {
	q, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("Invalid quantity '%s'. Expected a number.", value)
	}
	return q, nil
}
