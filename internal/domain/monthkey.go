package domain

import (
	"fmt"
	"time"
)

// MonthKey is a date truncated to year-month granularity, used as the
// grouping key for monthly aggregation. It is derived at aggregation time
// and never persisted.
type MonthKey struct {
	Year  int
	Month time.Month
}

// MonthKeyOf truncates a date to its MonthKey.
func MonthKeyOf(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// ParseMonthKey parses a key in "YYYY-MM" form.
func ParseMonthKey(s string) (MonthKey, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return MonthKey{}, fmt.Errorf("invalid month key %q: %w", s, err)
	}
	return MonthKeyOf(t), nil
}

// String renders the key in "YYYY-MM" form.
func (k MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
}

// Before reports whether k is chronologically before other.
func (k MonthKey) Before(other MonthKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}
