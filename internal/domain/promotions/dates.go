package promotions

import (
	"fmt"
	"math"
	"time"
)

// ParseDate accepts the date-only form the frontend sends ("2024-01-01")
// and falls back to RFC3339.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}

// Days is the promotion duration in whole days, ceiling-rounded. Descriptive
// only; nothing rejects a zero or negative span (the checkout contract leaves
// that case unspecified).
func Days(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}
