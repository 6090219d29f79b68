// Package biztime centralizes time handling. All storage and transport use
// UTC; billing-period arithmetic lives here so subscription math is uniform.
package biztime

import "time"

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// AddMonths advances t by n calendar months in UTC.
func AddMonths(t time.Time, n int) time.Time {
	return t.UTC().AddDate(0, n, 0)
}

// AddYears advances t by n calendar years in UTC.
func AddYears(t time.Time, n int) time.Time {
	return t.UTC().AddDate(n, 0, 0)
}
