// Package locale renders dates for display in API responses.
package locale

import "time"

const shortDateLayout = "Jan 2, 2006"

// FormatShortDate renders a stay date the way the booking listing shows
// it, e.g. "Jun 10, 2025". Zero dates render empty.
func FormatShortDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(shortDateLayout)
}
