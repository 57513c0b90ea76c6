// Package dates normalizes client-supplied calendar dates and renders the
// canonical date representation used in all responses.
package dates

import (
	"fmt"
	"time"
)

// Canonical is the response date layout, e.g. "Fri May 05 2023".
const Canonical = "Mon Jan 02 2006"

// layouts accepted for dates supplied by clients. The canonical layout is
// included so response dates round-trip as filter bounds.
var layouts = []string{
	"2006-01-02",
	time.RFC3339,
	Canonical,
}

// Parse converts a client-supplied date string into a calendar date
// (midnight UTC, no time-of-day retained).
func Parse(s string) (time.Time, error) {
	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return truncate(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date %q", s)
}

// Format renders t in the canonical response layout.
func Format(t time.Time) string {
	return t.Format(Canonical)
}

// Today returns the current calendar date.
func Today() time.Time {
	return truncate(time.Now())
}

func truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
