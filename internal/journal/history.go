package journal

import (
	"fmt"
	"time"

	"github.com/mindmate/mindmate/internal/domain"
)

// dateLayout is the calendar-date format used by query parameters and
// the insights timeline.
const dateLayout = "2006-01-02"

// Filter narrows a history query. Zero values mean "no constraint";
// label matches are case-sensitive and exact, and the date bounds are
// inclusive on both ends. All set fields combine with AND.
type Filter struct {
	Emotion   string
	Sentiment string
	Start     time.Time
	End       time.Time
}

// ParseDate parses a YYYY-MM-DD query parameter. An empty string is a
// valid absent bound.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", s, domain.ErrInvalidDate)
	}
	return t, nil
}

// Query filters entries and returns them most-recently-created first.
// No match yields an empty slice, never nil.
func Query(entries []domain.JournalEntry, f Filter) []domain.JournalEntry {
	result := make([]domain.JournalEntry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		if matches(entries[i], f) {
			result = append(result, entries[i])
		}
	}
	return result
}

func matches(e domain.JournalEntry, f Filter) bool {
	if f.Emotion != "" && e.Emotion.Label != f.Emotion {
		return false
	}
	if f.Sentiment != "" && e.Sentiment.Label != f.Sentiment {
		return false
	}
	d := dateOf(e.Timestamp)
	if !f.Start.IsZero() && d.Before(f.Start) {
		return false
	}
	if !f.End.IsZero() && d.After(f.End) {
		return false
	}
	return true
}

// dateOf truncates a timestamp to its UTC calendar date.
func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
