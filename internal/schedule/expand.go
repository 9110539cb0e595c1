package schedule

import (
	"fmt"
	"time"
)

// DateRange is an inclusive span of calendar days. Both bounds are
// midnight timestamps in the same location.
type DateRange struct {
	From time.Time
	To   time.Time
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

func ParseDateRange(from, to string) (DateRange, error) {
	f, err := ParseDate(from)
	if err != nil {
		return DateRange{}, err
	}
	t, err := ParseDate(to)
	if err != nil {
		return DateRange{}, err
	}
	return DateRange{From: f, To: t}, nil
}

// TotalDays is the inclusive day count: a range whose bounds are the
// same date spans one day. An inverted range yields zero or less.
func (r DateRange) TotalDays() int {
	toInclusive := r.To.AddDate(0, 0, 1)
	return int(toInclusive.Sub(r.From).Hours() / 24)
}

// Slot is one concrete per-day booking produced by Expand, persisted
// as a day_details row.
type Slot struct {
	From time.Time
	To   time.Time
}

// Expand turns a date range plus a daily window into one slot per
// calendar day, in chronological order. A window that crosses midnight
// pushes each slot's end onto the following day. A range with no days
// expands to nothing; callers treat that as a no-op, not an error.
func Expand(r DateRange, w Window) []Slot {
	totalDays := r.TotalDays()
	if totalDays <= 0 {
		return nil
	}

	crosses := w.CrossesMidnight()
	slots := make([]Slot, 0, totalDays)
	for k := 0; k < totalDays; k++ {
		day := r.From.AddDate(0, 0, k)
		end := day
		if crosses {
			end = day.AddDate(0, 0, 1)
		}
		slots = append(slots, Slot{
			From: w.From.On(day),
			To:   w.To.On(end),
		})
	}

	return slots
}
