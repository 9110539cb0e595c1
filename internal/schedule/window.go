package schedule

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time without a date, parsed from the
// "15:04:05" strings the API and the days table use.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

func (t TimeOfDay) seconds() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

// Before reports whether t is strictly earlier in the day than o.
func (t TimeOfDay) Before(o TimeOfDay) bool {
	return t.seconds() < o.seconds()
}

// On anchors the time of day onto the given calendar date.
func (t TimeOfDay) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour, t.Minute, t.Second, 0, date.Location())
}

// Window is the daily working window of a shift definition.
type Window struct {
	From TimeOfDay
	To   TimeOfDay
}

func ParseWindow(from, to string) (Window, error) {
	f, err := ParseTimeOfDay(from)
	if err != nil {
		return Window{}, err
	}
	t, err := ParseTimeOfDay(to)
	if err != nil {
		return Window{}, err
	}
	return Window{From: f, To: t}, nil
}

// CrossesMidnight reports whether the shift ends on the following
// calendar day. A window whose start equals its end also crosses:
// a 22:00-22:00 shift is a full day into tomorrow, not an empty one.
func (w Window) CrossesMidnight() bool {
	return !w.From.Before(w.To)
}
