package schedule

import (
	"testing"
	"time"
)

func mustRange(t *testing.T, from, to string) DateRange {
	t.Helper()
	r, err := ParseDateRange(from, to)
	if err != nil {
		t.Fatalf("ParseDateRange(%s, %s): %v", from, to, err)
	}
	return r
}

func mustWindow(t *testing.T, from, to string) Window {
	t.Helper()
	w, err := ParseWindow(from, to)
	if err != nil {
		t.Fatalf("ParseWindow(%s, %s): %v", from, to, err)
	}
	return w
}

func ts(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02 15:04:05", value, time.UTC)
	if err != nil {
		t.Fatalf("bad timestamp %q: %v", value, err)
	}
	return parsed
}

func TestTotalDays(t *testing.T) {
	cases := []struct {
		from, to string
		want     int
	}{
		{"2024-01-01", "2024-01-01", 1},
		{"2024-03-01", "2024-03-03", 3},
		{"2024-02-28", "2024-03-01", 3}, // leap year boundary
		{"2024-01-02", "2024-01-01", 0},
		{"2024-01-10", "2024-01-01", -8},
	}

	for _, c := range cases {
		r := mustRange(t, c.from, c.to)
		if got := r.TotalDays(); got != c.want {
			t.Fatalf("range %s..%s: expected %d days, got %d", c.from, c.to, c.want, got)
		}
	}
}

func TestExpand_SlotCountMatchesRange(t *testing.T) {
	w := mustWindow(t, "09:00:00", "17:00:00")

	for days := 1; days <= 31; days++ {
		from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		r := DateRange{From: from, To: from.AddDate(0, 0, days-1)}

		slots := Expand(r, w)
		if len(slots) != days {
			t.Fatalf("expected %d slots for a %d day range, got %d", days, days, len(slots))
		}
	}
}

func TestExpand_SameDayWindow(t *testing.T) {
	r := mustRange(t, "2024-03-01", "2024-03-03")
	w := mustWindow(t, "09:00:00", "17:00:00")

	slots := Expand(r, w)
	if len(slots) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(slots))
	}

	want := []Slot{
		{From: ts(t, "2024-03-01 09:00:00"), To: ts(t, "2024-03-01 17:00:00")},
		{From: ts(t, "2024-03-02 09:00:00"), To: ts(t, "2024-03-02 17:00:00")},
		{From: ts(t, "2024-03-03 09:00:00"), To: ts(t, "2024-03-03 17:00:00")},
	}
	for i := range want {
		if !slots[i].From.Equal(want[i].From) || !slots[i].To.Equal(want[i].To) {
			t.Fatalf("slot %d: expected %v, got %v", i, want[i], slots[i])
		}
	}

	// every slot starts and ends on the same calendar day
	for i, s := range slots {
		if s.From.Day() != s.To.Day() {
			t.Fatalf("slot %d spills into the next day: %v", i, s)
		}
	}
}

func TestExpand_OvernightWindow(t *testing.T) {
	r := mustRange(t, "2024-03-01", "2024-03-01")
	w := mustWindow(t, "22:00:00", "06:00:00")

	slots := Expand(r, w)
	if len(slots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(slots))
	}

	if !slots[0].From.Equal(ts(t, "2024-03-01 22:00:00")) {
		t.Fatalf("unexpected slot start: %v", slots[0].From)
	}
	if !slots[0].To.Equal(ts(t, "2024-03-02 06:00:00")) {
		t.Fatalf("unexpected slot end: %v", slots[0].To)
	}
}

func TestExpand_OvernightEndsNextDay(t *testing.T) {
	r := mustRange(t, "2024-03-01", "2024-03-05")
	w := mustWindow(t, "20:00:00", "04:00:00")

	for i, s := range Expand(r, w) {
		wantEnd := s.From.Truncate(24 * time.Hour).AddDate(0, 0, 1)
		if s.To.Year() != wantEnd.Year() || s.To.YearDay() != wantEnd.YearDay() {
			t.Fatalf("slot %d: end %v is not on the day after start %v", i, s.To, s.From)
		}
	}
}

func TestExpand_ChronologicalOrder(t *testing.T) {
	r := mustRange(t, "2024-03-01", "2024-03-10")
	w := mustWindow(t, "08:00:00", "16:00:00")

	slots := Expand(r, w)
	for i := 1; i < len(slots); i++ {
		if !slots[i-1].From.Before(slots[i].From) {
			t.Fatalf("slots out of order at %d: %v then %v", i, slots[i-1].From, slots[i].From)
		}
	}
}

func TestExpand_InvertedRangeIsNoop(t *testing.T) {
	r := mustRange(t, "2024-03-05", "2024-03-01")
	w := mustWindow(t, "09:00:00", "17:00:00")

	if slots := Expand(r, w); len(slots) != 0 {
		t.Fatalf("expected no slots for an inverted range, got %d", len(slots))
	}
}
