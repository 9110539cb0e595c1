package schedule

import (
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("22:15:30")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if tod.Hour != 22 || tod.Minute != 15 || tod.Second != 30 {
		t.Fatalf("unexpected time of day: %+v", tod)
	}
	if got := tod.String(); got != "22:15:30" {
		t.Fatalf("expected round trip 22:15:30, got %q", got)
	}
}

func TestParseTimeOfDay_Invalid(t *testing.T) {
	if _, err := ParseTimeOfDay("9:00"); err == nil {
		t.Fatalf("expected error for short form")
	}
	if _, err := ParseTimeOfDay("25:00:00"); err == nil {
		t.Fatalf("expected error for hour out of range")
	}
}

func TestCrossesMidnight(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{"09:00:00", "17:00:00", false},
		{"22:00:00", "06:00:00", true},
		{"10:00:00", "10:00:00", true}, // equal times cross by definition
		{"10:00:00", "10:00:01", false},
		{"23:59:59", "00:00:00", true},
	}

	for _, c := range cases {
		w, err := ParseWindow(c.from, c.to)
		if err != nil {
			t.Fatalf("ParseWindow(%s, %s): %v", c.from, c.to, err)
		}
		if got := w.CrossesMidnight(); got != c.want {
			t.Fatalf("window %s-%s: expected CrossesMidnight=%v, got %v", c.from, c.to, c.want, got)
		}
	}
}

func TestTimeOfDayOn(t *testing.T) {
	tod := TimeOfDay{Hour: 9, Minute: 30}
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	got := tod.On(day)
	want := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
