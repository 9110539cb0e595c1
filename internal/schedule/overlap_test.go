package schedule

import "testing"

func TestSlotOverlaps(t *testing.T) {
	a := Slot{From: ts(t, "2024-03-01 09:00:00"), To: ts(t, "2024-03-01 17:00:00")}

	cases := []struct {
		name string
		b    Slot
		want bool
	}{
		{
			name: "contained",
			b:    Slot{From: ts(t, "2024-03-01 10:00:00"), To: ts(t, "2024-03-01 12:00:00")},
			want: true,
		},
		{
			name: "partial tail",
			b:    Slot{From: ts(t, "2024-03-01 16:00:00"), To: ts(t, "2024-03-01 20:00:00")},
			want: true,
		},
		{
			name: "touching end is not overlap",
			b:    Slot{From: ts(t, "2024-03-01 17:00:00"), To: ts(t, "2024-03-01 20:00:00")},
			want: false,
		},
		{
			name: "touching start is not overlap",
			b:    Slot{From: ts(t, "2024-03-01 06:00:00"), To: ts(t, "2024-03-01 09:00:00")},
			want: false,
		},
		{
			name: "disjoint day",
			b:    Slot{From: ts(t, "2024-03-02 09:00:00"), To: ts(t, "2024-03-02 17:00:00")},
			want: false,
		},
		{
			name: "covering",
			b:    Slot{From: ts(t, "2024-03-01 08:00:00"), To: ts(t, "2024-03-01 18:00:00")},
			want: true,
		},
	}

	for _, c := range cases {
		if got := a.Overlaps(c.b); got != c.want {
			t.Fatalf("%s: expected %v, got %v", c.name, c.want, got)
		}
		// overlap is symmetric
		if got := c.b.Overlaps(a); got != c.want {
			t.Fatalf("%s (reversed): expected %v, got %v", c.name, c.want, got)
		}
	}
}

func TestConflicts(t *testing.T) {
	existing := Expand(mustRange(t, "2024-03-01", "2024-03-01"), mustWindow(t, "09:00:00", "17:00:00"))
	candidate := Expand(mustRange(t, "2024-03-01", "2024-03-01"), mustWindow(t, "16:00:00", "20:00:00"))

	if !Conflicts(candidate, existing) {
		t.Fatalf("expected a 16:00-20:00 candidate to conflict with a 09:00-17:00 booking")
	}
	if !Conflicts(existing, candidate) {
		t.Fatalf("expected conflict detection to be symmetric")
	}
}

func TestConflicts_None(t *testing.T) {
	existing := Expand(mustRange(t, "2024-03-01", "2024-03-03"), mustWindow(t, "09:00:00", "17:00:00"))
	candidate := Expand(mustRange(t, "2024-03-01", "2024-03-03"), mustWindow(t, "17:00:00", "21:00:00"))

	if Conflicts(candidate, existing) {
		t.Fatalf("back to back bookings must not conflict")
	}
}

func TestConflicts_OvernightAgainstMorning(t *testing.T) {
	existing := Expand(mustRange(t, "2024-03-01", "2024-03-01"), mustWindow(t, "22:00:00", "06:00:00"))
	candidate := Expand(mustRange(t, "2024-03-02", "2024-03-02"), mustWindow(t, "05:00:00", "09:00:00"))

	if !Conflicts(candidate, existing) {
		t.Fatalf("the tail of an overnight shift must conflict with the next morning")
	}
}

func TestConflicts_EmptySets(t *testing.T) {
	existing := Expand(mustRange(t, "2024-03-01", "2024-03-01"), mustWindow(t, "09:00:00", "17:00:00"))

	if Conflicts(nil, existing) {
		t.Fatalf("no candidates cannot conflict")
	}
	if Conflicts(existing, nil) {
		t.Fatalf("nothing existing cannot conflict")
	}
}
