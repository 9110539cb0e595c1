package schedule

import (
	"errors"
	"testing"

	"github.com/showtimestaff/event-staffing/backend/internal/domain"
)

func rate(v float64) *float64 { return &v }

func baseDay() *domain.Day {
	return &domain.Day{
		ID:         1,
		PositionID: 1,
		FromDate:   "2024-03-01",
		ToDate:     "2024-03-03",
		FromTime:   "09:00:00",
		ToTime:     "17:00:00",
		Quantity:   4,
		HourlyRate: rate(25),
	}
}

func TestDiffDay(t *testing.T) {
	existing := baseDay()
	proposed := baseDay()
	proposed.FromTime = "10:00:00"
	proposed.Quantity = 6

	changed := DiffDay(existing, proposed)
	if len(changed) != 2 {
		t.Fatalf("expected 2 changed fields, got %v", changed)
	}
	if changed[0] != FieldFromTime || changed[1] != FieldQuantity {
		t.Fatalf("unexpected change set: %v", changed)
	}
}

func TestDiffDay_NoChanges(t *testing.T) {
	if changed := DiffDay(baseDay(), baseDay()); len(changed) != 0 {
		t.Fatalf("expected empty diff, got %v", changed)
	}
}

func TestDiffDay_NilRates(t *testing.T) {
	existing := baseDay()
	existing.HourlyRate = nil
	proposed := baseDay()

	changed := DiffDay(existing, proposed)
	if len(changed) != 1 || changed[0] != FieldHourlyRate {
		t.Fatalf("expected hourly_rate change, got %v", changed)
	}

	proposed.HourlyRate = nil
	if changed := DiffDay(existing, proposed); len(changed) != 0 {
		t.Fatalf("nil rates on both sides must not diff, got %v", changed)
	}
}

func TestCheckMutable_NoHiresAllowsEverything(t *testing.T) {
	proposed := baseDay()
	proposed.FromDate = "2024-04-01"
	proposed.ToDate = "2024-04-05"
	proposed.HourlyRate = rate(80)

	if err := CheckMutable(baseDay(), proposed, false); err != nil {
		t.Fatalf("expected edit without hires to pass, got %v", err)
	}
}

func TestCheckMutable_HiredFreezesTimeFields(t *testing.T) {
	for _, mutate := range []func(*domain.Day){
		func(d *domain.Day) { d.FromDate = "2024-03-02" },
		func(d *domain.Day) { d.ToDate = "2024-03-04" },
		func(d *domain.Day) { d.FromTime = "10:00:00" },
		func(d *domain.Day) { d.ToTime = "18:00:00" },
		func(d *domain.Day) { d.HourlyRate = rate(30) },
	} {
		proposed := baseDay()
		mutate(proposed)

		err := CheckMutable(baseDay(), proposed, true)
		if !errors.Is(err, ErrAlreadyHired) {
			t.Fatalf("expected ErrAlreadyHired, got %v", err)
		}
	}
}

func TestCheckMutable_HiredAllowsHeadcountChanges(t *testing.T) {
	proposed := baseDay()
	proposed.Quantity = 10
	proposed.HoursPerOne = rate(8)

	if err := CheckMutable(baseDay(), proposed, true); err != nil {
		t.Fatalf("quantity and hours_per_one must stay editable, got %v", err)
	}
}

func TestCheckMutable_HiredAllowsIdenticalWrite(t *testing.T) {
	if err := CheckMutable(baseDay(), baseDay(), true); err != nil {
		t.Fatalf("an identical write must pass even with hires, got %v", err)
	}
}

func TestNeedsRegeneration(t *testing.T) {
	cases := []struct {
		changed []string
		want    bool
	}{
		{nil, false},
		{[]string{FieldQuantity}, false},
		{[]string{FieldHourlyRate, FieldHoursPerOne}, false},
		{[]string{FieldFromDate}, true},
		{[]string{FieldToDate}, true},
		{[]string{FieldFromTime}, true},
		{[]string{FieldToTime}, true},
		{[]string{FieldQuantity, FieldToTime}, true},
	}

	for _, c := range cases {
		if got := NeedsRegeneration(c.changed); got != c.want {
			t.Fatalf("changed %v: expected %v, got %v", c.changed, c.want, got)
		}
	}
}
