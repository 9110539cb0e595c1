package schedule

import (
	"errors"
	"slices"

	"github.com/showtimestaff/event-staffing/backend/internal/domain"
)

// ErrAlreadyHired is returned when an edit would change committed
// time or rate data on a day crew are already hired against.
var ErrAlreadyHired = errors.New("already hired, cannot edit")

// Field names reported by DiffDay.
const (
	FieldFromDate    = "from_date"
	FieldToDate      = "to_date"
	FieldFromTime    = "from_time"
	FieldToTime      = "to_time"
	FieldHourlyRate  = "hourly_rate"
	FieldQuantity    = "quantity"
	FieldHoursPerOne = "hours_per_one"
)

// hiredFrozenFields may not change once any hired job references the
// day. Quantity and hours_per_one stay editable: raising headcount on
// a partially staffed day is routine.
var hiredFrozenFields = []string{
	FieldFromDate,
	FieldToDate,
	FieldHourlyRate,
	FieldFromTime,
	FieldToTime,
}

// regenerationFields are the ones whose change invalidates the
// expanded day_details rows.
var regenerationFields = []string{
	FieldFromDate,
	FieldToDate,
	FieldFromTime,
	FieldToTime,
}

// DiffDay compares a stored day against its proposed replacement and
// returns the names of the fields that actually change. Both the
// mutation policy and the caller's notification trigger consume the
// same diff.
func DiffDay(existing, proposed *domain.Day) []string {
	var changed []string

	if existing.FromDate != proposed.FromDate {
		changed = append(changed, FieldFromDate)
	}
	if existing.ToDate != proposed.ToDate {
		changed = append(changed, FieldToDate)
	}
	if existing.FromTime != proposed.FromTime {
		changed = append(changed, FieldFromTime)
	}
	if existing.ToTime != proposed.ToTime {
		changed = append(changed, FieldToTime)
	}
	if !equalRate(existing.HourlyRate, proposed.HourlyRate) {
		changed = append(changed, FieldHourlyRate)
	}
	if existing.Quantity != proposed.Quantity {
		changed = append(changed, FieldQuantity)
	}
	if !equalRate(existing.HoursPerOne, proposed.HoursPerOne) {
		changed = append(changed, FieldHoursPerOne)
	}

	return changed
}

func equalRate(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// CheckMutable guards day edits. Without hired jobs any edit goes
// through; with hired jobs the edit must leave every frozen field
// untouched, otherwise the whole request is rejected and nothing is
// written.
func CheckMutable(existing, proposed *domain.Day, hasHiredJobs bool) error {
	if !hasHiredJobs {
		return nil
	}

	for _, field := range DiffDay(existing, proposed) {
		if slices.Contains(hiredFrozenFields, field) {
			return ErrAlreadyHired
		}
	}

	return nil
}

// NeedsRegeneration reports whether a committed change set requires
// the day's details to be deleted and expanded again. Rate and
// headcount changes leave the slots alone.
func NeedsRegeneration(changed []string) bool {
	for _, field := range changed {
		if slices.Contains(regenerationFields, field) {
			return true
		}
	}
	return false
}
