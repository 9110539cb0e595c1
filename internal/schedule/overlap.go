package schedule

import "errors"

// ErrSchedulingOverlap is returned to callers when overlap rejection
// is enforced and a candidate slot collides with an existing booking.
var ErrSchedulingOverlap = errors.New("an event already exists at this time and place, please choose a different place")

// Overlaps reports whether two slots share any time. Touching
// endpoints do not count: a slot ending 17:00 and one starting 17:00
// can be worked back to back.
func (s Slot) Overlaps(o Slot) bool {
	return s.From.Before(o.To) && s.To.After(o.From)
}

// Conflicts reports whether any candidate slot overlaps any existing
// slot. The caller is responsible for scoping existing to the relevant
// bookings (same manager, same location, open events, excluding the
// event under edit); this is pure interval math.
func Conflicts(candidates, existing []Slot) bool {
	for _, c := range candidates {
		for _, e := range existing {
			if c.Overlaps(e) {
				return true
			}
		}
	}
	return false
}
