package scheduling

import (
	"time"

	"fitbook/models"
)

// minutesOfDay converts a "15:04" wall-clock string to minutes from midnight.
// Malformed values map to -1, which never overlaps anything.
func minutesOfDay(clock string) int {
	t, err := time.Parse(models.TimeLayout, clock)
	if err != nil {
		return -1
	}
	return t.Hour()*60 + t.Minute()
}

// dateRange returns a slot's inclusive date span. Single-day slots use the
// start date for both ends.
func dateRange(s models.Slot) (string, string) {
	end := s.EndDate
	if end == "" {
		end = s.StartDate
	}
	return s.StartDate, end
}

// Conflicts reports whether two slots of the same trainer collide. Date ranges
// overlap inclusively; wall-clock ranges overlap strictly, so back-to-back
// slots with a touching boundary do not conflict. ISO dates compare correctly
// as strings.
func Conflicts(a, b models.Slot) bool {
	aStart, aEnd := dateRange(a)
	bStart, bEnd := dateRange(b)
	if aStart > bEnd || aEnd < bStart {
		return false
	}

	aFrom, aTo := minutesOfDay(a.StartTime), minutesOfDay(a.EndTime)
	bFrom, bTo := minutesOfDay(b.StartTime), minutesOfDay(b.EndTime)
	if aFrom < 0 || aTo < 0 || bFrom < 0 || bTo < 0 {
		return false
	}
	return aFrom < bTo && aTo > bFrom
}

// FindConflict returns the first existing slot colliding with the candidate,
// or nil when the candidate is clear.
func FindConflict(candidate models.Slot, existing []models.Slot) *models.Slot {
	for i := range existing {
		if Conflicts(candidate, existing[i]) {
			return &existing[i]
		}
	}
	return nil
}
