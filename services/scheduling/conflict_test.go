package scheduling

import (
	"testing"

	"fitbook/models"

	"github.com/stretchr/testify/assert"
)

func slotOn(startDate, endDate, startTime, endTime string) models.Slot {
	return models.Slot{
		StartDate: startDate,
		EndDate:   endDate,
		StartTime: startTime,
		EndTime:   endTime,
	}
}

func TestConflictsSameDayOverlap(t *testing.T) {
	a := slotOn("2026-03-10", "", "09:00", "10:00")
	b := slotOn("2026-03-10", "", "09:30", "10:30")
	assert.True(t, Conflicts(a, b))
	assert.True(t, Conflicts(b, a), "conflict detection must be symmetric")
}

func TestConflictsBackToBackDoesNotConflict(t *testing.T) {
	a := slotOn("2026-03-10", "", "09:00", "10:00")
	b := slotOn("2026-03-10", "", "10:00", "11:00")
	assert.False(t, Conflicts(a, b))
	assert.False(t, Conflicts(b, a))
}

func TestConflictsDifferentDays(t *testing.T) {
	a := slotOn("2026-03-10", "", "09:00", "10:00")
	b := slotOn("2026-03-11", "", "09:00", "10:00")
	assert.False(t, Conflicts(a, b))
}

func TestConflictsPackageSpansCandidateDay(t *testing.T) {
	pkg := slotOn("2026-03-08", "2026-03-14", "09:00", "10:00")
	day := slotOn("2026-03-10", "", "09:30", "10:30")
	assert.True(t, Conflicts(pkg, day))
	assert.True(t, Conflicts(day, pkg))
}

func TestConflictsPackageSameDatesDisjointTimes(t *testing.T) {
	pkg := slotOn("2026-03-08", "2026-03-14", "09:00", "10:00")
	day := slotOn("2026-03-10", "", "14:00", "15:00")
	assert.False(t, Conflicts(pkg, day))
}

func TestConflictsAdjacentDateRanges(t *testing.T) {
	a := slotOn("2026-03-01", "2026-03-07", "09:00", "10:00")
	b := slotOn("2026-03-07", "2026-03-10", "09:00", "10:00")
	assert.True(t, Conflicts(a, b), "inclusive ranges share 2026-03-07")

	c := slotOn("2026-03-08", "2026-03-10", "09:00", "10:00")
	assert.False(t, Conflicts(a, c))
}

func TestConflictsContainment(t *testing.T) {
	outer := slotOn("2026-03-10", "", "08:00", "12:00")
	inner := slotOn("2026-03-10", "", "09:00", "10:00")
	assert.True(t, Conflicts(outer, inner))
	assert.True(t, Conflicts(inner, outer))
}

func TestFindConflictReturnsHit(t *testing.T) {
	existing := []models.Slot{
		slotOn("2026-03-09", "", "09:00", "10:00"),
		slotOn("2026-03-10", "", "09:00", "10:00"),
	}
	hit := FindConflict(slotOn("2026-03-10", "", "09:30", "10:30"), existing)
	assert.NotNil(t, hit)
	assert.Equal(t, "2026-03-10", hit.StartDate)

	assert.Nil(t, FindConflict(slotOn("2026-03-11", "", "09:00", "10:00"), existing))
}
