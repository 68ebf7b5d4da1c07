package scheduling

import (
	"fmt"
	"time"

	"fitbook/models"
)

// Recurrence policies for slot creation.
const (
	RecurrenceSingle  = "single"
	RecurrenceOneWeek = "oneWeek"
	RecurrenceTwoWeek = "twoWeek"
)

// ExpandRecurrence produces the concrete calendar dates a repeating slot
// applies to: one date for "single", 7 consecutive dates for "oneWeek" and 14
// for "twoWeek", starting at startDate inclusive. It is pure; the same inputs
// always yield the same sequence.
func ExpandRecurrence(startDate, policy string) ([]string, error) {
	start, err := time.Parse(models.DateLayout, startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}

	var days int
	switch policy {
	case RecurrenceSingle:
		days = 1
	case RecurrenceOneWeek:
		days = 7
	case RecurrenceTwoWeek:
		days = 14
	default:
		return nil, fmt.Errorf("unknown recurrence policy %q", policy)
	}

	dates := make([]string, days)
	for i := 0; i < days; i++ {
		dates[i] = start.AddDate(0, 0, i).Format(models.DateLayout)
	}
	return dates, nil
}
