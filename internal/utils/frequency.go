package utils

import (
	"time"

	"github.com/jeevansaathi/saathi-cli/internal/models"
)

// IsScheduledDay determines if a habit's frequency expects an outcome on the
// given date. This logic is shared between statistics and validation to
// ensure consistency.
func IsScheduledDay(freq models.Frequency, date time.Time) bool {
	switch freq.Type {
	case models.FrequencyDaily:
		return true
	case models.FrequencySpecificDays:
		for _, wd := range freq.Days {
			if date.Weekday() == wd {
				return true
			}
		}
		return false
	case models.FrequencyWeekly, models.FrequencyMonthly:
		// Weekly/monthly habits have a per-period target rather than fixed
		// days, so any day can carry an outcome.
		return true
	default:
		return false
	}
}

// ExpectedDays counts the number of days a habit was expected to be
// completed within [start, end] given its frequency. Returns 0 for an
// empty or inverted window.
func ExpectedDays(freq models.Frequency, start, end time.Time) int {
	start, end = StartOfDay(start), StartOfDay(end)
	if end.Before(start) {
		return 0
	}
	totalDays := DaysBetween(start, end)

	switch freq.Type {
	case models.FrequencyDaily:
		return totalDays
	case models.FrequencySpecificDays:
		count := 0
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			if IsScheduledDay(freq, d) {
				count++
			}
		}
		return count
	case models.FrequencyWeekly:
		times := freq.Times
		if times <= 0 {
			times = 1
		}
		weeks := (totalDays + 6) / 7
		expected := weeks * times
		if expected > totalDays {
			expected = totalDays
		}
		return expected
	case models.FrequencyMonthly:
		times := freq.Times
		if times <= 0 {
			times = 1
		}
		months := monthsTouched(start, end)
		expected := months * times
		if expected > totalDays {
			expected = totalDays
		}
		return expected
	default:
		return 0
	}
}

// monthsTouched counts the distinct calendar months in [start, end].
func monthsTouched(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month()) + 1
}
