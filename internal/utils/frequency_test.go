package utils

import (
	"testing"
	"time"

	"github.com/jeevansaathi/saathi-cli/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsScheduledDay(t *testing.T) {
	daily := models.Frequency{Type: models.FrequencyDaily}
	monWed := models.Frequency{
		Type: models.FrequencySpecificDays,
		Days: []time.Weekday{time.Monday, time.Wednesday},
	}

	// Aug 3 2026 is a Monday, Aug 4 a Tuesday.
	if !IsScheduledDay(daily, date(2026, 8, 4)) {
		t.Error("daily habit should be scheduled every day")
	}
	if !IsScheduledDay(monWed, date(2026, 8, 3)) {
		t.Error("expected Monday to be scheduled")
	}
	if IsScheduledDay(monWed, date(2026, 8, 4)) {
		t.Error("expected Tuesday not to be scheduled")
	}
	if IsScheduledDay(models.Frequency{Type: models.FrequencySpecificDays}, date(2026, 8, 3)) {
		t.Error("specific_days with no days should never be scheduled")
	}
}

func TestExpectedDays(t *testing.T) {
	tests := []struct {
		name       string
		freq       models.Frequency
		start, end time.Time
		want       int
	}{
		{
			"daily over a week",
			models.Frequency{Type: models.FrequencyDaily},
			date(2026, 8, 9), date(2026, 8, 15), 7,
		},
		{
			"daily single day",
			models.Frequency{Type: models.FrequencyDaily},
			date(2026, 8, 15), date(2026, 8, 15), 1,
		},
		{
			"inverted window",
			models.Frequency{Type: models.FrequencyDaily},
			date(2026, 8, 16), date(2026, 8, 15), 0,
		},
		{
			"specific days",
			models.Frequency{Type: models.FrequencySpecificDays, Days: []time.Weekday{time.Monday, time.Friday}},
			date(2026, 8, 2), date(2026, 8, 15), 4,
		},
		{
			"weekly three times over two weeks",
			models.Frequency{Type: models.FrequencyWeekly, Times: 3},
			date(2026, 8, 2), date(2026, 8, 15), 6,
		},
		{
			"weekly capped by short window",
			models.Frequency{Type: models.FrequencyWeekly, Times: 5},
			date(2026, 8, 14), date(2026, 8, 15), 2,
		},
		{
			"monthly twice across two months",
			models.Frequency{Type: models.FrequencyMonthly, Times: 2},
			date(2026, 7, 20), date(2026, 8, 10), 4,
		},
		{
			"weekly default times",
			models.Frequency{Type: models.FrequencyWeekly},
			date(2026, 8, 2), date(2026, 8, 15), 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpectedDays(tt.freq, tt.start, tt.end); got != tt.want {
				t.Errorf("ExpectedDays() = %d, want %d", got, tt.want)
			}
		})
	}
}
