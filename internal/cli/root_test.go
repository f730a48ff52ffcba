package cli

import (
	"testing"
	"time"

	"github.com/jeevansaathi/saathi-cli/internal/models"
)

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []time.Weekday
		wantErr bool
	}{
		{"short names", "mon,wed,fri", []time.Weekday{time.Monday, time.Wednesday, time.Friday}, false},
		{"long names", "sunday,saturday", []time.Weekday{time.Sunday, time.Saturday}, false},
		{"mixed case with spaces", " Tue , THU ", []time.Weekday{time.Tuesday, time.Thursday}, false},
		{"numbers", "0,6", []time.Weekday{time.Sunday, time.Saturday}, false},
		{"invalid name", "mon,someday", nil, true},
		{"out of range number", "7", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeekdays(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWeekdays(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseWeekdays(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseWeekdays(%q)[%d] = %v, want %v", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFormatFrequency(t *testing.T) {
	tests := []struct {
		name string
		freq models.Frequency
		want string
	}{
		{"daily", models.Frequency{Type: models.FrequencyDaily}, "daily"},
		{"weekly", models.Frequency{Type: models.FrequencyWeekly, Times: 3}, "3x per week"},
		{"monthly", models.Frequency{Type: models.FrequencyMonthly, Times: 2}, "2x per month"},
		{"specific days", models.Frequency{
			Type: models.FrequencySpecificDays,
			Days: []time.Weekday{time.Monday, time.Friday},
		}, "on Mon,Fri"},
		{"unknown", models.Frequency{Type: "fortnightly"}, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatFrequency(tt.freq); got != tt.want {
				t.Errorf("FormatFrequency() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	dateOnly := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(dateOnly); got != "2026-08-15" {
		t.Errorf("FormatDate(midnight) = %q, want date only", got)
	}

	timed := time.Date(2026, 8, 15, 14, 30, 0, 0, time.UTC)
	if got := FormatDate(timed); got != "2026-08-15 14:30" {
		t.Errorf("FormatDate(timed) = %q, want date and time", got)
	}
}

func TestRatingDots(t *testing.T) {
	if got := ratingDots(3); got != "●●●○○" {
		t.Errorf("ratingDots(3) = %q", got)
	}
	if got := ratingDots(0); got != "○○○○○" {
		t.Errorf("ratingDots(0) = %q", got)
	}
	if got := ratingDots(5); got != "●●●●●" {
		t.Errorf("ratingDots(5) = %q", got)
	}
}
