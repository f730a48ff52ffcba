package validation

import (
	"testing"
	"time"

	"github.com/jeevansaathi/saathi-cli/internal/models"
)

func validHabit() models.Habit {
	return models.Habit{
		ID:        "h1",
		Title:     "Meditate",
		Type:      models.HabitBinary,
		Frequency: models.Frequency{Type: models.FrequencyDaily},
		Status:    models.HabitInProgress,
		StartDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestValidateHabit(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Habit)
		wantErr bool
	}{
		{"valid binary habit", func(h *models.Habit) {}, false},
		{"missing title", func(h *models.Habit) { h.Title = "" }, true},
		{"unknown type", func(h *models.Habit) { h.Type = "hourly" }, true},
		{"unknown status", func(h *models.Habit) { h.Status = "paused" }, true},
		{"unknown frequency", func(h *models.Habit) { h.Frequency.Type = "fortnightly" }, true},
		{"specific days without days", func(h *models.Habit) {
			h.Frequency = models.Frequency{Type: models.FrequencySpecificDays}
		}, true},
		{"specific days with days", func(h *models.Habit) {
			h.Frequency = models.Frequency{Type: models.FrequencySpecificDays, Days: []time.Weekday{time.Monday}}
		}, false},
		{"negative target", func(h *models.Habit) { h.DailyTarget = -1 }, true},
		{"zero start date", func(h *models.Habit) { h.StartDate = time.Time{} }, true},
		{"end before start", func(h *models.Habit) {
			end := h.StartDate.AddDate(0, 0, -1)
			h.EndDate = &end
		}, true},
		{"bad reminder", func(h *models.Habit) { h.Reminders = []string{"9am"} }, true},
		{"good reminders", func(h *models.Habit) { h.Reminders = []string{"08:00", "20:30"} }, false},
		{"checklist habit without items", func(h *models.Habit) { h.Type = models.HabitChecklist }, true},
		{"checklist habit with items", func(h *models.Habit) {
			h.Type = models.HabitChecklist
			h.Checklist = []models.ChecklistItem{{ID: "a", Text: "Stretch"}}
		}, false},
		{"unknown comparison", func(h *models.Habit) { h.TargetComparison = "approximately" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			habit := validHabit()
			tt.mutate(&habit)
			err := ValidateHabit(habit)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHabit() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateHabitLog(t *testing.T) {
	tests := []struct {
		name    string
		log     models.HabitLog
		wantErr bool
	}{
		{"valid", models.HabitLog{HabitID: "h1", Day: "2026-08-15", Status: models.LogCompleted}, false},
		{"missing habit id", models.HabitLog{Day: "2026-08-15", Status: models.LogCompleted}, true},
		{"bad day format", models.HabitLog{HabitID: "h1", Day: "15/08/2026", Status: models.LogCompleted}, true},
		{"unknown status", models.HabitLog{HabitID: "h1", Day: "2026-08-15", Status: "done"}, true},
		{"negative value", models.HabitLog{HabitID: "h1", Day: "2026-08-15", Status: models.LogCompleted, Value: -2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHabitLog(tt.log)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHabitLog() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateTask(t *testing.T) {
	if err := ValidateTask(models.Task{Title: "Pay rent", Priority: 2}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateTask(models.Task{Priority: 2}); err == nil {
		t.Error("expected error for missing title")
	}
	if err := ValidateTask(models.Task{Title: "Pay rent", Priority: 9}); err == nil {
		t.Error("expected error for out-of-range priority")
	}
}

func TestValidateJournalLog(t *testing.T) {
	at := time.Date(2026, 8, 15, 21, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		log     models.JournalLog
		wantErr bool
	}{
		{"valid text", models.JournalLog{Title: "Reflection", LogType: models.LogTypeText, LogDate: at}, false},
		{"valid rating", models.JournalLog{Title: "Mood", LogType: models.LogTypeRating, Rating: 4, LogDate: at}, false},
		{"rating out of range", models.JournalLog{Title: "Mood", LogType: models.LogTypeRating, Rating: 6, LogDate: at}, true},
		{"rating on text entry", models.JournalLog{Title: "Note", LogType: models.LogTypeText, Rating: 3, LogDate: at}, true},
		{"missing title", models.JournalLog{LogType: models.LogTypeText, LogDate: at}, true},
		{"zero date", models.JournalLog{Title: "Note", LogType: models.LogTypeText}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJournalLog(tt.log)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateJournalLog() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateSettings(t *testing.T) {
	if err := ValidateSettings(models.Settings{Timezone: "Local", DefaultReminder: "09:00", LookaheadDays: 365}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateSettings(models.Settings{Timezone: "Not/AZone"}); err == nil {
		t.Error("expected error for bogus timezone")
	}
	if err := ValidateSettings(models.Settings{DefaultReminder: "noonish"}); err == nil {
		t.Error("expected error for bad reminder format")
	}
}
