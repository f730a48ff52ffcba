package validation

import (
	"fmt"

	"github.com/jeevansaathi/saathi-cli/internal/constants"
	"github.com/jeevansaathi/saathi-cli/internal/models"
	"github.com/jeevansaathi/saathi-cli/internal/utils"
)

// ValidateHabit checks a habit's fields before it is persisted.
func ValidateHabit(habit models.Habit) error {
	if habit.Title == "" {
		return fmt.Errorf("habit title is required")
	}

	switch habit.Type {
	case models.HabitBinary, models.HabitCount, models.HabitDuration, models.HabitChecklist:
	default:
		return fmt.Errorf("unknown habit type %q", habit.Type)
	}

	switch habit.Status {
	case models.HabitYetToStart, models.HabitInProgress, models.HabitCompleted, models.HabitAbandoned:
	default:
		return fmt.Errorf("unknown habit status %q", habit.Status)
	}

	switch habit.Frequency.Type {
	case models.FrequencyDaily:
	case models.FrequencyWeekly, models.FrequencyMonthly:
		if habit.Frequency.Times < 0 {
			return fmt.Errorf("frequency times must not be negative")
		}
	case models.FrequencySpecificDays:
		if len(habit.Frequency.Days) == 0 {
			return fmt.Errorf("specific_days frequency requires at least one weekday")
		}
		for _, d := range habit.Frequency.Days {
			if d < 0 || d > 6 {
				return fmt.Errorf("invalid weekday %d", d)
			}
		}
	default:
		return fmt.Errorf("unknown frequency type %q", habit.Frequency.Type)
	}

	switch habit.TargetComparison {
	case "", models.CompareAtLeast, models.CompareExactly, models.CompareLessThan, models.CompareAnyValue:
	default:
		return fmt.Errorf("unknown target comparison %q", habit.TargetComparison)
	}

	if habit.DailyTarget < 0 || habit.TotalTarget < 0 {
		return fmt.Errorf("targets must not be negative")
	}

	if habit.StartDate.IsZero() {
		return fmt.Errorf("habit start date is required")
	}
	if habit.EndDate != nil && habit.EndDate.Before(habit.StartDate) {
		return fmt.Errorf("end date must not be before start date")
	}

	for _, rem := range habit.Reminders {
		if !utils.ValidateTimeFormat(rem) {
			return fmt.Errorf("invalid reminder time %q (expected HH:MM)", rem)
		}
	}

	if habit.Type == models.HabitChecklist && len(habit.Checklist) == 0 {
		return fmt.Errorf("checklist habit requires at least one checklist item")
	}

	return nil
}

// ValidateHabitLog checks a habit log before it is persisted.
func ValidateHabitLog(log models.HabitLog) error {
	if log.HabitID == "" {
		return fmt.Errorf("habit id is required")
	}
	if !utils.ValidateDateFormat(log.Day) {
		return fmt.Errorf("invalid log day %q (expected YYYY-MM-DD)", log.Day)
	}
	switch log.Status {
	case models.LogCompleted, models.LogSkipped, models.LogMissed, models.LogPartial:
	default:
		return fmt.Errorf("unknown log status %q", log.Status)
	}
	if log.Value < 0 {
		return fmt.Errorf("log value must not be negative")
	}
	return nil
}

// ValidateTask checks a task's fields before it is persisted.
func ValidateTask(task models.Task) error {
	if task.Title == "" {
		return fmt.Errorf("task title is required")
	}
	if task.Priority < constants.MinTaskPriority || task.Priority > constants.MaxTaskPriority {
		return fmt.Errorf("priority must be between %d and %d", constants.MinTaskPriority, constants.MaxTaskPriority)
	}
	return nil
}

// ValidateJournalLog checks a journal entry before it is persisted.
func ValidateJournalLog(log models.JournalLog) error {
	if log.Title == "" {
		return fmt.Errorf("journal title is required")
	}
	switch log.LogType {
	case models.LogTypeText, models.LogTypeChecklist, models.LogTypeRating:
	default:
		return fmt.Errorf("unknown log type %q", log.LogType)
	}
	if log.LogType == models.LogTypeRating {
		if log.Rating < constants.MinRating || log.Rating > constants.MaxRating {
			return fmt.Errorf("rating must be between %d and %d", constants.MinRating, constants.MaxRating)
		}
	} else if log.Rating != 0 {
		return fmt.Errorf("rating is only valid for rating entries")
	}
	if log.LogDate.IsZero() {
		return fmt.Errorf("journal log date is required")
	}
	return nil
}

// ValidateSettings checks application settings before they are persisted.
func ValidateSettings(settings models.Settings) error {
	if !utils.ValidateTimezone(settings.Timezone) {
		return fmt.Errorf("invalid timezone %q", settings.Timezone)
	}
	if settings.DefaultReminder != "" && !utils.ValidateTimeFormat(settings.DefaultReminder) {
		return fmt.Errorf("invalid default reminder %q (expected HH:MM)", settings.DefaultReminder)
	}
	if settings.LookaheadDays < 0 {
		return fmt.Errorf("lookahead days must not be negative")
	}
	return nil
}
