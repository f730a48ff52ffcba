package calendar

import (
	"time"

	"github.com/jeevansaathi/saathi-cli/internal/models"
	"github.com/jeevansaathi/saathi-cli/internal/utils"
)

// LogFor returns the authoritative log for the habit on the given calendar
// date. When a day carries duplicates, the log with the latest UpdatedAt
// wins; ties (including zero timestamps) go to the later array position, so
// callers that supply logs in write order keep last-write-wins semantics.
func LogFor(habit models.Habit, logs []models.HabitLog, date time.Time) (models.HabitLog, bool) {
	day := utils.DayString(date)
	var best models.HabitLog
	found := false
	for _, l := range logs {
		if l.HabitID != habit.ID || l.Day != day {
			continue
		}
		if !found || !l.UpdatedAt.Before(best.UpdatedAt) {
			best = l
			found = true
		}
	}
	return best, found
}

// HabitCompletedOn reports whether the habit counts as done on the given
// date. A missing log always means not completed; what a present log means
// depends on the habit type.
func HabitCompletedOn(habit models.Habit, logs []models.HabitLog, date time.Time) bool {
	log, ok := LogFor(habit, logs, date)
	if !ok {
		return false
	}
	return logSatisfies(habit, log)
}

// logSatisfies applies the per-type completion rule to a single day's log.
func logSatisfies(habit models.Habit, log models.HabitLog) bool {
	switch habit.Type {
	case models.HabitBinary:
		return true
	case models.HabitChecklist:
		if len(habit.Checklist) == 0 {
			return false
		}
		done := make(map[string]bool, len(log.CompletedItems))
		for _, id := range log.CompletedItems {
			done[id] = true
		}
		for _, item := range habit.Checklist {
			if !done[item.ID] {
				return false
			}
		}
		return true
	case models.HabitCount, models.HabitDuration:
		return targetMet(habit.TargetComparison, log.Value, habit.DailyTarget)
	default:
		return false
	}
}

// targetMet judges a logged value against a daily target. An empty
// comparison means at_least.
func targetMet(cmp models.TargetComparison, value, target float64) bool {
	switch cmp {
	case models.CompareExactly:
		return target > 0 && value == target
	case models.CompareLessThan:
		// A logged zero satisfies "less than N".
		return target > 0 && value < target
	case models.CompareAnyValue:
		return value > 0
	default:
		return target > 0 && value >= target
	}
}
