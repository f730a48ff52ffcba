package calendar

import (
	"math"
	"time"

	"github.com/jeevansaathi/saathi-cli/internal/models"
	"github.com/jeevansaathi/saathi-cli/internal/utils"
)

// Stats summarizes a habit's log history.
type Stats struct {
	CurrentStreak    int     `json:"current_streak"`
	BestStreak       int     `json:"best_streak"`
	CompletionRate   int     `json:"completion_rate"` // percent, rounded
	TotalCompletions float64 `json:"total_completions"`
}

// HabitStats computes streaks, completion rate and totals for a habit from
// its full log history. A habit with no logs, or one whose start date is
// still in the future, yields zero stats.
func HabitStats(habit models.Habit, logs []models.HabitLog, now time.Time) Stats {
	byDay := logsByDay(habit, logs)

	today := utils.StartOfDay(now)
	start := utils.StartOfDay(habit.StartDate)
	if start.After(today) {
		return Stats{}
	}

	// The active range ends today, or at the end date if that is earlier.
	end := today
	if habit.EndDate != nil {
		if e := utils.StartOfDay(*habit.EndDate); e.Before(end) {
			end = e
		}
	}
	if end.Before(start) {
		return Stats{}
	}

	completed := func(d time.Time) bool {
		log, ok := byDay[utils.DayString(d)]
		return ok && logSatisfies(habit, log)
	}

	var stats Stats

	for d := end; !d.Before(start) && completed(d); d = d.AddDate(0, 0, -1) {
		stats.CurrentStreak++
	}

	run := 0
	completedDays := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if completed(d) {
			run++
			completedDays++
			if run > stats.BestStreak {
				stats.BestStreak = run
			}
		} else {
			run = 0
		}
	}

	if expected := utils.ExpectedDays(habit.Frequency, start, end); expected > 0 {
		stats.CompletionRate = int(math.Round(float64(completedDays) / float64(expected) * 100))
	}

	stats.TotalCompletions = totalCompletions(habit, byDay)
	return stats
}

// logsByDay collapses a habit's logs to one authoritative log per day,
// using the same recency rule as LogFor.
func logsByDay(habit models.Habit, logs []models.HabitLog) map[string]models.HabitLog {
	byDay := make(map[string]models.HabitLog)
	for _, l := range logs {
		if l.HabitID != habit.ID {
			continue
		}
		if prev, ok := byDay[l.Day]; ok && l.UpdatedAt.Before(prev.UpdatedAt) {
			continue
		}
		byDay[l.Day] = l
	}
	return byDay
}

// totalCompletions sums what "total" means for each habit type: completed
// days for binary habits, logged values for count/duration habits, and
// checked-off item counts for checklist habits. Value sums include days
// that fell short of the target.
func totalCompletions(habit models.Habit, byDay map[string]models.HabitLog) float64 {
	var total float64
	for _, log := range byDay {
		switch habit.Type {
		case models.HabitBinary:
			if logSatisfies(habit, log) {
				total++
			}
		case models.HabitCount, models.HabitDuration:
			total += log.Value
		case models.HabitChecklist:
			total += float64(len(log.CompletedItems))
		}
	}
	return total
}
