package calendar

import (
	"math"
	"time"
)

// ProgressStats summarizes completion within a date range.
type ProgressStats struct {
	TasksTotal     int `json:"tasks_total"`
	TasksCompleted int `json:"tasks_completed"`
	TaskRate       int `json:"task_rate"` // percent, rounded

	HabitsTotal     int `json:"habits_total"`
	HabitsCompleted int `json:"habits_completed"`
	HabitRate       int `json:"habit_rate"` // percent, rounded

	JournalEntries int `json:"journal_entries"`
}

// Progress computes completion counts and rates for the items within
// [start, end]. Empty categories report a zero rate rather than dividing by
// zero.
func Progress(items []Item, start, end time.Time) ProgressStats {
	var stats ProgressStats
	for _, item := range ItemsBetween(items, start, end) {
		switch item.Type {
		case ItemTask:
			stats.TasksTotal++
			if item.Completed {
				stats.TasksCompleted++
			}
		case ItemHabit:
			stats.HabitsTotal++
			if item.Completed {
				stats.HabitsCompleted++
			}
		case ItemJournal:
			stats.JournalEntries++
		}
	}
	stats.TaskRate = rate(stats.TasksCompleted, stats.TasksTotal)
	stats.HabitRate = rate(stats.HabitsCompleted, stats.HabitsTotal)
	return stats
}

func rate(done, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}
