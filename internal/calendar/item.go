// Package calendar turns entity snapshots (tasks, habits, habit logs,
// journal entries) into a unified, date-sorted agenda and derives habit
// completion state and statistics from them. Every function is a pure
// computation over the slices it is handed: no storage, no globals, and an
// injectable "now" so callers control what "today" means.
package calendar

import (
	"time"

	"github.com/jeevansaathi/saathi-cli/internal/models"
)

type ItemType string

const (
	ItemTask     ItemType = "task"
	ItemHabit    ItemType = "habit"
	ItemHabitLog ItemType = "habit_log"
	ItemJournal  ItemType = "journal"
)

// Item is a derived, presentation-agnostic occurrence placed at a point in
// time. Items are constructed fresh on every aggregation pass and never
// mutated in place; a changed source entity requires re-running the
// aggregator.
type Item struct {
	ID          string    `json:"id"`
	Type        ItemType  `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Color       string    `json:"color,omitempty"`
	Icon        string    `json:"icon,omitempty"`
	Completed   bool      `json:"completed"`

	// Back-reference to the source entity; exactly one is non-nil.
	Task    *models.Task       `json:"-"`
	Habit   *models.Habit      `json:"-"`
	Journal *models.JournalLog `json:"-"`
}

// Snapshot bundles the entity slices one aggregation pass operates on. The
// caller is responsible for the four slices representing a mutually
// consistent read; the aggregator does not reconcile across them.
type Snapshot struct {
	Tasks      []models.Task
	Habits     []models.Habit
	HabitLogs  []models.HabitLog
	Journal    []models.JournalLog
	Lists      []models.List
	FocusAreas []models.FocusArea
}

// Options tunes an aggregation pass. Zero values fall back to the
// application defaults in constants.
type Options struct {
	LookaheadDays   int    // expansion cap for habits without an end date
	DefaultReminder string // HH:MM placement when a habit has no reminders
}
