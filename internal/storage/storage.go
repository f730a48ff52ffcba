package storage

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jeevansaathi/saathi-cli/internal/models"
)

// Provider is the persistence surface the CLI works against. The agenda and
// statistics logic never touches it; commands read whole-entity snapshots
// here and hand plain slices to the calendar package.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetHabitByTitle(title string) (models.Habit, error)
	GetAllHabits(includeDeleted bool) ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	DeleteHabit(id string) error
	RestoreHabit(id string) error

	// Habit logs. GetAllHabitLogs returns logs in write order (created_at
	// ascending) so downstream duplicate resolution sees recency last.
	AddHabitLog(models.HabitLog) error
	GetHabitLog(habitID, day string) (models.HabitLog, error)
	GetHabitLogs(habitID string) ([]models.HabitLog, error)
	GetAllHabitLogs() ([]models.HabitLog, error)
	DeleteHabitLog(id string) error

	// Tasks
	AddTask(models.Task) error
	GetTask(id string) (models.Task, error)
	GetAllTasks(includeDeleted bool) ([]models.Task, error)
	UpdateTask(models.Task) error
	DeleteTask(id string) error
	RestoreTask(id string) error

	// Journal
	AddJournalLog(models.JournalLog) error
	GetAllJournalLogs() ([]models.JournalLog, error)
	DeleteJournalLog(id string) error

	// Lookups
	AddList(models.List) error
	GetAllLists() ([]models.List, error)
	AddFocusArea(models.FocusArea) error
	GetAllFocusAreas() ([]models.FocusArea, error)

	// Goals
	AddGoal(models.Goal) error
	GetAllGoals() ([]models.Goal, error)
	AddMilestone(models.Milestone) error
	GetAllMilestones() ([]models.Milestone, error)

	// Utils
	GetConfigPath() string
}

// NewStore picks a backend from the config string: a PostgreSQL connection
// string selects the postgres store, anything else is treated as a SQLite
// file path.
func NewStore(config string) Provider {
	if strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://") {
		return NewPostgresStore(config)
	}
	return NewSQLiteStore(ExpandPath(config))
}

// HasEmbeddedCredentials reports whether a connection string carries a
// password inline. Embedded credentials end up in shell history and process
// listings, so the CLI refuses them.
func HasEmbeddedCredentials(connStr string) bool {
	u, err := url.Parse(connStr)
	if err != nil {
		return false
	}
	if u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/"))
	}
	return path
}
