package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jeevansaathi/saathi-cli/internal/constants"
	"github.com/jeevansaathi/saathi-cli/internal/models"
)

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := createSchema(s.db); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return s.seedDefaults()
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

// seedDefaults writes the default settings row and the Inbox list if they
// are not present yet.
func (s *SQLiteStore) seedDefaults() error {
	if _, err := s.GetSettings(); err != nil {
		defaults := models.Settings{
			Timezone:        constants.DefaultTimezone,
			DefaultReminder: constants.DefaultReminderTime,
			LookaheadDays:   constants.MaxLookaheadDays,
		}
		if err := s.SaveSettings(defaults); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	var count int
	if err := s.db.QueryRow(`SELECT count(*) FROM lists WHERE is_default = TRUE`).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		inbox := models.List{ID: "inbox", Name: constants.DefaultListName, Default: true}
		if err := s.AddList(inbox); err != nil {
			return fmt.Errorf("failed to seed default list: %w", err)
		}
	}
	return nil
}

// createSchema is shared between backends; the statements stick to the SQL
// subset both SQLite and PostgreSQL accept.
func createSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			timezone TEXT NOT NULL,
			default_reminder TEXT NOT NULL,
			lookahead_days INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS habits (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			type TEXT NOT NULL,
			frequency_type TEXT NOT NULL,
			frequency_times INTEGER NOT NULL DEFAULT 0,
			frequency_days TEXT NOT NULL DEFAULT '[]',
			status TEXT NOT NULL,
			start_date TEXT NOT NULL,
			end_date TEXT,
			daily_target REAL NOT NULL DEFAULT 0,
			total_target REAL NOT NULL DEFAULT 0,
			target_comparison TEXT NOT NULL DEFAULT '',
			checklist TEXT NOT NULL DEFAULT '[]',
			reminders TEXT NOT NULL DEFAULT '[]',
			color TEXT NOT NULL DEFAULT '',
			icon TEXT NOT NULL DEFAULT '',
			focus_area_id TEXT NOT NULL DEFAULT '',
			goal_id TEXT NOT NULL DEFAULT '',
			milestone_id TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			deleted_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS habit_logs (
			id TEXT PRIMARY KEY,
			habit_id TEXT NOT NULL,
			day TEXT NOT NULL,
			status TEXT NOT NULL,
			value REAL NOT NULL DEFAULT 0,
			completed_items TEXT NOT NULL DEFAULT '[]',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			deleted_at TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_habit_logs_habit_day ON habit_logs (habit_id, day)`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			due_date TEXT,
			completed BOOLEAN NOT NULL DEFAULT FALSE,
			list_id TEXT NOT NULL DEFAULT '',
			priority INTEGER NOT NULL DEFAULT 1,
			created_at TEXT NOT NULL,
			deleted_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS journal_logs (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			log_date TEXT NOT NULL,
			focus_id TEXT NOT NULL DEFAULT '',
			log_type TEXT NOT NULL,
			rating INTEGER NOT NULL DEFAULT 0,
			checklist TEXT NOT NULL DEFAULT '[]',
			completed BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TEXT NOT NULL,
			deleted_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS lists (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			color TEXT NOT NULL DEFAULT '',
			icon TEXT NOT NULL DEFAULT '',
			is_default BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS focus_areas (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			color TEXT NOT NULL DEFAULT '',
			icon TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS goals (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			focus_area_id TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL,
			target_date TEXT,
			created_at TEXT NOT NULL,
			deleted_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS milestones (
			id TEXT PRIMARY KEY,
			goal_id TEXT NOT NULL,
			title TEXT NOT NULL,
			status TEXT NOT NULL,
			target_date TEXT,
			created_at TEXT NOT NULL,
			deleted_at TEXT
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Column encoding helpers shared by both backends. Timestamps are stored as
// RFC3339 text, optional timestamps as NULL, and slice fields as JSON.

func encodeTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func decodeTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

func encodeTimePtr(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: encodeTime(*t), Valid: true}
}

func decodeTimePtr(ns sql.NullString) (*time.Time, error) {
	if !ns.Valid {
		return nil, nil
	}
	t, err := decodeTime(ns.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func encodeJSON(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeJSON(s string, v interface{}) error {
	if s == "" {
		return nil
	}
	return json.Unmarshal([]byte(s), v)
}
