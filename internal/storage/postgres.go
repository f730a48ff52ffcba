package storage

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/jeevansaathi/saathi-cli/internal/constants"
	"github.com/jeevansaathi/saathi-cli/internal/logger"
	"github.com/jeevansaathi/saathi-cli/internal/models"
)

type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	s := &PostgresStore{connStr: connStr}
	s.ensureSearchPath()
	return s
}

// ensureSearchPath pins queries to the app's own schema so a shared database
// does not leak tables into public.
func (s *PostgresStore) ensureSearchPath() {
	u, err := url.Parse(s.connStr)
	if err != nil {
		logger.Warn("Failed to parse Postgres connection string", "error", err)
		return
	}
	q := u.Query()
	if q.Get("search_path") == "" {
		q.Set("search_path", constants.AppName)
		u.RawQuery = q.Encode()
		s.connStr = u.String()
	}
}

func (s *PostgresStore) open() (*sql.DB, error) {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	return db, nil
}

func (s *PostgresStore) ping() error {
	if err := s.db.Ping(); err != nil {
		if strings.Contains(err.Error(), "SSL is not enabled on the server") && !hasSSLMode(s.connStr) {
			return fmt.Errorf("failed to connect to database: %w (hint: try adding ?sslmode=disable to your connection string)", err)
		}
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	return nil
}

func (s *PostgresStore) Init() error {
	db, err := s.open()
	if err != nil {
		return err
	}

	if _, err := db.Exec("CREATE SCHEMA IF NOT EXISTS " + constants.AppName); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}
	s.db = db

	if err := s.ping(); err != nil {
		return err
	}
	if err := createSchema(s.db); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return s.seedDefaults()
}

func (s *PostgresStore) Load() error {
	if s.db != nil {
		return nil
	}

	db, err := s.open()
	if err != nil {
		return err
	}
	s.db = db

	if err := s.ping(); err != nil {
		return err
	}

	var exists bool
	err = s.db.QueryRow(`SELECT EXISTS (
		SELECT 1 FROM information_schema.tables
		WHERE table_schema = $1 AND table_name = 'settings')`, constants.AppName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check schema: %w", err)
	}
	if !exists {
		return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresStore) GetConfigPath() string {
	return s.connStr
}

func (s *PostgresStore) seedDefaults() error {
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

// hasSSLMode reports whether the connection string already carries an
// sslmode parameter, in either URL or DSN form.
func hasSSLMode(connStr string) bool {
	if u, err := url.Parse(connStr); err == nil && u.Scheme != "" {
		for key := range u.Query() {
			if strings.EqualFold(key, "sslmode") {
				return true
			}
		}
	}
	for _, part := range strings.Fields(connStr) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 && strings.EqualFold(kv[0], "sslmode") {
			return true
		}
	}
	return false
}
