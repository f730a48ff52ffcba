package storage

import (
	"github.com/jeevansaathi/saathi-cli/internal/models"
)

func (s *PostgresStore) GetSettings() (models.Settings, error) {
	var settings models.Settings
	err := s.db.QueryRow(`SELECT timezone, default_reminder, lookahead_days FROM settings WHERE id = 1`).
		Scan(&settings.Timezone, &settings.DefaultReminder, &settings.LookaheadDays)
	if err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}

func (s *PostgresStore) SaveSettings(settings models.Settings) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (id, timezone, default_reminder, lookahead_days)
		VALUES (1, $1, $2, $3)
		ON CONFLICT(id) DO UPDATE SET
			timezone = excluded.timezone,
			default_reminder = excluded.default_reminder,
			lookahead_days = excluded.lookahead_days`,
		settings.Timezone, settings.DefaultReminder, settings.LookaheadDays)
	return err
}
