package storage

import (
	"database/sql"
	"fmt"

	"github.com/jeevansaathi/saathi-cli/internal/models"
)

const journalColumns = `id, title, description, log_date, focus_id, log_type, rating, checklist, completed, created_at, deleted_at`

func (s *SQLiteStore) AddJournalLog(log models.JournalLog) error {
	checklist, err := encodeJSON(log.Checklist)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO journal_logs (`+journalColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			log_date = excluded.log_date,
			focus_id = excluded.focus_id,
			log_type = excluded.log_type,
			rating = excluded.rating,
			checklist = excluded.checklist,
			completed = excluded.completed,
			deleted_at = excluded.deleted_at`,
		log.ID, log.Title, log.Description, encodeTime(log.LogDate), log.FocusID,
		string(log.LogType), log.Rating, checklist, log.Completed,
		encodeTime(log.CreatedAt), encodeTimePtr(log.DeletedAt))
	return err
}

func (s *SQLiteStore) GetAllJournalLogs() ([]models.JournalLog, error) {
	rows, err := s.db.Query(`SELECT ` + journalColumns + ` FROM journal_logs WHERE deleted_at IS NULL ORDER BY log_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.JournalLog
	for rows.Next() {
		l, err := scanJournalLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (s *SQLiteStore) DeleteJournalLog(id string) error {
	return softDelete(s.db, "journal_logs", "?", id)
}

func scanJournalLog(row scanner) (models.JournalLog, error) {
	var l models.JournalLog
	var logType, checklist, logDate, createdAt string
	var deletedAt sql.NullString

	err := row.Scan(&l.ID, &l.Title, &l.Description, &logDate, &l.FocusID,
		&logType, &l.Rating, &checklist, &l.Completed, &createdAt, &deletedAt)
	if err != nil {
		return models.JournalLog{}, err
	}

	l.LogType = models.LogType(logType)
	if err := decodeJSON(checklist, &l.Checklist); err != nil {
		return models.JournalLog{}, fmt.Errorf("failed to parse checklist for journal log %s: %w", l.ID, err)
	}
	if l.LogDate, err = decodeTime(logDate); err != nil {
		return models.JournalLog{}, fmt.Errorf("failed to parse log_date for journal log %s: %w", l.ID, err)
	}
	if l.CreatedAt, err = decodeTime(createdAt); err != nil {
		return models.JournalLog{}, fmt.Errorf("failed to parse created_at for journal log %s: %w", l.ID, err)
	}
	if l.DeletedAt, err = decodeTimePtr(deletedAt); err != nil {
		return models.JournalLog{}, fmt.Errorf("failed to parse deleted_at for journal log %s: %w", l.ID, err)
	}
	return l, nil
}
