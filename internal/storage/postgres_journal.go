package storage

import (
	"github.com/jeevansaathi/saathi-cli/internal/models"
)

func (s *PostgresStore) AddJournalLog(log models.JournalLog) error {
	checklist, err := encodeJSON(log.Checklist)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO journal_logs (`+journalColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
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

func (s *PostgresStore) GetAllJournalLogs() ([]models.JournalLog, error) {
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

func (s *PostgresStore) DeleteJournalLog(id string) error {
	return softDelete(s.db, "journal_logs", "$", id)
}
