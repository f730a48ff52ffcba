package storage

import (
	"github.com/jeevansaathi/saathi-cli/internal/models"
)

func (s *PostgresStore) AddTask(task models.Task) error {
	return s.UpdateTask(task)
}

func (s *PostgresStore) UpdateTask(task models.Task) error {
	_, err := s.db.Exec(`
		INSERT INTO tasks (`+taskColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			due_date = excluded.due_date,
			completed = excluded.completed,
			list_id = excluded.list_id,
			priority = excluded.priority,
			deleted_at = excluded.deleted_at`,
		task.ID, task.Title, task.Description, encodeTimePtr(task.DueDate),
		task.Completed, task.ListID, task.Priority,
		encodeTime(task.CreatedAt), encodeTimePtr(task.DeletedAt))
	return err
}

func (s *PostgresStore) GetTask(id string) (models.Task, error) {
	row := s.db.QueryRow(`SELECT `+taskColumns+` FROM tasks WHERE id = $1 AND deleted_at IS NULL`, id)
	return scanTask(row)
}

func (s *PostgresStore) GetAllTasks(includeDeleted bool) ([]models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks`
	if !includeDeleted {
		query += ` WHERE deleted_at IS NULL`
	}
	query += ` ORDER BY created_at`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *PostgresStore) DeleteTask(id string) error {
	return softDelete(s.db, "tasks", "$", id)
}

func (s *PostgresStore) RestoreTask(id string) error {
	return restore(s.db, "tasks", "$", id)
}
