package storage

import (
	"database/sql"
	"fmt"

	"github.com/jeevansaathi/saathi-cli/internal/models"
)

const taskColumns = `id, title, description, due_date, completed, list_id, priority, created_at, deleted_at`

func (s *SQLiteStore) AddTask(task models.Task) error {
	return s.UpdateTask(task)
}

func (s *SQLiteStore) UpdateTask(task models.Task) error {
	_, err := s.db.Exec(`
		INSERT INTO tasks (`+taskColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
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

func (s *SQLiteStore) GetTask(id string) (models.Task, error) {
	row := s.db.QueryRow(`SELECT `+taskColumns+` FROM tasks WHERE id = ? AND deleted_at IS NULL`, id)
	return scanTask(row)
}

func (s *SQLiteStore) GetAllTasks(includeDeleted bool) ([]models.Task, error) {
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

func (s *SQLiteStore) DeleteTask(id string) error {
	return softDelete(s.db, "tasks", "?", id)
}

func (s *SQLiteStore) RestoreTask(id string) error {
	return restore(s.db, "tasks", "?", id)
}

func scanTask(row scanner) (models.Task, error) {
	var t models.Task
	var createdAt string
	var dueDate, deletedAt sql.NullString

	err := row.Scan(&t.ID, &t.Title, &t.Description, &dueDate, &t.Completed,
		&t.ListID, &t.Priority, &createdAt, &deletedAt)
	if err != nil {
		return models.Task{}, err
	}

	if t.DueDate, err = decodeTimePtr(dueDate); err != nil {
		return models.Task{}, fmt.Errorf("failed to parse due_date for task %s: %w", t.ID, err)
	}
	if t.CreatedAt, err = decodeTime(createdAt); err != nil {
		return models.Task{}, fmt.Errorf("failed to parse created_at for task %s: %w", t.ID, err)
	}
	if t.DeletedAt, err = decodeTimePtr(deletedAt); err != nil {
		return models.Task{}, fmt.Errorf("failed to parse deleted_at for task %s: %w", t.ID, err)
	}
	return t, nil
}
