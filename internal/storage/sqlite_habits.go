package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jeevansaathi/saathi-cli/internal/models"
)

const habitColumns = `id, title, description, type, frequency_type, frequency_times, frequency_days,
	status, start_date, end_date, daily_target, total_target, target_comparison,
	checklist, reminders, color, icon, focus_area_id, goal_id, milestone_id, created_at, deleted_at`

func (s *SQLiteStore) AddHabit(habit models.Habit) error {
	return s.UpdateHabit(habit)
}

func (s *SQLiteStore) UpdateHabit(habit models.Habit) error {
	days, err := encodeJSON(habit.Frequency.Days)
	if err != nil {
		return err
	}
	checklist, err := encodeJSON(habit.Checklist)
	if err != nil {
		return err
	}
	reminders, err := encodeJSON(habit.Reminders)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO habits (`+habitColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			type = excluded.type,
			frequency_type = excluded.frequency_type,
			frequency_times = excluded.frequency_times,
			frequency_days = excluded.frequency_days,
			status = excluded.status,
			start_date = excluded.start_date,
			end_date = excluded.end_date,
			daily_target = excluded.daily_target,
			total_target = excluded.total_target,
			target_comparison = excluded.target_comparison,
			checklist = excluded.checklist,
			reminders = excluded.reminders,
			color = excluded.color,
			icon = excluded.icon,
			focus_area_id = excluded.focus_area_id,
			goal_id = excluded.goal_id,
			milestone_id = excluded.milestone_id,
			deleted_at = excluded.deleted_at`,
		habit.ID, habit.Title, habit.Description, string(habit.Type),
		string(habit.Frequency.Type), habit.Frequency.Times, days,
		string(habit.Status), encodeTime(habit.StartDate), encodeTimePtr(habit.EndDate),
		habit.DailyTarget, habit.TotalTarget, string(habit.TargetComparison),
		checklist, reminders, habit.Color, habit.Icon,
		habit.FocusAreaID, habit.GoalID, habit.MilestoneID,
		encodeTime(habit.CreatedAt), encodeTimePtr(habit.DeletedAt))
	return err
}

func (s *SQLiteStore) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`SELECT `+habitColumns+` FROM habits WHERE id = ? AND deleted_at IS NULL`, id)
	return scanHabit(row)
}

func (s *SQLiteStore) GetHabitByTitle(title string) (models.Habit, error) {
	row := s.db.QueryRow(`SELECT `+habitColumns+` FROM habits WHERE title = ? AND deleted_at IS NULL`, title)
	return scanHabit(row)
}

func (s *SQLiteStore) GetAllHabits(includeDeleted bool) ([]models.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits`
	if !includeDeleted {
		query += ` WHERE deleted_at IS NULL`
	}
	query += ` ORDER BY created_at`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (s *SQLiteStore) DeleteHabit(id string) error {
	return softDelete(s.db, "habits", "?", id)
}

func (s *SQLiteStore) RestoreHabit(id string) error {
	return restore(s.db, "habits", "?", id)
}

// Habit logs

func (s *SQLiteStore) AddHabitLog(log models.HabitLog) error {
	items, err := encodeJSON(log.CompletedItems)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO habit_logs (id, habit_id, day, status, value, completed_items, created_at, updated_at, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			status = excluded.status,
			value = excluded.value,
			completed_items = excluded.completed_items,
			updated_at = excluded.updated_at,
			deleted_at = excluded.deleted_at`,
		log.ID, log.HabitID, log.Day, string(log.Status), log.Value, items,
		encodeTime(log.CreatedAt), encodeTime(log.UpdatedAt), encodeTimePtr(log.DeletedAt))
	return err
}

// GetHabitLog returns the most recently updated log for the habit and day.
func (s *SQLiteStore) GetHabitLog(habitID, day string) (models.HabitLog, error) {
	row := s.db.QueryRow(`
		SELECT id, habit_id, day, status, value, completed_items, created_at, updated_at, deleted_at
		FROM habit_logs WHERE habit_id = ? AND day = ? AND deleted_at IS NULL
		ORDER BY updated_at DESC LIMIT 1`, habitID, day)
	return scanHabitLog(row)
}

func (s *SQLiteStore) GetHabitLogs(habitID string) ([]models.HabitLog, error) {
	return s.queryHabitLogs(`
		SELECT id, habit_id, day, status, value, completed_items, created_at, updated_at, deleted_at
		FROM habit_logs WHERE habit_id = ? AND deleted_at IS NULL
		ORDER BY created_at`, habitID)
}

func (s *SQLiteStore) GetAllHabitLogs() ([]models.HabitLog, error) {
	return s.queryHabitLogs(`
		SELECT id, habit_id, day, status, value, completed_items, created_at, updated_at, deleted_at
		FROM habit_logs WHERE deleted_at IS NULL
		ORDER BY created_at`)
}

func (s *SQLiteStore) queryHabitLogs(query string, args ...interface{}) ([]models.HabitLog, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.HabitLog
	for rows.Next() {
		l, err := scanHabitLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (s *SQLiteStore) DeleteHabitLog(id string) error {
	return softDelete(s.db, "habit_logs", "?", id)
}

// scanner abstracts sql.Row and sql.Rows so scan helpers serve both.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanHabit(row scanner) (models.Habit, error) {
	var h models.Habit
	var habitType, freqType, status, comparison string
	var days, checklist, reminders string
	var startDate, createdAt string
	var endDate, deletedAt sql.NullString

	err := row.Scan(&h.ID, &h.Title, &h.Description, &habitType, &freqType,
		&h.Frequency.Times, &days, &status, &startDate, &endDate,
		&h.DailyTarget, &h.TotalTarget, &comparison, &checklist, &reminders,
		&h.Color, &h.Icon, &h.FocusAreaID, &h.GoalID, &h.MilestoneID,
		&createdAt, &deletedAt)
	if err != nil {
		return models.Habit{}, err
	}

	h.Type = models.HabitType(habitType)
	h.Frequency.Type = models.FrequencyType(freqType)
	h.Status = models.HabitStatus(status)
	h.TargetComparison = models.TargetComparison(comparison)

	if err := decodeJSON(days, &h.Frequency.Days); err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse frequency days for habit %s: %w", h.ID, err)
	}
	if err := decodeJSON(checklist, &h.Checklist); err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse checklist for habit %s: %w", h.ID, err)
	}
	if err := decodeJSON(reminders, &h.Reminders); err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse reminders for habit %s: %w", h.ID, err)
	}

	if h.StartDate, err = decodeTime(startDate); err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse start_date for habit %s: %w", h.ID, err)
	}
	if h.CreatedAt, err = decodeTime(createdAt); err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse created_at for habit %s: %w", h.ID, err)
	}
	if h.EndDate, err = decodeTimePtr(endDate); err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse end_date for habit %s: %w", h.ID, err)
	}
	if h.DeletedAt, err = decodeTimePtr(deletedAt); err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse deleted_at for habit %s: %w", h.ID, err)
	}
	return h, nil
}

func scanHabitLog(row scanner) (models.HabitLog, error) {
	var l models.HabitLog
	var status, items, createdAt, updatedAt string
	var deletedAt sql.NullString

	err := row.Scan(&l.ID, &l.HabitID, &l.Day, &status, &l.Value, &items,
		&createdAt, &updatedAt, &deletedAt)
	if err != nil {
		return models.HabitLog{}, err
	}

	l.Status = models.LogStatus(status)
	if err := decodeJSON(items, &l.CompletedItems); err != nil {
		return models.HabitLog{}, fmt.Errorf("failed to parse completed_items for log %s: %w", l.ID, err)
	}
	if l.CreatedAt, err = decodeTime(createdAt); err != nil {
		return models.HabitLog{}, fmt.Errorf("failed to parse created_at for log %s: %w", l.ID, err)
	}
	if l.UpdatedAt, err = decodeTime(updatedAt); err != nil {
		return models.HabitLog{}, fmt.Errorf("failed to parse updated_at for log %s: %w", l.ID, err)
	}
	if l.DeletedAt, err = decodeTimePtr(deletedAt); err != nil {
		return models.HabitLog{}, fmt.Errorf("failed to parse deleted_at for log %s: %w", l.ID, err)
	}
	return l, nil
}

// softDelete marks a row deleted; placeholder is the backend's parameter
// marker for the id.
func softDelete(db *sql.DB, table, placeholder, id string) error {
	result, err := db.Exec(
		`UPDATE `+table+` SET deleted_at = `+stamp(placeholder, 1)+` WHERE id = `+stamp(placeholder, 2)+` AND deleted_at IS NULL`,
		encodeTime(time.Now()), id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("record not found or already deleted")
	}
	return nil
}

func restore(db *sql.DB, table, placeholder, id string) error {
	result, err := db.Exec(
		`UPDATE `+table+` SET deleted_at = NULL WHERE id = `+stamp(placeholder, 1)+` AND deleted_at IS NOT NULL`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("record not found or not deleted")
	}
	return nil
}

// stamp renders the nth parameter marker: "?" stays positional for SQLite,
// "$" becomes $n for PostgreSQL.
func stamp(placeholder string, n int) string {
	if placeholder == "$" {
		return fmt.Sprintf("$%d", n)
	}
	return placeholder
}
