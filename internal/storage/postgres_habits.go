package storage

import (
	"github.com/jeevansaathi/saathi-cli/internal/models"
)

func (s *PostgresStore) AddHabit(habit models.Habit) error {
	return s.UpdateHabit(habit)
}

func (s *PostgresStore) UpdateHabit(habit models.Habit) error {
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
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
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

func (s *PostgresStore) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`SELECT `+habitColumns+` FROM habits WHERE id = $1 AND deleted_at IS NULL`, id)
	return scanHabit(row)
}

func (s *PostgresStore) GetHabitByTitle(title string) (models.Habit, error) {
	row := s.db.QueryRow(`SELECT `+habitColumns+` FROM habits WHERE title = $1 AND deleted_at IS NULL`, title)
	return scanHabit(row)
}

func (s *PostgresStore) GetAllHabits(includeDeleted bool) ([]models.Habit, error) {
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

func (s *PostgresStore) DeleteHabit(id string) error {
	return softDelete(s.db, "habits", "$", id)
}

func (s *PostgresStore) RestoreHabit(id string) error {
	return restore(s.db, "habits", "$", id)
}

func (s *PostgresStore) AddHabitLog(log models.HabitLog) error {
	items, err := encodeJSON(log.CompletedItems)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO habit_logs (id, habit_id, day, status, value, completed_items, created_at, updated_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
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

func (s *PostgresStore) GetHabitLog(habitID, day string) (models.HabitLog, error) {
	row := s.db.QueryRow(`
		SELECT id, habit_id, day, status, value, completed_items, created_at, updated_at, deleted_at
		FROM habit_logs WHERE habit_id = $1 AND day = $2 AND deleted_at IS NULL
		ORDER BY updated_at DESC LIMIT 1`, habitID, day)
	return scanHabitLog(row)
}

func (s *PostgresStore) GetHabitLogs(habitID string) ([]models.HabitLog, error) {
	return s.queryHabitLogs(`
		SELECT id, habit_id, day, status, value, completed_items, created_at, updated_at, deleted_at
		FROM habit_logs WHERE habit_id = $1 AND deleted_at IS NULL
		ORDER BY created_at`, habitID)
}

func (s *PostgresStore) GetAllHabitLogs() ([]models.HabitLog, error) {
	return s.queryHabitLogs(`
		SELECT id, habit_id, day, status, value, completed_items, created_at, updated_at, deleted_at
		FROM habit_logs WHERE deleted_at IS NULL
		ORDER BY created_at`)
}

func (s *PostgresStore) queryHabitLogs(query string, args ...interface{}) ([]models.HabitLog, error) {
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

func (s *PostgresStore) DeleteHabitLog(id string) error {
	return softDelete(s.db, "habit_logs", "$", id)
}
