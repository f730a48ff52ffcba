package storage

import (
	"database/sql"
	"fmt"

	"github.com/jeevansaathi/saathi-cli/internal/models"
)

func (s *SQLiteStore) AddList(list models.List) error {
	_, err := s.db.Exec(`
		INSERT INTO lists (id, name, color, icon, is_default)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			color = excluded.color,
			icon = excluded.icon,
			is_default = excluded.is_default`,
		list.ID, list.Name, list.Color, list.Icon, list.Default)
	return err
}

func (s *SQLiteStore) GetAllLists() ([]models.List, error) {
	rows, err := s.db.Query(`SELECT id, name, color, icon, is_default FROM lists ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lists []models.List
	for rows.Next() {
		var l models.List
		if err := rows.Scan(&l.ID, &l.Name, &l.Color, &l.Icon, &l.Default); err != nil {
			return nil, err
		}
		lists = append(lists, l)
	}
	return lists, rows.Err()
}

func (s *SQLiteStore) AddFocusArea(focus models.FocusArea) error {
	_, err := s.db.Exec(`
		INSERT INTO focus_areas (id, name, color, icon)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			color = excluded.color,
			icon = excluded.icon`,
		focus.ID, focus.Name, focus.Color, focus.Icon)
	return err
}

func (s *SQLiteStore) GetAllFocusAreas() ([]models.FocusArea, error) {
	rows, err := s.db.Query(`SELECT id, name, color, icon FROM focus_areas ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var focuses []models.FocusArea
	for rows.Next() {
		var f models.FocusArea
		if err := rows.Scan(&f.ID, &f.Name, &f.Color, &f.Icon); err != nil {
			return nil, err
		}
		focuses = append(focuses, f)
	}
	return focuses, rows.Err()
}

func (s *SQLiteStore) AddGoal(goal models.Goal) error {
	_, err := s.db.Exec(`
		INSERT INTO goals (id, title, description, focus_area_id, status, target_date, created_at, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			focus_area_id = excluded.focus_area_id,
			status = excluded.status,
			target_date = excluded.target_date,
			deleted_at = excluded.deleted_at`,
		goal.ID, goal.Title, goal.Description, goal.FocusAreaID,
		string(goal.Status), encodeTimePtr(goal.TargetDate),
		encodeTime(goal.CreatedAt), encodeTimePtr(goal.DeletedAt))
	return err
}

func (s *SQLiteStore) GetAllGoals() ([]models.Goal, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, focus_area_id, status, target_date, created_at, deleted_at
		FROM goals WHERE deleted_at IS NULL ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (s *SQLiteStore) AddMilestone(m models.Milestone) error {
	_, err := s.db.Exec(`
		INSERT INTO milestones (id, goal_id, title, status, target_date, created_at, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			goal_id = excluded.goal_id,
			title = excluded.title,
			status = excluded.status,
			target_date = excluded.target_date,
			deleted_at = excluded.deleted_at`,
		m.ID, m.GoalID, m.Title, string(m.Status), encodeTimePtr(m.TargetDate),
		encodeTime(m.CreatedAt), encodeTimePtr(m.DeletedAt))
	return err
}

func (s *SQLiteStore) GetAllMilestones() ([]models.Milestone, error) {
	rows, err := s.db.Query(`
		SELECT id, goal_id, title, status, target_date, created_at, deleted_at
		FROM milestones WHERE deleted_at IS NULL ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var milestones []models.Milestone
	for rows.Next() {
		var m models.Milestone
		var status, createdAt string
		var targetDate, deletedAt sql.NullString
		if err := rows.Scan(&m.ID, &m.GoalID, &m.Title, &status, &targetDate, &createdAt, &deletedAt); err != nil {
			return nil, err
		}
		m.Status = models.GoalStatus(status)
		if m.TargetDate, err = decodeTimePtr(targetDate); err != nil {
			return nil, fmt.Errorf("failed to parse target_date for milestone %s: %w", m.ID, err)
		}
		if m.CreatedAt, err = decodeTime(createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse created_at for milestone %s: %w", m.ID, err)
		}
		if m.DeletedAt, err = decodeTimePtr(deletedAt); err != nil {
			return nil, fmt.Errorf("failed to parse deleted_at for milestone %s: %w", m.ID, err)
		}
		milestones = append(milestones, m)
	}
	return milestones, rows.Err()
}

func scanGoal(row scanner) (models.Goal, error) {
	var g models.Goal
	var status, createdAt string
	var targetDate, deletedAt sql.NullString

	err := row.Scan(&g.ID, &g.Title, &g.Description, &g.FocusAreaID, &status,
		&targetDate, &createdAt, &deletedAt)
	if err != nil {
		return models.Goal{}, err
	}

	g.Status = models.GoalStatus(status)
	if g.TargetDate, err = decodeTimePtr(targetDate); err != nil {
		return models.Goal{}, fmt.Errorf("failed to parse target_date for goal %s: %w", g.ID, err)
	}
	if g.CreatedAt, err = decodeTime(createdAt); err != nil {
		return models.Goal{}, fmt.Errorf("failed to parse created_at for goal %s: %w", g.ID, err)
	}
	if g.DeletedAt, err = decodeTimePtr(deletedAt); err != nil {
		return models.Goal{}, fmt.Errorf("failed to parse deleted_at for goal %s: %w", g.ID, err)
	}
	return g, nil
}
