package models

import "time"

type GoalStatus string

const (
	GoalNotStarted GoalStatus = "not_started"
	GoalInProgress GoalStatus = "in_progress"
	GoalAchieved   GoalStatus = "achieved"
	GoalAbandoned  GoalStatus = "abandoned"
)

type Goal struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	FocusAreaID string     `json:"focus_area_id,omitempty"`
	Status      GoalStatus `json:"status"`
	TargetDate  *time.Time `json:"target_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

type Milestone struct {
	ID         string     `json:"id"`
	GoalID     string     `json:"goal_id"`
	Title      string     `json:"title"`
	Status     GoalStatus `json:"status"`
	TargetDate *time.Time `json:"target_date,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
}
