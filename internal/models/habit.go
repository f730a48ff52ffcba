package models

import "time"

type HabitType string

const (
	HabitBinary    HabitType = "binary"
	HabitCount     HabitType = "count"
	HabitDuration  HabitType = "duration"
	HabitChecklist HabitType = "checklist"
)

type FrequencyType string

const (
	FrequencyDaily        FrequencyType = "daily"
	FrequencyWeekly       FrequencyType = "weekly"
	FrequencyMonthly      FrequencyType = "monthly"
	FrequencySpecificDays FrequencyType = "specific_days"
)

type HabitStatus string

const (
	HabitYetToStart HabitStatus = "yet_to_start"
	HabitInProgress HabitStatus = "in_progress"
	HabitCompleted  HabitStatus = "completed"
	HabitAbandoned  HabitStatus = "abandoned"
)

type TargetComparison string

const (
	CompareAtLeast  TargetComparison = "at_least"
	CompareExactly  TargetComparison = "exactly"
	CompareLessThan TargetComparison = "less_than"
	CompareAnyValue TargetComparison = "any_value"
)

type LogStatus string

const (
	LogCompleted LogStatus = "completed"
	LogSkipped   LogStatus = "skipped"
	LogMissed    LogStatus = "missed"
	LogPartial   LogStatus = "partial"
)

// Frequency describes how often a habit is expected to be done. Times is
// only meaningful for weekly/monthly frequencies, Days only for
// specific_days.
type Frequency struct {
	Type  FrequencyType  `json:"type"`
	Times int            `json:"times,omitempty"`
	Days  []time.Weekday `json:"days,omitempty"`
}

type ChecklistItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type Habit struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Description      string           `json:"description,omitempty"`
	Type             HabitType        `json:"type"`
	Frequency        Frequency        `json:"frequency"`
	Status           HabitStatus      `json:"status"`
	StartDate        time.Time        `json:"start_date"`
	EndDate          *time.Time       `json:"end_date,omitempty"`
	DailyTarget      float64          `json:"daily_target,omitempty"`
	TotalTarget      float64          `json:"total_target,omitempty"`
	TargetComparison TargetComparison `json:"target_comparison,omitempty"` // empty means at_least
	Checklist        []ChecklistItem  `json:"checklist,omitempty"`
	Reminders        []string         `json:"reminders,omitempty"` // HH:MM
	Color            string           `json:"color,omitempty"`
	Icon             string           `json:"icon,omitempty"`
	FocusAreaID      string           `json:"focus_area_id,omitempty"`
	GoalID           string           `json:"goal_id,omitempty"`
	MilestoneID      string           `json:"milestone_id,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	DeletedAt        *time.Time       `json:"deleted_at,omitempty"`
}

// HabitLog records a habit's outcome on one calendar date. Day is a plain
// YYYY-MM-DD string with no time component. UpdatedAt decides which log is
// authoritative when a day has duplicates.
type HabitLog struct {
	ID             string     `json:"id"`
	HabitID        string     `json:"habit_id"`
	Day            string     `json:"day"` // YYYY-MM-DD format
	Status         LogStatus  `json:"status"`
	Value          float64    `json:"value,omitempty"`
	CompletedItems []string   `json:"completed_items,omitempty"` // checklist item ids
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty"`
}
