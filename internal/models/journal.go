package models

import "time"

type LogType string

const (
	LogTypeText      LogType = "text"
	LogTypeChecklist LogType = "checklist"
	LogTypeRating    LogType = "rating"
)

type JournalLog struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	LogDate     time.Time       `json:"log_date"`
	FocusID     string          `json:"focus_id,omitempty"`
	LogType     LogType         `json:"log_type"`
	Rating      int             `json:"rating,omitempty"` // 1-5, rating entries only
	Checklist   []ChecklistItem `json:"checklist,omitempty"`
	Completed   bool            `json:"completed"`
	CreatedAt   time.Time       `json:"created_at"`
	DeletedAt   *time.Time      `json:"deleted_at,omitempty"`
}

// FocusArea labels journal entries and habits with a life area.
type FocusArea struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`
}
