package models

import "time"

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"` // midnight time-of-day means date-only
	Completed   bool       `json:"completed"`
	ListID      string     `json:"list_id,omitempty"`
	Priority    int        `json:"priority"` // 1 = low .. 4 = urgent
	CreatedAt   time.Time  `json:"created_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// List groups tasks. The default list ("Inbox") is the fallback for tasks
// whose list cannot be resolved.
type List struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Color   string `json:"color,omitempty"`
	Icon    string `json:"icon,omitempty"`
	Default bool   `json:"default,omitempty"`
}
