package constants

const (
	AppName           = "saathi"
	Version           = "v0.3.0"
	DefaultConfigPath = "~/.config/saathi/saathi.db"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// DefaultReminderTime is the time of day a habit occurrence is placed on
	// the agenda when the habit has no reminders configured.
	DefaultReminderTime = "09:00"

	// MaxLookaheadDays caps calendar expansion for habits without an end
	// date so that open-ended habits produce a bounded agenda.
	MaxLookaheadDays = 365

	// DefaultListName is the fallback list label for tasks whose list
	// cannot be resolved.
	DefaultListName = "Inbox"

	// Task priority bounds (1 = low .. 4 = urgent)
	MinTaskPriority = 1
	MaxTaskPriority = 4

	// Journal rating bounds
	MinRating = 1
	MaxRating = 5

	DefaultTimezone = "Local"
)
