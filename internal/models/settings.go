package models

// Settings represents application-wide settings
type Settings struct {
	Timezone        string `json:"timezone"`         // IANA timezone name (e.g. "America/New_York", or "Local" for system timezone)
	DefaultReminder string `json:"default_reminder"` // HH:MM placement for habit occurrences without reminders
	LookaheadDays   int    `json:"lookahead_days"`   // calendar expansion cap for open-ended habits
}
