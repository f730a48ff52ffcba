package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jeevansaathi/saathi-cli/internal/calendar"
	"github.com/jeevansaathi/saathi-cli/internal/constants"
	"github.com/jeevansaathi/saathi-cli/internal/models"
	"github.com/jeevansaathi/saathi-cli/internal/storage"
	"github.com/jeevansaathi/saathi-cli/internal/utils"
)

type Context struct {
	Store storage.Provider
}

// Now returns the current time in the configured timezone, falling back to
// the system timezone when settings are unreadable.
func (c *Context) Now() time.Time {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return time.Now()
	}
	now, err := utils.NowInTimezone(settings.Timezone)
	if err != nil {
		return time.Now()
	}
	return now
}

// Snapshot reads every entity slice the aggregator consumes in one pass.
func (c *Context) Snapshot() (calendar.Snapshot, error) {
	var snap calendar.Snapshot
	var err error

	if snap.Tasks, err = c.Store.GetAllTasks(false); err != nil {
		return snap, fmt.Errorf("failed to load tasks: %w", err)
	}
	if snap.Habits, err = c.Store.GetAllHabits(false); err != nil {
		return snap, fmt.Errorf("failed to load habits: %w", err)
	}
	if snap.HabitLogs, err = c.Store.GetAllHabitLogs(); err != nil {
		return snap, fmt.Errorf("failed to load habit logs: %w", err)
	}
	if snap.Journal, err = c.Store.GetAllJournalLogs(); err != nil {
		return snap, fmt.Errorf("failed to load journal entries: %w", err)
	}
	if snap.Lists, err = c.Store.GetAllLists(); err != nil {
		return snap, fmt.Errorf("failed to load lists: %w", err)
	}
	if snap.FocusAreas, err = c.Store.GetAllFocusAreas(); err != nil {
		return snap, fmt.Errorf("failed to load focus areas: %w", err)
	}
	return snap, nil
}

// AggregateOptions converts persisted settings into aggregation options.
func (c *Context) AggregateOptions() calendar.Options {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return calendar.Options{}
	}
	return calendar.Options{
		LookaheadDays:   settings.LookaheadDays,
		DefaultReminder: settings.DefaultReminder,
	}
}

// ResolveHabit finds a habit by id or, failing that, by exact title.
func (c *Context) ResolveHabit(ref string) (models.Habit, error) {
	habit, err := c.Store.GetHabit(ref)
	if err == nil {
		return habit, nil
	}
	habit, err = c.Store.GetHabitByTitle(ref)
	if err != nil {
		return models.Habit{}, fmt.Errorf("habit %q not found", ref)
	}
	return habit, nil
}

// ParseDate parses a YYYY-MM-DD argument in the configured timezone; an
// empty argument means today.
func (c *Context) ParseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return c.Now(), nil
	}
	if !utils.ValidateDateFormat(dateStr) {
		return time.Time{}, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", dateStr)
	}
	return utils.ParseDateInLocation(dateStr, c.Now().Location())
}

// ParseWeekdays parses a comma-separated list of weekday names or numbers
// (0=Sunday .. 6=Saturday).
func ParseWeekdays(s string) ([]time.Weekday, error) {
	dayMap := map[string]time.Weekday{
		"sun": time.Sunday, "sunday": time.Sunday,
		"mon": time.Monday, "monday": time.Monday,
		"tue": time.Tuesday, "tuesday": time.Tuesday,
		"wed": time.Wednesday, "wednesday": time.Wednesday,
		"thu": time.Thursday, "thursday": time.Thursday,
		"fri": time.Friday, "friday": time.Friday,
		"sat": time.Saturday, "saturday": time.Saturday,
	}

	var weekdays []time.Weekday
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if wd, ok := dayMap[part]; ok {
			weekdays = append(weekdays, wd)
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil || num < 0 || num > 6 {
			return nil, fmt.Errorf("invalid weekday: %s", part)
		}
		weekdays = append(weekdays, time.Weekday(num))
	}
	return weekdays, nil
}

// FormatFrequency renders a frequency rule for list output.
func FormatFrequency(freq models.Frequency) string {
	switch freq.Type {
	case models.FrequencyDaily:
		return "daily"
	case models.FrequencyWeekly:
		return fmt.Sprintf("%dx per week", freq.Times)
	case models.FrequencyMonthly:
		return fmt.Sprintf("%dx per month", freq.Times)
	case models.FrequencySpecificDays:
		var days []string
		for _, wd := range freq.Days {
			days = append(days, wd.String()[:3])
		}
		return "on " + strings.Join(days, ",")
	default:
		return "unknown"
	}
}

// FormatDate renders an agenda timestamp; midnight means date-only.
func FormatDate(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format(constants.DateFormat)
	}
	return t.Format(constants.DateFormat + " " + constants.TimeFormat)
}
