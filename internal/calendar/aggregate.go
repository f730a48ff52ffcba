package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/jeevansaathi/saathi-cli/internal/constants"
	"github.com/jeevansaathi/saathi-cli/internal/models"
	"github.com/jeevansaathi/saathi-cli/internal/utils"
)

// BuildItems aggregates a snapshot into a single agenda sorted ascending by
// date, using the default lookahead and reminder placement.
func BuildItems(snap Snapshot, now time.Time) []Item {
	return BuildItemsWithOptions(snap, now, Options{})
}

// BuildItemsWithOptions is BuildItems with explicit bounds. Tasks appear at
// their due date, in-progress habits are expanded into per-day (and
// per-reminder) occurrences from today forward, and journal entries appear
// at their log date. Habit logs are never materialized as items of their
// own; they only drive the Completed flag of habit occurrences.
func BuildItemsWithOptions(snap Snapshot, now time.Time, opts Options) []Item {
	lookahead := opts.LookaheadDays
	if lookahead <= 0 {
		lookahead = constants.MaxLookaheadDays
	}
	reminder := opts.DefaultReminder
	if reminder == "" {
		reminder = constants.DefaultReminderTime
	}

	listNames := make(map[string]string, len(snap.Lists))
	listColors := make(map[string]string, len(snap.Lists))
	for _, l := range snap.Lists {
		listNames[l.ID] = l.Name
		listColors[l.ID] = l.Color
	}
	focuses := make(map[string]models.FocusArea, len(snap.FocusAreas))
	for _, f := range snap.FocusAreas {
		focuses[f.ID] = f
	}

	var items []Item

	// Tasks without a due date have no occurrence and are excluded.
	for i := range snap.Tasks {
		task := snap.Tasks[i]
		if task.DueDate == nil {
			continue
		}
		desc := listNames[task.ListID]
		if desc == "" {
			desc = constants.DefaultListName
		}
		items = append(items, Item{
			ID:          "task:" + task.ID,
			Type:        ItemTask,
			Title:       task.Title,
			Description: desc,
			Date:        *task.DueDate,
			Color:       listColors[task.ListID],
			Completed:   task.Completed,
			Task:        &task,
		})
	}

	today := utils.StartOfDay(now)
	for i := range snap.Habits {
		habit := snap.Habits[i]
		if habit.Status != models.HabitInProgress {
			continue
		}
		start := utils.StartOfDay(habit.StartDate)
		var end time.Time
		if habit.EndDate != nil {
			end = utils.StartOfDay(*habit.EndDate)
		} else {
			// Open-ended habits surface from today and are capped so the
			// agenda stays bounded.
			if start.Before(today) {
				start = today
			}
			end = today.AddDate(0, 0, lookahead)
		}
		if start.After(today) || start.After(end) {
			continue
		}

		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			// The agenda is a forward-looking planner; history lives in the
			// habit's statistics, not here.
			if d.Before(today) {
				continue
			}
			done := HabitCompletedOn(habit, snap.HabitLogs, d)
			day := utils.DayString(d)
			if len(habit.Reminders) == 0 {
				items = append(items, habitItem(&habit, day, at(d, reminder), done, ""))
				continue
			}
			for ri, rem := range habit.Reminders {
				items = append(items, habitItem(&habit, day, at(d, rem), done, fmt.Sprintf(":%d", ri)))
			}
		}
	}

	for i := range snap.Journal {
		log := snap.Journal[i]
		item := Item{
			ID:          "journal:" + log.ID,
			Type:        ItemJournal,
			Title:       log.Title,
			Description: log.Description,
			Date:        log.LogDate,
			Completed:   log.Completed,
			Journal:     &log,
		}
		// The focus label replaces the description when it resolves; an
		// unknown focus id just leaves the entry unlabeled.
		if focus, ok := focuses[log.FocusID]; ok {
			item.Description = focus.Name
			item.Color = focus.Color
			item.Icon = focus.Icon
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})
	return items
}

func habitItem(habit *models.Habit, day string, date time.Time, done bool, suffix string) Item {
	return Item{
		ID:          fmt.Sprintf("habit:%s:%s%s", habit.ID, day, suffix),
		Type:        ItemHabit,
		Title:       habit.Title,
		Description: habit.Description,
		Date:        date,
		Color:       habit.Color,
		Icon:        habit.Icon,
		Completed:   done,
		Habit:       habit,
	}
}

// at places a HH:MM reminder onto a calendar day, falling back to the
// default reminder hour when the string does not parse.
func at(day time.Time, timeStr string) time.Time {
	t, err := utils.CombineDateAndTime(day, timeStr)
	if err != nil {
		t, _ = utils.CombineDateAndTime(day, constants.DefaultReminderTime)
	}
	return t
}
