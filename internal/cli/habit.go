package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jeevansaathi/saathi-cli/internal/calendar"
	"github.com/jeevansaathi/saathi-cli/internal/constants"
	"github.com/jeevansaathi/saathi-cli/internal/models"
	"github.com/jeevansaathi/saathi-cli/internal/utils"
	"github.com/jeevansaathi/saathi-cli/internal/validation"
)

type HabitCmd struct {
	Add     HabitAddCmd     `cmd:"" help:"Add a new habit."`
	List    HabitListCmd    `cmd:"" help:"List habits."`
	Log     HabitLogCmd     `cmd:"" help:"Log a habit outcome for a day."`
	Stats   HabitStatsCmd   `cmd:"" help:"Show streaks and completion rate for a habit."`
	Done    HabitDoneCmd    `cmd:"" help:"Mark a habit as completed (no longer tracked)."`
	Archive HabitArchiveCmd `cmd:"" help:"Abandon a habit."`
	Delete  HabitDeleteCmd  `cmd:"" help:"Delete a habit (soft delete)."`
	Restore HabitRestoreCmd `cmd:"" help:"Restore a deleted habit."`
}

type HabitAddCmd struct {
	Title string `arg:"" help:"Habit title."`

	Description string  `help:"Habit description." default:""`
	Type        string  `help:"Habit type: binary, count, duration, checklist." default:"binary"`
	Frequency   string  `help:"Frequency: daily, weekly, monthly, specific_days." default:"daily"`
	Times       int     `help:"Times per week/month (weekly and monthly frequencies)." default:"0"`
	Days        string  `help:"Comma-separated weekdays for specific_days (e.g. mon,wed,fri)." default:""`
	Start       string  `help:"Start date YYYY-MM-DD (default: today)." default:""`
	End         string  `help:"End date YYYY-MM-DD (optional)." default:""`
	Target      float64 `help:"Daily target for count/duration habits." default:"0"`
	Comparison  string  `help:"Target comparison: at_least, exactly, less_than, any_value." default:""`
	Checklist   []string `help:"Checklist item texts (checklist habits)." sep:","`
	Reminders   []string `help:"Reminder times HH:MM." sep:","`
	Color       string  `help:"Display color." default:""`
	Icon        string  `help:"Display icon." default:""`
	Focus       string  `help:"Focus area id." default:""`
	Goal        string  `help:"Goal id." default:""`
	Milestone   string  `help:"Milestone id." default:""`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if _, err := ctx.Store.GetHabitByTitle(c.Title); err == nil {
		return fmt.Errorf("habit with title %q already exists", c.Title)
	}

	start, err := ctx.ParseDate(c.Start)
	if err != nil {
		return err
	}
	start = utils.StartOfDay(start)

	var end *time.Time
	if c.End != "" {
		e, err := ctx.ParseDate(c.End)
		if err != nil {
			return err
		}
		e = utils.StartOfDay(e)
		end = &e
	}

	var days []time.Weekday
	if c.Days != "" {
		if days, err = ParseWeekdays(c.Days); err != nil {
			return err
		}
	}

	var checklist []models.ChecklistItem
	for _, text := range c.Checklist {
		checklist = append(checklist, models.ChecklistItem{ID: uuid.New().String(), Text: text})
	}

	habit := models.Habit{
		ID:          uuid.New().String(),
		Title:       c.Title,
		Description: c.Description,
		Type:        models.HabitType(c.Type),
		Frequency: models.Frequency{
			Type:  models.FrequencyType(c.Frequency),
			Times: c.Times,
			Days:  days,
		},
		Status:           models.HabitInProgress,
		StartDate:        start,
		EndDate:          end,
		DailyTarget:      c.Target,
		TargetComparison: models.TargetComparison(c.Comparison),
		Checklist:        checklist,
		Reminders:        c.Reminders,
		Color:            c.Color,
		Icon:             c.Icon,
		FocusAreaID:      c.Focus,
		GoalID:           c.Goal,
		MilestoneID:      c.Milestone,
		CreatedAt:        time.Now(),
	}

	if err := validation.ValidateHabit(habit); err != nil {
		return err
	}
	if err := ctx.Store.AddHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (%s, %s)\n", habit.Title, habit.Type, FormatFrequency(habit.Frequency))
	return nil
}

type HabitListCmd struct {
	Deleted bool `help:"Include deleted habits."`
	All     bool `help:"Include completed and abandoned habits."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits(c.Deleted)
	if err != nil {
		return err
	}

	var visible []models.Habit
	for _, h := range habits {
		if !c.All && h.DeletedAt == nil &&
			(h.Status == models.HabitCompleted || h.Status == models.HabitAbandoned) {
			continue
		}
		visible = append(visible, h)
	}

	if len(visible) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	fmt.Println(header("Habits"))
	for _, h := range visible {
		marker := ""
		switch {
		case h.DeletedAt != nil:
			marker = dim(" [deleted]")
		case h.Status == models.HabitCompleted:
			marker = styleGreen.Render(" [completed]")
		case h.Status == models.HabitAbandoned:
			marker = styleYellow.Render(" [abandoned]")
		}
		fmt.Printf("%s  %s%s\n", bold(h.Title), dim(FormatFrequency(h.Frequency)), marker)
	}
	return nil
}

type HabitLogCmd struct {
	Habit string `arg:"" help:"Habit id or title."`

	Date   string   `help:"Date YYYY-MM-DD (default: today)." default:""`
	Status string   `help:"Log status: completed, skipped, missed, partial." default:"completed"`
	Value  float64  `help:"Logged value for count/duration habits." default:"0"`
	Items  []string `help:"Completed checklist item ids or texts." sep:","`
}

func (c *HabitLogCmd) Run(ctx *Context) error {
	habit, err := ctx.ResolveHabit(c.Habit)
	if err != nil {
		return err
	}

	date, err := ctx.ParseDate(c.Date)
	if err != nil {
		return err
	}
	day := utils.DayString(date)

	// Accept checklist items by id or by text so logging stays usable
	// without looking up generated ids.
	var completed []string
	for _, ref := range c.Items {
		matched := false
		for _, item := range habit.Checklist {
			if item.ID == ref || item.Text == ref {
				completed = append(completed, item.ID)
				matched = true
				break
			}
		}
		if !matched {
			return fmt.Errorf("checklist item %q not found on habit %q", ref, habit.Title)
		}
	}

	now := time.Now()
	log := models.HabitLog{
		ID:             uuid.New().String(),
		HabitID:        habit.ID,
		Day:            day,
		Status:         models.LogStatus(c.Status),
		Value:          c.Value,
		CompletedItems: completed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	// Re-logging a day updates the existing entry instead of stacking
	// duplicates.
	if existing, err := ctx.Store.GetHabitLog(habit.ID, day); err == nil {
		log.ID = existing.ID
		log.CreatedAt = existing.CreatedAt
	}

	if err := validation.ValidateHabitLog(log); err != nil {
		return err
	}
	if err := ctx.Store.AddHabitLog(log); err != nil {
		return err
	}

	done := calendar.HabitCompletedOn(habit, []models.HabitLog{log}, date)
	fmt.Printf("Logged %s for %s %s\n", habit.Title, day, checkbox(done))
	return nil
}

type HabitStatsCmd struct {
	Habit string `arg:"" help:"Habit id or title."`
}

func (c *HabitStatsCmd) Run(ctx *Context) error {
	habit, err := ctx.ResolveHabit(c.Habit)
	if err != nil {
		return err
	}
	logs, err := ctx.Store.GetHabitLogs(habit.ID)
	if err != nil {
		return err
	}

	stats := calendar.HabitStats(habit, logs, ctx.Now())

	fmt.Println(header(habit.Title))
	fmt.Printf("Current streak:   %s\n", bold(fmt.Sprintf("%d days", stats.CurrentStreak)))
	fmt.Printf("Best streak:      %s\n", bold(fmt.Sprintf("%d days", stats.BestStreak)))
	fmt.Printf("Completion rate:  %s\n", progressBar(stats.CompletionRate, 20))

	switch habit.Type {
	case models.HabitCount:
		fmt.Printf("Total logged:     %s\n", bold(fmt.Sprintf("%.0f", stats.TotalCompletions)))
	case models.HabitDuration:
		fmt.Printf("Total duration:   %s\n", bold(fmt.Sprintf("%.0f min", stats.TotalCompletions)))
	case models.HabitChecklist:
		fmt.Printf("Items checked:    %s\n", bold(fmt.Sprintf("%.0f", stats.TotalCompletions)))
	default:
		fmt.Printf("Days completed:   %s\n", bold(fmt.Sprintf("%.0f", stats.TotalCompletions)))
	}
	return nil
}

type HabitDoneCmd struct {
	Habit string `arg:"" help:"Habit id or title."`
}

func (c *HabitDoneCmd) Run(ctx *Context) error {
	return setHabitStatus(ctx, c.Habit, models.HabitCompleted, "Completed habit")
}

type HabitArchiveCmd struct {
	Habit string `arg:"" help:"Habit id or title."`
}

func (c *HabitArchiveCmd) Run(ctx *Context) error {
	return setHabitStatus(ctx, c.Habit, models.HabitAbandoned, "Abandoned habit")
}

func setHabitStatus(ctx *Context, ref string, status models.HabitStatus, verb string) error {
	habit, err := ctx.ResolveHabit(ref)
	if err != nil {
		return err
	}
	habit.Status = status
	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}
	fmt.Printf("%s: %s\n", verb, habit.Title)
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit id or title."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	habit, err := ctx.ResolveHabit(c.Habit)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted habit: %s (restore with '%s habit restore %s')\n", habit.Title, constants.AppName, habit.ID)
	return nil
}

type HabitRestoreCmd struct {
	ID string `arg:"" help:"Habit id."`
}

func (c *HabitRestoreCmd) Run(ctx *Context) error {
	if err := ctx.Store.RestoreHabit(c.ID); err != nil {
		return err
	}
	habit, err := ctx.Store.GetHabit(c.ID)
	if err != nil {
		return err
	}
	fmt.Printf("Restored habit: %s\n", habit.Title)
	return nil
}
