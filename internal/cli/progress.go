package cli

import (
	"fmt"

	"github.com/jeevansaathi/saathi-cli/internal/calendar"
	"github.com/jeevansaathi/saathi-cli/internal/utils"
)

type ProgressCmd struct {
	From string `help:"Range start YYYY-MM-DD (default: 7 days ago)." default:""`
	To   string `help:"Range end YYYY-MM-DD (default: today)." default:""`
}

func (c *ProgressCmd) Run(ctx *Context) error {
	now := ctx.Now()

	end := now
	if c.To != "" {
		var err error
		if end, err = ctx.ParseDate(c.To); err != nil {
			return err
		}
	}
	start := end.AddDate(0, 0, -6)
	if c.From != "" {
		var err error
		if start, err = ctx.ParseDate(c.From); err != nil {
			return err
		}
	}
	if start.After(end) {
		return fmt.Errorf("--from must not be after --to")
	}

	snap, err := ctx.Snapshot()
	if err != nil {
		return err
	}

	items := calendar.BuildItemsWithOptions(snap, now, ctx.AggregateOptions())
	stats := calendar.Progress(items, utils.StartOfDay(start), utils.EndOfDay(end))

	fmt.Println(header(fmt.Sprintf("Progress %s – %s",
		start.Format("Jan 2"), end.Format("Jan 2"))))
	fmt.Printf("Tasks   %s  %s\n", progressBar(stats.TaskRate, 20),
		dim(fmt.Sprintf("%d/%d", stats.TasksCompleted, stats.TasksTotal)))
	fmt.Printf("Habits  %s  %s\n", progressBar(stats.HabitRate, 20),
		dim(fmt.Sprintf("%d/%d", stats.HabitsCompleted, stats.HabitsTotal)))
	fmt.Printf("Journal %s\n", bold(fmt.Sprintf("%d entries", stats.JournalEntries)))
	return nil
}
