package cli

import (
	"fmt"

	"github.com/jeevansaathi/saathi-cli/internal/calendar"
	"github.com/jeevansaathi/saathi-cli/internal/utils"
)

type AgendaCmd struct {
	Date       string   `help:"Show the agenda for a date YYYY-MM-DD (default: today)." default:""`
	Week       bool     `help:"Show the week containing the date."`
	Month      bool     `help:"Show the month containing the date."`
	Types      []string `help:"Only show these item types (task, habit, journal)." sep:","`
	ByPriority bool     `help:"Sort incomplete items first, then by type and date."`
}

func (c *AgendaCmd) Run(ctx *Context) error {
	if c.Week && c.Month {
		return fmt.Errorf("--week and --month are mutually exclusive")
	}

	date, err := ctx.ParseDate(c.Date)
	if err != nil {
		return err
	}

	snap, err := ctx.Snapshot()
	if err != nil {
		return err
	}

	items := calendar.BuildItemsWithOptions(snap, ctx.Now(), ctx.AggregateOptions())

	var title string
	switch {
	case c.Week:
		items = calendar.ItemsForWeek(items, date)
		title = "Week of " + utils.StartOfDay(date.AddDate(0, 0, -int(date.Weekday()))).Format("Jan 2")
	case c.Month:
		items = calendar.ItemsForMonth(items, date)
		title = date.Format("January 2006")
	default:
		items = calendar.ItemsForDate(items, date)
		title = date.Format("Monday, Jan 2")
	}

	if len(c.Types) > 0 {
		var types []calendar.ItemType
		for _, t := range c.Types {
			types = append(types, calendar.ItemType(t))
		}
		items = calendar.FilterByTypes(items, types...)
	}

	if c.ByPriority {
		items = calendar.SortByPriority(items)
	}

	fmt.Println(header(title))
	if len(items) == 0 {
		fmt.Println(dim("Nothing scheduled."))
		return nil
	}

	lastDay := ""
	for _, item := range items {
		day := utils.DayString(item.Date)
		if day != lastDay && (c.Week || c.Month) {
			if lastDay != "" {
				fmt.Println()
			}
			fmt.Println(bold(item.Date.Format("Mon Jan 2")))
			lastDay = day
		}

		style := itemTypeStyle(string(item.Type))
		line := fmt.Sprintf("%s %s %s %s",
			dim(item.Date.Format("15:04")),
			checkbox(item.Completed),
			style.Render(string(item.Type)),
			item.Title)
		if item.Description != "" {
			line += " " + dim("· "+item.Description)
		}
		fmt.Println(line)
	}
	return nil
}
