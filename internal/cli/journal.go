package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jeevansaathi/saathi-cli/internal/models"
	"github.com/jeevansaathi/saathi-cli/internal/validation"
)

type JournalCmd struct {
	Add  JournalAddCmd  `cmd:"" help:"Add a journal entry."`
	List JournalListCmd `cmd:"" help:"List journal entries."`
}

type JournalAddCmd struct {
	Title string `arg:"" help:"Entry title."`

	Description string   `help:"Entry body." default:""`
	Date        string   `help:"Entry date YYYY-MM-DD (default: today)." default:""`
	Type        string   `help:"Entry type: text, checklist, rating." default:"text"`
	Rating      int      `help:"Rating 1-5 (rating entries)." default:"0"`
	Checklist   []string `help:"Checklist item texts (checklist entries)." sep:","`
	Focus       string   `help:"Focus area id." default:""`
}

func (c *JournalAddCmd) Run(ctx *Context) error {
	date, err := ctx.ParseDate(c.Date)
	if err != nil {
		return err
	}

	var checklist []models.ChecklistItem
	for _, text := range c.Checklist {
		checklist = append(checklist, models.ChecklistItem{ID: uuid.New().String(), Text: text})
	}

	log := models.JournalLog{
		ID:          uuid.New().String(),
		Title:       c.Title,
		Description: c.Description,
		LogDate:     date,
		FocusID:     c.Focus,
		LogType:     models.LogType(c.Type),
		Rating:      c.Rating,
		Checklist:   checklist,
		CreatedAt:   time.Now(),
	}

	if err := validation.ValidateJournalLog(log); err != nil {
		return err
	}
	if err := ctx.Store.AddJournalLog(log); err != nil {
		return err
	}

	fmt.Printf("Added journal entry: %s\n", log.Title)
	return nil
}

type JournalListCmd struct{}

func (c *JournalListCmd) Run(ctx *Context) error {
	logs, err := ctx.Store.GetAllJournalLogs()
	if err != nil {
		return err
	}
	if len(logs) == 0 {
		fmt.Println("No journal entries found.")
		return nil
	}

	fmt.Println(header("Journal"))
	for _, l := range logs {
		line := fmt.Sprintf("%s  %s", dim(l.LogDate.Format("2006-01-02")), bold(l.Title))
		switch l.LogType {
		case models.LogTypeRating:
			line += " " + styleYellow.Render(ratingDots(l.Rating))
		case models.LogTypeChecklist:
			line += " " + dim(fmt.Sprintf("(%d items)", len(l.Checklist)))
		}
		fmt.Println(line)
	}
	return nil
}

func ratingDots(rating int) string {
	dots := ""
	for i := 1; i <= 5; i++ {
		if i <= rating {
			dots += "●"
		} else {
			dots += "○"
		}
	}
	return dots
}
