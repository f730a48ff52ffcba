package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jeevansaathi/saathi-cli/internal/models"
	"github.com/jeevansaathi/saathi-cli/internal/utils"
)

type FocusCmd struct {
	Add  FocusAddCmd  `cmd:"" help:"Add a focus area."`
	List FocusListCmd `cmd:"" help:"Show all focus areas." default:"1"`
}

type FocusAddCmd struct {
	Name string `arg:"" help:"Focus area name."`

	Color string `help:"Display color." default:""`
	Icon  string `help:"Display icon." default:""`
}

func (c *FocusAddCmd) Run(ctx *Context) error {
	focus := models.FocusArea{
		ID:    uuid.New().String(),
		Name:  c.Name,
		Color: c.Color,
		Icon:  c.Icon,
	}
	if err := ctx.Store.AddFocusArea(focus); err != nil {
		return err
	}
	fmt.Printf("Added focus area: %s\n", focus.Name)
	return nil
}

type FocusListCmd struct{}

func (c *FocusListCmd) Run(ctx *Context) error {
	focuses, err := ctx.Store.GetAllFocusAreas()
	if err != nil {
		return err
	}
	if len(focuses) == 0 {
		fmt.Println("No focus areas found.")
		return nil
	}

	fmt.Println(header("Focus areas"))
	for _, f := range focuses {
		fmt.Printf("%s  %s\n", bold(f.Name), dim(f.ID))
	}
	return nil
}

type GoalCmd struct {
	Add  GoalAddCmd  `cmd:"" help:"Add a goal."`
	List GoalListCmd `cmd:"" help:"Show all goals." default:"1"`
}

type GoalAddCmd struct {
	Title string `arg:"" help:"Goal title."`

	Description string `help:"Goal description." default:""`
	Focus       string `help:"Focus area id." default:""`
	Target      string `help:"Target date YYYY-MM-DD (optional)." default:""`
}

func (c *GoalAddCmd) Run(ctx *Context) error {
	var target *time.Time
	if c.Target != "" {
		d, err := ctx.ParseDate(c.Target)
		if err != nil {
			return err
		}
		d = utils.StartOfDay(d)
		target = &d
	}

	goal := models.Goal{
		ID:          uuid.New().String(),
		Title:       c.Title,
		Description: c.Description,
		FocusAreaID: c.Focus,
		Status:      models.GoalInProgress,
		TargetDate:  target,
		CreatedAt:   time.Now(),
	}
	if err := ctx.Store.AddGoal(goal); err != nil {
		return err
	}
	fmt.Printf("Added goal: %s\n", goal.Title)
	return nil
}

type GoalListCmd struct{}

func (c *GoalListCmd) Run(ctx *Context) error {
	goals, err := ctx.Store.GetAllGoals()
	if err != nil {
		return err
	}
	if len(goals) == 0 {
		fmt.Println("No goals found.")
		return nil
	}

	milestones, err := ctx.Store.GetAllMilestones()
	if err != nil {
		return err
	}
	byGoal := make(map[string][]models.Milestone)
	for _, m := range milestones {
		byGoal[m.GoalID] = append(byGoal[m.GoalID], m)
	}

	fmt.Println(header("Goals"))
	for _, g := range goals {
		line := fmt.Sprintf("%s %s", goalStatusMarker(g.Status), bold(g.Title))
		if g.TargetDate != nil {
			line += " " + dim("by "+g.TargetDate.Format("2006-01-02"))
		}
		fmt.Println(line)
		for _, m := range byGoal[g.ID] {
			fmt.Printf("  %s %s\n", goalStatusMarker(m.Status), m.Title)
		}
	}
	return nil
}

func goalStatusMarker(status models.GoalStatus) string {
	switch status {
	case models.GoalAchieved:
		return styleGreen.Render("●")
	case models.GoalInProgress:
		return styleYellow.Render("●")
	case models.GoalAbandoned:
		return styleRed.Render("●")
	default:
		return styleDim.Render("○")
	}
}

type MilestoneCmd struct {
	Add  MilestoneAddCmd  `cmd:"" help:"Add a milestone to a goal."`
	List MilestoneListCmd `cmd:"" help:"Show all milestones." default:"1"`
}

type MilestoneAddCmd struct {
	Goal  string `arg:"" help:"Goal id."`
	Title string `arg:"" help:"Milestone title."`

	Target string `help:"Target date YYYY-MM-DD (optional)." default:""`
}

func (c *MilestoneAddCmd) Run(ctx *Context) error {
	var target *time.Time
	if c.Target != "" {
		d, err := ctx.ParseDate(c.Target)
		if err != nil {
			return err
		}
		d = utils.StartOfDay(d)
		target = &d
	}

	milestone := models.Milestone{
		ID:         uuid.New().String(),
		GoalID:     c.Goal,
		Title:      c.Title,
		Status:     models.GoalNotStarted,
		TargetDate: target,
		CreatedAt:  time.Now(),
	}
	if err := ctx.Store.AddMilestone(milestone); err != nil {
		return err
	}
	fmt.Printf("Added milestone: %s\n", milestone.Title)
	return nil
}

type MilestoneListCmd struct{}

func (c *MilestoneListCmd) Run(ctx *Context) error {
	milestones, err := ctx.Store.GetAllMilestones()
	if err != nil {
		return err
	}
	if len(milestones) == 0 {
		fmt.Println("No milestones found.")
		return nil
	}

	fmt.Println(header("Milestones"))
	for _, m := range milestones {
		line := fmt.Sprintf("%s %s", goalStatusMarker(m.Status), bold(m.Title))
		if m.TargetDate != nil {
			line += " " + dim("by "+m.TargetDate.Format("2006-01-02"))
		}
		fmt.Println(line)
	}
	return nil
}
