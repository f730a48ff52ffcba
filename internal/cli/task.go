package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jeevansaathi/saathi-cli/internal/models"
	"github.com/jeevansaathi/saathi-cli/internal/utils"
	"github.com/jeevansaathi/saathi-cli/internal/validation"
)

type TaskCmd struct {
	Add     TaskAddCmd     `cmd:"" help:"Add a new task."`
	List    TaskListCmd    `cmd:"" help:"List tasks."`
	Done    TaskDoneCmd    `cmd:"" help:"Mark a task as completed."`
	Delete  TaskDeleteCmd  `cmd:"" help:"Delete a task (soft delete)."`
	Restore TaskRestoreCmd `cmd:"" help:"Restore a deleted task."`
}

type TaskAddCmd struct {
	Title string `arg:"" help:"Task title."`

	Description string `help:"Task description." default:""`
	Due         string `help:"Due date YYYY-MM-DD (optional)." default:""`
	At          string `help:"Due time HH:MM; requires --due." default:""`
	List        string `help:"List id (default: the default list)." default:""`
	Priority    int    `help:"Priority 1 (low) to 4 (urgent)." default:"1"`
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	var due *time.Time
	if c.Due != "" {
		d, err := ctx.ParseDate(c.Due)
		if err != nil {
			return err
		}
		d = utils.StartOfDay(d)
		if c.At != "" {
			if d, err = utils.CombineDateAndTime(d, c.At); err != nil {
				return err
			}
		}
		due = &d
	} else if c.At != "" {
		return fmt.Errorf("--at requires --due")
	}

	listID := c.List
	if listID == "" {
		lists, err := ctx.Store.GetAllLists()
		if err != nil {
			return err
		}
		for _, l := range lists {
			if l.Default {
				listID = l.ID
				break
			}
		}
	}

	task := models.Task{
		ID:          uuid.New().String(),
		Title:       c.Title,
		Description: c.Description,
		DueDate:     due,
		ListID:      listID,
		Priority:    c.Priority,
		CreatedAt:   time.Now(),
	}

	if err := validation.ValidateTask(task); err != nil {
		return err
	}
	if err := ctx.Store.AddTask(task); err != nil {
		return err
	}

	fmt.Printf("Added task: %s\n", task.Title)
	return nil
}

type TaskListCmd struct {
	Deleted bool `help:"Include deleted tasks."`
	All     bool `help:"Include completed tasks."`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	tasks, err := ctx.Store.GetAllTasks(c.Deleted)
	if err != nil {
		return err
	}

	var visible []models.Task
	for _, t := range tasks {
		if !c.All && t.Completed && t.DeletedAt == nil {
			continue
		}
		visible = append(visible, t)
	}

	if len(visible) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	fmt.Println(header("Tasks"))
	for _, t := range visible {
		line := fmt.Sprintf("%s %s", checkbox(t.Completed), t.Title)
		if t.Priority > 1 {
			line += " " + styleYellow.Render(fmt.Sprintf("(p%d)", t.Priority))
		}
		if t.DueDate != nil {
			line += " " + dim("due "+FormatDate(*t.DueDate))
		}
		if t.DeletedAt != nil {
			line += dim(" [deleted]")
		}
		fmt.Println(line)
	}
	return nil
}

type TaskDoneCmd struct {
	ID string `arg:"" help:"Task id."`
}

func (c *TaskDoneCmd) Run(ctx *Context) error {
	task, err := ctx.Store.GetTask(c.ID)
	if err != nil {
		return fmt.Errorf("task %q not found", c.ID)
	}
	task.Completed = true
	if err := ctx.Store.UpdateTask(task); err != nil {
		return err
	}
	fmt.Printf("Completed task: %s\n", task.Title)
	return nil
}

type TaskDeleteCmd struct {
	ID string `arg:"" help:"Task id."`
}

func (c *TaskDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.DeleteTask(c.ID); err != nil {
		return err
	}
	fmt.Println("Deleted task.")
	return nil
}

type TaskRestoreCmd struct {
	ID string `arg:"" help:"Task id."`
}

func (c *TaskRestoreCmd) Run(ctx *Context) error {
	if err := ctx.Store.RestoreTask(c.ID); err != nil {
		return err
	}
	fmt.Println("Restored task.")
	return nil
}

// Lists

type ListCmd struct {
	Add  ListAddCmd  `cmd:"" help:"Add a new list."`
	List ListListCmd `cmd:"" help:"Show all lists." default:"1"`
}

type ListAddCmd struct {
	Name string `arg:"" help:"List name."`

	Color string `help:"Display color." default:""`
	Icon  string `help:"Display icon." default:""`
}

func (c *ListAddCmd) Run(ctx *Context) error {
	list := models.List{
		ID:    uuid.New().String(),
		Name:  c.Name,
		Color: c.Color,
		Icon:  c.Icon,
	}
	if err := ctx.Store.AddList(list); err != nil {
		return err
	}
	fmt.Printf("Added list: %s\n", list.Name)
	return nil
}

type ListListCmd struct{}

func (c *ListListCmd) Run(ctx *Context) error {
	lists, err := ctx.Store.GetAllLists()
	if err != nil {
		return err
	}
	if len(lists) == 0 {
		fmt.Println("No lists found.")
		return nil
	}

	fmt.Println(header("Lists"))
	for _, l := range lists {
		marker := ""
		if l.Default {
			marker = dim(" (default)")
		}
		fmt.Printf("%s  %s%s\n", bold(l.Name), dim(l.ID), marker)
	}
	return nil
}
