package cli

import (
	"context"
	"fmt"
	"strings"

	"hachi/internal/domain"
	"hachi/internal/tasklist"
)

// ListCommand handles the list command
type ListCommand struct {
	app *App
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute shows every task with its position
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	tasks := c.app.api.List()
	if len(tasks) == 0 {
		c.app.ui.ShowMessage("Your list is empty. Add a task with todo, deadline or event.")
		return nil
	}
	c.app.ui.ShowMessage("Here are the tasks in your list:\n" + numbered(tasks))
	return nil
}

// SortCommand handles the sort command
type SortCommand struct {
	app *App
}

// NewSortCommand creates a new sort command handler
func NewSortCommand(app *App) *SortCommand {
	return &SortCommand{app: app}
}

// Execute sorts the list by task name and shows it
func (c *SortCommand) Execute(ctx context.Context, args []string) error {
	tasks, err := c.app.api.SortByName(ctx)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		c.app.ui.ShowMessage("Your list is empty, there is nothing to sort.")
		return nil
	}
	c.app.ui.ShowMessage("I've sorted your tasks by name:\n" + numbered(tasks))
	return nil
}

func numbered(tasks []domain.Task) string {
	lines := make([]string, len(tasks))
	for i, task := range tasks {
		lines[i] = fmt.Sprintf("%d.%s", i+1, task)
	}
	return strings.Join(lines, "\n")
}

func numberedMatches(matches []tasklist.Match) string {
	lines := make([]string, len(matches))
	for i, m := range matches {
		lines[i] = fmt.Sprintf("%d.%s", m.Position, m.Task)
	}
	return strings.Join(lines, "\n")
}
