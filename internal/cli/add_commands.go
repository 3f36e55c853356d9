package cli

import (
	"context"
	"fmt"

	"hachi/internal/domain"
	"hachi/internal/validation"
)

// TodoCommand handles the todo command
type TodoCommand struct {
	app *App
}

// NewTodoCommand creates a new todo command handler
func NewTodoCommand(app *App) *TodoCommand {
	return &TodoCommand{app: app}
}

// Execute adds a todo described by args
func (c *TodoCommand) Execute(ctx context.Context, args []string) error {
	task, err := c.app.api.AddTodo(ctx, joinArgs(args))
	if err != nil {
		return err
	}
	c.app.showAdded(task)
	return nil
}

// DeadlineCommand handles the deadline command
type DeadlineCommand struct {
	app       *App
	validator *validation.TaskValidator
}

// NewDeadlineCommand creates a new deadline command handler
func NewDeadlineCommand(app *App) *DeadlineCommand {
	return &DeadlineCommand{app: app, validator: validation.NewTaskValidatorWithConfig(app.config)}
}

// Execute adds a deadline from "<description> /by <date>"
func (c *DeadlineCommand) Execute(ctx context.Context, args []string) error {
	input := joinArgs(args)
	if input == "" {
		return c.validator.ValidateDescription(input)
	}

	description, byArg, err := deadlineArgs(input)
	if err != nil {
		return err
	}
	by, err := c.validator.ParseDate("due date", byArg)
	if err != nil {
		return err
	}

	task, err := c.app.api.AddDeadline(ctx, description, by)
	if err != nil {
		return err
	}
	c.app.showAdded(task)
	return nil
}

// EventCommand handles the event command
type EventCommand struct {
	app       *App
	validator *validation.TaskValidator
}

// NewEventCommand creates a new event command handler
func NewEventCommand(app *App) *EventCommand {
	return &EventCommand{app: app, validator: validation.NewTaskValidatorWithConfig(app.config)}
}

// Execute adds an event from "<description> /from <date> /to <date>"
func (c *EventCommand) Execute(ctx context.Context, args []string) error {
	input := joinArgs(args)
	if input == "" {
		return c.validator.ValidateDescription(input)
	}

	description, fromArg, toArg, err := eventArgs(input)
	if err != nil {
		return err
	}
	from, err := c.validator.ParseDate("start date", fromArg)
	if err != nil {
		return err
	}
	to, err := c.validator.ParseDate("end date", toArg)
	if err != nil {
		return err
	}

	task, err := c.app.api.AddEvent(ctx, description, from, to)
	if err != nil {
		return err
	}
	c.app.showAdded(task)
	return nil
}

func (a *App) showAdded(task domain.Task) {
	a.ui.ShowMessage(fmt.Sprintf("Got it. I've added this task:\n  %s\n%s", task, a.countLine()))
}

func (a *App) countLine() string {
	n := a.api.Count()
	return fmt.Sprintf("Now you have %d %s in the list.", n, pluralize(n, "task"))
}
