package cli

import (
	"context"
	"fmt"

	"hachi/internal/domain"
	"hachi/internal/validation"
)

// positionCommand runs an update on the task whose number is given in args
type positionCommand struct {
	app       *App
	validator *validation.TaskValidator
	update    func(ctx context.Context, position int) (domain.Task, error)
	reply     func(task domain.Task) string
}

// Execute parses the task number and applies the update
func (c *positionCommand) Execute(ctx context.Context, args []string) error {
	position, err := c.validator.ParsePosition(joinArgs(args))
	if err != nil {
		return err
	}

	task, err := c.update(ctx, position)
	if err != nil {
		return err
	}
	c.app.ui.ShowMessage(c.reply(task))
	return nil
}

// NewMarkCommand creates a handler that marks a task as done
func NewMarkCommand(app *App) Command {
	return &positionCommand{
		app:       app,
		validator: validation.NewTaskValidatorWithConfig(app.config),
		update:    app.api.Mark,
		reply: func(task domain.Task) string {
			return fmt.Sprintf("Nice! I've marked this task as done:\n  %s", task)
		},
	}
}

// NewUnmarkCommand creates a handler that marks a task as not done
func NewUnmarkCommand(app *App) Command {
	return &positionCommand{
		app:       app,
		validator: validation.NewTaskValidatorWithConfig(app.config),
		update:    app.api.Unmark,
		reply: func(task domain.Task) string {
			return fmt.Sprintf("OK, I've marked this task as not done yet:\n  %s", task)
		},
	}
}

// NewDeleteCommand creates a handler that removes a task
func NewDeleteCommand(app *App) Command {
	return &positionCommand{
		app:       app,
		validator: validation.NewTaskValidatorWithConfig(app.config),
		update:    app.api.Delete,
		reply: func(task domain.Task) string {
			return fmt.Sprintf("Noted. I've removed this task:\n  %s\n%s", task, app.countLine())
		},
	}
}
