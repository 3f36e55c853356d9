package cli

import (
	"context"
	"fmt"

	"hachi/internal/domain"
	"hachi/internal/errors"
	"hachi/internal/validation"
)

// FindCommand handles the find command
type FindCommand struct {
	app *App
}

// NewFindCommand creates a new find command handler
func NewFindCommand(app *App) *FindCommand {
	return &FindCommand{app: app}
}

// Execute shows the tasks whose name contains the text in args
func (c *FindCommand) Execute(ctx context.Context, args []string) error {
	text := joinArgs(args)
	if text == "" {
		return errors.NewInvalidInputError("find", text, "tell me what to look for, like: find book")
	}

	matches := c.app.api.Find(text)
	if len(matches) == 0 {
		c.app.ui.ShowMessage(fmt.Sprintf("No tasks match %q.", text))
		return nil
	}
	c.app.ui.ShowMessage("Here are the matching tasks in your list:\n" + numberedMatches(matches))
	return nil
}

// DateCommand handles the date command
type DateCommand struct {
	app       *App
	validator *validation.TaskValidator
}

// NewDateCommand creates a new date command handler
func NewDateCommand(app *App) *DateCommand {
	return &DateCommand{app: app, validator: validation.NewTaskValidatorWithConfig(app.config)}
}

// Execute shows the deadlines and events that fall on the date in args
func (c *DateCommand) Execute(ctx context.Context, args []string) error {
	date, err := c.validator.ParseDate("date", joinArgs(args))
	if err != nil {
		return err
	}

	day := domain.DisplayDate(date)
	matches := c.app.api.OnDate(date)
	if len(matches) == 0 {
		c.app.ui.ShowMessage(fmt.Sprintf("You have nothing on %s.", day))
		return nil
	}
	c.app.ui.ShowMessage(fmt.Sprintf("Here are the tasks on %s:\n%s", day, numberedMatches(matches)))
	return nil
}
