package cli

import (
	"context"
)

// ByeCommand handles the bye command
type ByeCommand struct {
	app *App
}

// NewByeCommand creates a new bye command handler
func NewByeCommand(app *App) *ByeCommand {
	return &ByeCommand{app: app}
}

// Execute says goodbye and ends the session
func (c *ByeCommand) Execute(ctx context.Context, args []string) error {
	c.app.exited = true
	c.app.ui.ShowMessage("Bye. Hope to see you again soon!")
	return nil
}

// HelpCommand handles the help command
type HelpCommand struct {
	app *App
}

// NewHelpCommand creates a new help command handler
func NewHelpCommand(app *App) *HelpCommand {
	return &HelpCommand{app: app}
}

// Execute shows the command usage
func (c *HelpCommand) Execute(ctx context.Context, args []string) error {
	c.app.ui.ShowMessage(c.app.registry.GetUsage())
	return nil
}
