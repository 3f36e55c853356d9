package cli

import (
	"context"
	"sort"
	"strings"

	"hachi/internal/errors"
)

// Command represents a CLI command. args holds the text after the
// command word; it is empty when nothing followed it.
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// CommandRegistry manages all available commands
type CommandRegistry struct {
	commands map[string]Command
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]Command),
	}

	// Register all commands
	registry.Register("todo", NewTodoCommand(app))
	registry.Register("deadline", NewDeadlineCommand(app))
	registry.Register("event", NewEventCommand(app))
	registry.Register("list", NewListCommand(app))
	registry.Register("sort", NewSortCommand(app))
	registry.Register("mark", NewMarkCommand(app))
	registry.Register("unmark", NewUnmarkCommand(app))
	registry.Register("delete", NewDeleteCommand(app))
	registry.Register("find", NewFindCommand(app))
	registry.Register("date", NewDateCommand(app))
	registry.Register("help", NewHelpCommand(app))
	registry.Register("bye", NewByeCommand(app))

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(name string, command Command) {
	r.commands[name] = command
}

// Execute runs the specified command with the given arguments
func (r *CommandRegistry) Execute(ctx context.Context, commandName string, args []string) error {
	command, exists := r.commands[commandName]
	if !exists {
		return errors.NewUnknownCommandError(commandName)
	}
	return command.Execute(ctx, args)
}

// Names returns the registered command names in alphabetical order
func (r *CommandRegistry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetUsage returns the usage string for the commands
func (r *CommandRegistry) GetUsage() string {
	return strings.Join([]string{
		"Here's what I understand:",
		"  todo <description>",
		"  deadline <description> /by <yyyy-mm-dd>",
		"  event <description> /from <yyyy-mm-dd> /to <yyyy-mm-dd>",
		"  list",
		"  sort",
		"  mark <task number>",
		"  unmark <task number>",
		"  delete <task number>",
		"  find <text>",
		"  date <yyyy-mm-dd>",
		"  bye",
	}, "\n")
}
