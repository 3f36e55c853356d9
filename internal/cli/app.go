package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"hachi/internal/api"
	"hachi/internal/config"
	"hachi/internal/errors"
	"hachi/internal/logging"
	"hachi/internal/ui"
)

// App represents the main CLI application
type App struct {
	api          api.API
	config       *config.Config
	ui           *ui.Console
	logger       *slog.Logger
	registry     *CommandRegistry
	errorHandler *ErrorHandler

	// exited is set by the bye command and ends Run.
	exited bool
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(api api.API, cfg *config.Config, console *ui.Console, logger *slog.Logger) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	app := &App{
		api:          api,
		config:       cfg,
		ui:           console,
		logger:       logger,
		errorHandler: NewErrorHandler(),
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// Load reads the stored tasks and tells the user about any it had to skip.
func (a *App) Load(ctx context.Context) error {
	result, err := a.api.Load(ctx)
	if err != nil {
		a.ui.ShowError(a.errorHandler.Message(err))
		return err
	}

	if n := len(result.Skipped); n > 0 {
		for _, skipped := range result.Skipped {
			a.logger.Debug("skipped stored task", "line", skipped.Line, "text", skipped.Text, "error", skipped.Err)
		}
		a.ui.ShowError(fmt.Sprintf("I skipped %d saved %s that I couldn't read.", n, pluralize(n, "task")))
	}
	return nil
}

// Run greets the user and executes commands until bye or end of input.
// Failed commands are reported and do not end the session. Run returns
// as soon as ctx is cancelled, even while waiting for input.
func (a *App) Run(ctx context.Context) error {
	a.ui.ShowWelcome()

	lines, next := a.readLines()
	defer close(next)

	for !a.exited {
		if err := ctx.Err(); err != nil {
			return err
		}

		next <- struct{}{}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case in := <-lines:
			if !in.ok {
				return a.ui.Err()
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			_ = a.Dispatch(ctx, in.line)
		}
	}
	return nil
}

type inputLine struct {
	line string
	ok   bool
}

// readLines reads one command from the console for every value sent on
// next. The reader may stay blocked on input after Run has returned, so
// lines is buffered and the reader never waits on a result being taken.
func (a *App) readLines() (<-chan inputLine, chan<- struct{}) {
	lines := make(chan inputLine, 1)
	next := make(chan struct{})
	go func() {
		for range next {
			line, ok := a.ui.ReadCommand()
			lines <- inputLine{line: line, ok: ok}
			if !ok {
				return
			}
		}
	}()
	return lines, next
}

// Dispatch runs a single command line such as "deadline return book /by 2019-12-02".
func (a *App) Dispatch(ctx context.Context, line string) error {
	name, rest := splitCommand(line)
	var args []string
	if rest != "" {
		args = []string{rest}
	}
	return a.Execute(ctx, name, args)
}

// Execute runs the named command and shows any failure to the user.
func (a *App) Execute(ctx context.Context, name string, args []string) error {
	err := a.registry.Execute(ctx, name, args)
	if err != nil {
		code := a.errorHandler.GetErrorCode(err)
		switch {
		case a.errorHandler.IsValidationError(err):
			a.logger.Debug("rejected command input", "command", name, "code", code, "error", err)
		case errors.ShouldLogError(err):
			a.logger.Error("command failed", "command", name, "code", code, "error", err)
		}
		a.ui.ShowError(a.errorHandler.Message(err))
	}
	return err
}

// Exited reports whether the user has said bye.
func (a *App) Exited() bool {
	return a.exited
}

func splitCommand(line string) (string, string) {
	name, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	return strings.ToLower(name), strings.TrimSpace(rest)
}

func pluralize(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
