package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"hachi/internal/api"
	"hachi/internal/config"
	"hachi/internal/logging"
	"hachi/internal/storage"
	"hachi/internal/ui"
)

// Version is set at build time with -ldflags "-X hachi/internal/cli.Version=...".
var Version = "dev"

// Streams are the input and outputs the application talks through
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
	// Interactive shows a prompt before each command is read.
	Interactive bool
}

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	streams Streams
	config  *config.Config
	store   storage.Storage
	app     *App
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(streams Streams) *RootCommand {
	root := &RootCommand{streams: streams}

	root.cmd = &cobra.Command{
		Use:   "hachi",
		Short: "A friendly command-line task tracker",
		Long: `Hachi keeps track of your todos, deadlines and events.

Run hachi with no arguments to start a session and type commands one per
line, or run a single command directly:

  hachi todo read book
  hachi deadline return book /by 2019-12-02
  hachi event project meeting /from 2019-12-02 /to 2019-12-04
  hachi list
  hachi mark 2
  hachi find book
  hachi date 2019-12-02

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > config file > defaults

  HACHI_CONFIG             Config file (default: ~/.hachi/config.yaml)
  HACHI_STORAGE_BACKEND    file or sqlite (default: file)
  HACHI_DATA_DIR           Data directory (default: ~/.hachi)
  HACHI_DATA_FILE          Task file name (default: hachi.txt)
  HACHI_DB_FILE            Database file name (default: hachi.db)
  HACHI_DIR_PERMISSIONS    Data directory permissions in octal (default: 755)
  HACHI_BOT_NAME           Name the bot introduces itself with (default: Hachi)
  HACHI_PROMPT             Prompt shown in a terminal (default: "> ")
  HACHI_DIVIDER_WIDTH      Divider line width (default: 60)
  HACHI_NAME_MAX_LENGTH    Longest task description (default: 255)
  HACHI_APP_TIMEOUT        Storage timeout (default: 10s)
  HACHI_VERBOSE            Enable debug logging (default: false)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.app.Run(cmd.Context())
		},
	}
	root.cmd.SetIn(streams.In)
	root.cmd.SetOut(streams.Out)
	root.cmd.SetErr(streams.Err)

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command with args
func (r *RootCommand) Execute(ctx context.Context, args []string) error {
	defer r.close()
	r.cmd.SetArgs(args)
	return r.cmd.ExecuteContext(ctx)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "Config file (overrides HACHI_CONFIG)")

	// Storage configuration
	flags.String("backend", "", "Storage backend, file or sqlite (overrides HACHI_STORAGE_BACKEND)")
	flags.String("data-dir", "", "Data directory (overrides HACHI_DATA_DIR)")
	flags.String("data-file", "", "Task file name (overrides HACHI_DATA_FILE)")
	flags.String("db-file", "", "Database file name (overrides HACHI_DB_FILE)")

	// Ui configuration
	flags.String("bot-name", "", "Name the bot introduces itself with (overrides HACHI_BOT_NAME)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Storage timeout (overrides HACHI_APP_TIMEOUT)")
	flags.BoolP("verbose", "v", false, "Enable debug logging (overrides HACHI_VERBOSE)")
}

// taskCommands lists the one-shot subcommands in the order help shows them
var taskCommands = []struct {
	name  string
	use   string
	short string
}{
	{"todo", "todo <description>", "Add a task without a date"},
	{"deadline", "deadline <description> /by <yyyy-mm-dd>", "Add a task due on a date"},
	{"event", "event <description> /from <yyyy-mm-dd> /to <yyyy-mm-dd>", "Add a task spanning a range of dates"},
	{"list", "list", "Show all tasks"},
	{"sort", "sort", "Sort tasks by name"},
	{"mark", "mark <task number>", "Mark a task as done"},
	{"unmark", "unmark <task number>", "Mark a task as not done"},
	{"delete", "delete <task number>", "Remove a task"},
	{"find", "find <text>", "Show tasks whose name contains text"},
	{"date", "date <yyyy-mm-dd>", "Show deadlines and events on a date"},
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	for _, tc := range taskCommands {
		name := tc.name
		r.cmd.AddCommand(&cobra.Command{
			Use:   tc.use,
			Short: tc.short,
			RunE: func(cmd *cobra.Command, args []string) error {
				return reported(r.app.Execute(cmd.Context(), name, args))
			},
		})
	}

	r.cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hachi %s\n", Version)
		},
	})
}

// setup loads the configuration and builds the application
func (r *RootCommand) setup(cmd *cobra.Command) error {
	cfg, err := r.loadConfig()
	if err != nil {
		return err
	}
	r.config = cfg

	ctx := cmd.Context()
	logger := logging.New(r.streams.Err, cfg.Application.Verbose)

	store, err := config.CreateStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	r.store = store

	console := ui.New(r.streams.In, r.streams.Out, ui.Options{
		BotName:      cfg.Ui.BotName,
		Prompt:       cfg.Ui.Prompt,
		ShowPrompt:   r.streams.Interactive,
		DividerWidth: cfg.Ui.DividerWidth,
	})

	r.app = NewApp(api.New(store, cfg, logger), cfg, console, logger)
	return reported(r.app.Load(ctx))
}

// loadConfig applies flags that were set on top of file and environment configuration
func (r *RootCommand) loadConfig() (*config.Config, error) {
	flags := r.cmd.PersistentFlags()

	loader := config.NewLoader()
	if path, _ := flags.GetString("config"); path != "" {
		loader = config.NewLoaderWithFile(path)
	}

	overrides := &config.ConfigOverrides{}
	if flags.Changed("backend") {
		backend, _ := flags.GetString("backend")
		overrides.Backend = &backend
	}
	if flags.Changed("data-dir") {
		dir, _ := flags.GetString("data-dir")
		overrides.DataDir = &dir
	}
	if flags.Changed("data-file") {
		file, _ := flags.GetString("data-file")
		overrides.DataFile = &file
	}
	if flags.Changed("db-file") {
		file, _ := flags.GetString("db-file")
		overrides.DBFile = &file
	}
	if flags.Changed("bot-name") {
		name, _ := flags.GetString("bot-name")
		overrides.BotName = &name
	}
	if flags.Changed("app-timeout") {
		timeout, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &timeout
	}
	if flags.Changed("verbose") {
		verbose, _ := flags.GetBool("verbose")
		overrides.Verbose = &verbose
	}

	return loader.LoadWithOverrides(overrides)
}

// reportedError marks an error the console has already shown to the user
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error {
	return e.error
}

func reported(err error) error {
	if err == nil {
		return nil
	}
	return reportedError{err}
}

// IsReported reports whether err has already been shown to the user
func IsReported(err error) bool {
	var re reportedError
	return stderrors.As(err, &re)
}

func (r *RootCommand) close() {
	if r.store != nil {
		r.store.Close()
		r.store = nil
	}
}
