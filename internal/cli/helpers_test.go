package cli

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"hachi/internal/api"
	"hachi/internal/config"
	"hachi/internal/domain"
	"hachi/internal/logging"
	"hachi/internal/storage"
	"hachi/internal/ui"
)

// failingStorage loads an empty list and refuses every save.
type failingStorage struct{}

func (failingStorage) Load(ctx context.Context) (*storage.LoadResult, error) {
	return &storage.LoadResult{}, nil
}

func (failingStorage) Save(ctx context.Context, tasks []domain.Task) error {
	return stderrors.New("disk full")
}

func (failingStorage) Close() error { return nil }

type testApp struct {
	app  *App
	out  *bytes.Buffer
	log  *bytes.Buffer
	path string
}

// setupTestApp builds an App backed by a task file in a temp directory,
// reading commands from input.
func setupTestApp(t *testing.T, input string) *testApp {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hachi.txt")
	return setupTestAppWithStore(t, input, storage.NewFileStorage(path, 0o755, nil), path)
}

func setupTestAppWithStore(t *testing.T, input string, store storage.Storage, path string) *testApp {
	t.Helper()
	return newTestApp(t, strings.NewReader(input), store, path)
}

// newTestApp builds an App reading from in, with debug logging captured.
func newTestApp(t *testing.T, in io.Reader, store storage.Storage, path string) *testApp {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	cfg := config.NewConfig()
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	logger := logging.New(logs, true)

	console := ui.New(in, out, ui.Options{
		BotName:      cfg.Ui.BotName,
		Prompt:       cfg.Ui.Prompt,
		DividerWidth: cfg.Ui.DividerWidth,
	})
	app := NewApp(api.New(store, cfg, logger), cfg, console, logger)
	require.NoError(t, app.Load(context.Background()))

	return &testApp{app: app, out: out, log: logs, path: path}
}

// run executes a command line and returns what it printed.
func (ta *testApp) run(t *testing.T, line string) (string, error) {
	t.Helper()
	ta.out.Reset()
	err := ta.app.Dispatch(context.Background(), line)
	return ta.out.String(), err
}

// mustRun executes a command line that is expected to succeed.
func (ta *testApp) mustRun(t *testing.T, line string) string {
	t.Helper()
	out, err := ta.run(t, line)
	require.NoError(t, err, "command %q failed: %s", line, out)
	return out
}
