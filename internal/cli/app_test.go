package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hachi/internal/errors"
	"hachi/internal/storage"
)

func TestApp_Run_Session(t *testing.T) {
	input := strings.Join([]string{
		"todo read book",
		"",
		"# a comment line",
		"deadline return book /by 2019-12-02",
		"mark 1",
		"list",
		"bye",
		"todo never added",
	}, "\n")
	ta := setupTestApp(t, input)

	require.NoError(t, ta.app.Run(context.Background()))

	out := ta.out.String()
	assert.Contains(t, out, "People round these parts call me Hachi.")
	assert.Contains(t, out, "Got it. I've added this task:\n  [T][ ] read book\nNow you have 1 task in the list.")
	assert.Contains(t, out, "Now you have 2 tasks in the list.")
	assert.Contains(t, out, "Nice! I've marked this task as done:\n  [T][X] read book")
	assert.Contains(t, out, "1.[T][X] read book\n2.[D][ ] return book (by: Dec 2 2019)")
	assert.Contains(t, out, "Bye. Hope to see you again soon!")
	assert.NotContains(t, out, "never added")
	assert.True(t, ta.app.Exited())

	data, err := os.ReadFile(ta.path)
	require.NoError(t, err)
	assert.Equal(t, "T | 1 | read book\nD | 0 | return book | 2019-12-02\n", string(data))
}

func TestApp_Run_ErrorsDoNotEndSession(t *testing.T) {
	ta := setupTestApp(t, "blah\nmark 7\ntodo\ntodo still here\n")

	require.NoError(t, ta.app.Run(context.Background()))

	out := ta.out.String()
	assert.Contains(t, out, `I don't know what "blah" means`)
	assert.Contains(t, out, "There is no task 7. Your list is empty.")
	assert.Contains(t, out, "The description cannot be empty.")
	assert.Contains(t, out, "[T][ ] still here")
	assert.False(t, ta.app.Exited(), "end of input ends the session without bye")
}

func TestApp_Run_CancelledContext(t *testing.T) {
	ta := setupTestApp(t, "todo read book\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ta.app.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotContains(t, ta.out.String(), "read book")
}

func TestApp_Run_CancelWhileWaitingForInput(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	path := filepath.Join(t.TempDir(), "hachi.txt")
	ta := newTestApp(t, pr, storage.NewFileStorage(path, 0o755, nil), path)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ta.app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run kept waiting for input after the context was cancelled")
	}

	_, err := io.WriteString(pw, "todo after interrupt\n")
	require.NoError(t, err)

	assert.NotContains(t, ta.out.String(), "after interrupt")
	assert.NotContains(t, ta.out.String(), "I couldn't reach your saved tasks")
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "nothing is saved after the interrupt")
}

func TestApp_Dispatch_CommandWordIsCaseInsensitive(t *testing.T) {
	ta := setupTestApp(t, "")

	out := ta.mustRun(t, "TODO Read Book")
	assert.Contains(t, out, "[T][ ] Read Book")

	out = ta.mustRun(t, "  List  ")
	assert.Contains(t, out, "1.[T][ ] Read Book")
}

func TestApp_Dispatch_UnknownCommand(t *testing.T) {
	ta := setupTestApp(t, "")

	out, err := ta.run(t, "fly me to the moon")
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeUnknownCommand))
	assert.Contains(t, out, `I don't know what "fly" means`)
}

func TestApp_Load_ReportsSkippedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hachi.txt")
	content := "T | 0 | read book\nX | 0 | broken\nD | 0 | return book | not-a-date\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	ta := setupTestAppWithStore(t, "", storage.NewFileStorage(path, 0o755, nil), path)

	assert.Contains(t, ta.out.String(), "I skipped 2 saved tasks that I couldn't read.")
	out := ta.mustRun(t, "list")
	assert.Contains(t, out, "1.[T][ ] read book")
	assert.NotContains(t, out, "2.")
}

func TestApp_SaveFailure(t *testing.T) {
	ta := setupTestAppWithStore(t, "", failingStorage{}, "")

	out, err := ta.run(t, "todo read book")
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeStorage))
	assert.Contains(t, out, "I couldn't reach your saved tasks. Please try again.")

	out = ta.mustRun(t, "list")
	assert.Contains(t, out, "Your list is empty.", "failed add is not kept")
}

func TestApp_Execute_LogsFailures(t *testing.T) {
	ta := setupTestAppWithStore(t, "", failingStorage{}, "")

	_, err := ta.run(t, "mark abc")
	require.Error(t, err)
	_, err = ta.run(t, "todo")
	require.Error(t, err)

	logs := ta.log.String()
	assert.Contains(t, logs, "rejected command input")
	assert.Contains(t, logs, "code=VALIDATION_FAILED")
	assert.NotContains(t, logs, "level=ERROR", "bad input is not an error worth logging")

	_, err = ta.run(t, "todo read book")
	require.Error(t, err)

	logs = ta.log.String()
	assert.Contains(t, logs, "level=ERROR")
	assert.Contains(t, logs, "command failed")
	assert.Contains(t, logs, "code=STORAGE_ERROR")
}

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		line string
		name string
		rest string
	}{
		{line: "list", name: "list"},
		{line: "  todo   read book  ", name: "todo", rest: "read book"},
		{line: "Deadline x /by 2019-12-02", name: "deadline", rest: "x /by 2019-12-02"},
		{line: "", name: ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			name, rest := splitCommand(tt.line)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.rest, rest)
		})
	}
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "tasks", pluralize(0, "task"))
	assert.Equal(t, "task", pluralize(1, "task"))
	assert.Equal(t, "tasks", pluralize(2, "task"))
}
