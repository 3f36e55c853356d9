package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hachi/internal/domain"
)

func newTestFileStorage(t *testing.T) (*FileStorage, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "hachi.txt")
	return NewFileStorage(path, 0o755, nil), path
}

func TestFileStorage_LoadMissingFile(t *testing.T) {
	s, _ := newTestFileStorage(t)

	result, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result.Tasks)
	assert.Empty(t, result.Skipped)
}

func TestFileStorage_SaveAndLoad(t *testing.T) {
	s, path := newTestFileStorage(t)
	ctx := context.Background()

	done := domain.NewTodo("read book")
	done.Mark()
	tasks := []domain.Task{
		done,
		domain.NewDeadline("return book", day(2019, 12, 2)),
		domain.NewEvent("camp", day(2020, 1, 30), day(2020, 2, 2)),
	}

	require.NoError(t, s.Save(ctx, tasks))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"T | 1 | read book\n"+
			"D | 0 | return book | 2019-12-02\n"+
			"E | 0 | camp | 2020-01-30 | 2020-02-02\n",
		string(data))

	result, err := NewFileStorage(path, 0o755, nil).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, tasks, result.Tasks)
	assert.Empty(t, result.Skipped)
}

func TestFileStorage_SkipsCorruptLines(t *testing.T) {
	s, path := newTestFileStorage(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	content := "T | 0 | wash car\n" +
		"\n" +
		"Q | 0 | what is this\n" +
		"D | 1 | pay rent | 2024-02-01\r\n" +
		"D | 0 | bad date | someday\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	result, err := s.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Tasks, 2)
	assert.Equal(t, "wash car", result.Tasks[0].Name())
	assert.Equal(t, "pay rent", result.Tasks[1].Name())
	assert.True(t, result.Tasks[1].Completed())

	require.Len(t, result.Skipped, 2)
	assert.Equal(t, 3, result.Skipped[0].Line)
	assert.Equal(t, "Q | 0 | what is this", result.Skipped[0].Text)
	assert.Contains(t, result.Skipped[0].Error(), "line 3")
	assert.Equal(t, 5, result.Skipped[1].Line)
	assert.Contains(t, result.Skipped[1].Err.Error(), ErrBadDate.Error())
}

func TestFileStorage_SkipsOversizedLine(t *testing.T) {
	s, path := newTestFileStorage(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	content := "T | 0 | keep me\n" +
		strings.Repeat("x", 2<<20) + "\n" +
		"T | 0 | keep me too\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	result, err := s.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Tasks, 2)
	assert.Equal(t, "keep me", result.Tasks[0].Name())
	assert.Equal(t, "keep me too", result.Tasks[1].Name())
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, 2, result.Skipped[0].Line)
}

func TestFileStorage_LoadsLongName(t *testing.T) {
	s, _ := newTestFileStorage(t)
	name := strings.Repeat("n", 2<<20)

	require.NoError(t, s.Save(context.Background(), []domain.Task{domain.NewTodo(name)}))

	reloaded := NewFileStorage(s.path, 0o755, nil)
	result, err := reloaded.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Tasks, 1)
	assert.Equal(t, name, result.Tasks[0].Name())
}

func TestFileStorage_SaveRejectsLineBreakInName(t *testing.T) {
	s, path := newTestFileStorage(t)

	err := s.Save(context.Background(), []domain.Task{
		domain.NewTodo("fine"),
		domain.NewTodo("name\r"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrLineBreakInName.Error())

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "nothing is written when a task cannot be encoded")
}

func TestFileStorage_SaveEmptyList(t *testing.T) {
	s, path := newTestFileStorage(t)

	require.NoError(t, s.Save(context.Background(), nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFileStorage_SkipsUnchangedWrite(t *testing.T) {
	s, path := newTestFileStorage(t)
	ctx := context.Background()
	tasks := []domain.Task{domain.NewTodo("read book")}

	require.NoError(t, s.Save(ctx, tasks))

	old := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(path, old, old))

	require.NoError(t, s.Save(ctx, tasks))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(old), "unchanged content must not be rewritten")

	tasks[0].Mark()
	require.NoError(t, s.Save(ctx, tasks))
	info, err = os.Stat(path)
	require.NoError(t, err)
	assert.False(t, info.ModTime().Equal(old))
}

func TestFileStorage_RewritesDeletedFile(t *testing.T) {
	s, path := newTestFileStorage(t)
	ctx := context.Background()
	tasks := []domain.Task{domain.NewTodo("read book")}

	require.NoError(t, s.Save(ctx, tasks))
	require.NoError(t, os.Remove(path))
	require.NoError(t, s.Save(ctx, tasks))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestFileStorage_CancelledContext(t *testing.T) {
	s, _ := newTestFileStorage(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.Save(ctx, nil), context.Canceled)
}
