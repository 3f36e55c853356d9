package storage

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"

	"hachi/internal/domain"
	"hachi/internal/errors"
	"hachi/internal/logging"
)

// FileStorage keeps the task list in a text file, one encoded task per line.
type FileStorage struct {
	path    string
	dirPerm os.FileMode
	logger  *slog.Logger

	// digest of the content last read from or written to path
	digest    uint64
	hasDigest bool
}

// NewFileStorage creates a FileStorage for path. Missing parent
// directories are created with dirPerm on the first Save.
func NewFileStorage(path string, dirPerm os.FileMode, logger *slog.Logger) *FileStorage {
	if logger == nil {
		logger = logging.Discard()
	}
	return &FileStorage{
		path:    path,
		dirPerm: dirPerm,
		logger:  logger,
	}
}

// Path returns the file the tasks are stored in.
func (s *FileStorage) Path() string {
	return s.path
}

// Load reads the task file. A missing file is an empty list.
func (s *FileStorage) Load(ctx context.Context) (*LoadResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.logger.Debug("task file does not exist yet", "path", s.path)
		return &LoadResult{}, nil
	}
	if err != nil {
		return nil, errors.NewStorageError("read task file", err)
	}

	result := s.decodeAll(string(data))

	s.digest = xxhash.Sum64(data)
	s.hasDigest = true
	s.logger.Debug("loaded tasks", "path", s.path, "tasks", len(result.Tasks), "skipped", len(result.Skipped))
	return result, nil
}

// decodeAll decodes every line of content. Lines of any length are
// accepted; a line that does not decode is skipped and reported.
func (s *FileStorage) decodeAll(content string) *LoadResult {
	result := &LoadResult{}

	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		task, err := Decode(line)
		if err != nil {
			lineErr := LineError{Line: i + 1, Text: line, Err: err}
			s.logger.Warn("skipping corrupted task line", "path", s.path, "line", i+1, "error", err)
			result.Skipped = append(result.Skipped, lineErr)
			continue
		}
		result.Tasks = append(result.Tasks, task)
	}
	return result
}

// Save writes tasks to the file, replacing it atomically. Nothing is
// written when the content is unchanged since the last Load or Save.
func (s *FileStorage) Save(ctx context.Context, tasks []domain.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var sb strings.Builder
	for i, task := range tasks {
		line, err := Encode(task)
		if err != nil {
			return errors.NewStorageError("encode task", err).WithContext("position", i+1)
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	content := sb.String()

	digest := xxhash.Sum64String(content)
	if s.hasDigest && digest == s.digest {
		if _, err := os.Stat(s.path); err == nil {
			s.logger.Debug("task file unchanged, skipping write", "path", s.path)
			return nil
		}
	}

	if err := s.writeAtomic(content); err != nil {
		return errors.NewStorageError("write task file", err)
	}

	s.digest = digest
	s.hasDigest = true
	s.logger.Debug("saved tasks", "path", s.path, "tasks", len(tasks))
	return nil
}

func (s *FileStorage) writeAtomic(content string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, s.dirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".hachi-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, s.path)
}

// Close is a no-op; the file is only open during Load and Save.
func (s *FileStorage) Close() error {
	return nil
}
