package sqlite

import (
	"context"
	"log/slog"

	"hachi/internal/domain"
	"hachi/internal/logging"
	"hachi/internal/storage"
)

// Store adapts a Repository to storage.Storage.
type Store struct {
	repo   Repository
	logger *slog.Logger
}

var _ storage.Storage = (*Store)(nil)

// NewStore creates a Store backed by repo.
func NewStore(repo Repository, logger *slog.Logger) *Store {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Store{repo: repo, logger: logger}
}

// Load reads all task rows. Rows that cannot be mapped to a task are
// skipped and reported with their position as the line number.
func (s *Store) Load(ctx context.Context) (*storage.LoadResult, error) {
	rows, err := s.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	result := &storage.LoadResult{}
	for _, row := range rows {
		task, err := FromTaskRow(row)
		if err != nil {
			s.logger.Warn("skipping corrupted task row", "position", row.Position, "error", err)
			result.Skipped = append(result.Skipped, storage.LineError{
				Line: int(row.Position),
				Text: row.Kind + domain.FieldSeparator + row.Name,
				Err:  err,
			})
			continue
		}
		result.Tasks = append(result.Tasks, task)
	}

	s.logger.Debug("loaded tasks", "tasks", len(result.Tasks), "skipped", len(result.Skipped))
	return result, nil
}

// Save replaces the stored tasks with tasks.
func (s *Store) Save(ctx context.Context, tasks []domain.Task) error {
	rows := make([]*TaskRow, len(tasks))
	for i, task := range tasks {
		rows[i] = ToTaskRow(i+1, task)
	}

	if err := s.repo.ReplaceTasks(ctx, rows); err != nil {
		return err
	}
	s.logger.Debug("saved tasks", "tasks", len(tasks))
	return nil
}

// Close closes the underlying repository.
func (s *Store) Close() error {
	return s.repo.Close()
}
