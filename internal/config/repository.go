package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"hachi/internal/logging"
	"hachi/internal/repository/sqlite"
	"hachi/internal/storage"
)

// CreateStorage creates the storage backend selected by the configuration
func CreateStorage(ctx context.Context, config *Config, logger *slog.Logger) (storage.Storage, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	switch config.Storage.Backend {
	case BackendSQLite:
		return createSQLiteStorage(ctx, config, logger)
	default:
		store := storage.NewFileStorage(config.GetDataFilePath(), config.GetDirPermissions(), logger)
		logger.Debug("using file storage", "path", store.Path())
		return store, nil
	}
}

func createSQLiteStorage(ctx context.Context, config *Config, logger *slog.Logger) (storage.Storage, error) {
	if err := os.MkdirAll(config.Storage.Dir, config.GetDirPermissions()); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	repo, err := sqlite.New(ctx, config.GetDatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return sqlite.NewStore(repo, logger), nil
}
