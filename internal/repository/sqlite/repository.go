package sqlite

import (
	"context"
	"database/sql"

	"hachi/internal/errors"
	"hachi/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations
type Repository interface {
	// ListTasks returns every stored task row ordered by position.
	ListTasks(ctx context.Context) ([]*TaskRow, error)
	// ReplaceTasks replaces the stored rows with rows in one transaction.
	ReplaceTasks(ctx context.Context, rows []*TaskRow) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(ctx context.Context, dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	if err := migrations.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// ListTasks returns every stored task row ordered by position.
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*TaskRow, error) {
	query := `
	SELECT position, kind, completed, name, by_date, from_date, to_date
	FROM tasks
	ORDER BY position`
	return QueryMultiple(ctx, r.db, query, ScanTaskRows, "tasks")
}

// ReplaceTasks deletes all rows and inserts rows in their place.
func (r *SQLiteRepository) ReplaceTasks(ctx context.Context, rows []*TaskRow) error {
	return InTx(ctx, r.db, "replace tasks", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM tasks"); err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}

		stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tasks (position, kind, completed, name, by_date, from_date, to_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, row := range rows {
			completed := 0
			if row.Completed {
				completed = 1
			}
			if _, err := stmt.ExecContext(ctx, row.Position, row.Kind, completed, row.Name, row.ByDate, row.FromDate, row.ToDate); err != nil {
				return err
			}
		}
		return nil
	})
}
