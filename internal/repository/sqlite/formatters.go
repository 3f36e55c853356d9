package sqlite

import (
	"database/sql"
	"time"

	"hachi/internal/domain"
)

// FormatDateForDB formats a calendar date for a date column, returning
// NULL for the zero time.
func FormatDateForDB(t time.Time) sql.NullString {
	if t.IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: domain.FormatDate(t), Valid: true}
}

// ParseDateFromDB parses a date column written by FormatDateForDB.
func ParseDateFromDB(s sql.NullString) (time.Time, error) {
	if !s.Valid {
		return time.Time{}, nil
	}
	return domain.ParseDate(s.String)
}
