package sqlite

import (
	"database/sql"
	"time"

	"go.trai.ch/zerr"

	"hachi/internal/domain"
	"hachi/internal/storage"
)

// ToTaskRow maps a task at the given 1-based position to its row.
func ToTaskRow(position int, task domain.Task) *TaskRow {
	row := &TaskRow{
		Position:  int64(position),
		Kind:      task.Kind().String(),
		Completed: task.Completed(),
		Name:      task.Name(),
	}

	switch task.Kind() {
	case domain.KindDeadline:
		row.ByDate = FormatDateForDB(task.By())
	case domain.KindEvent:
		row.FromDate = FormatDateForDB(task.From())
		row.ToDate = FormatDateForDB(task.To())
	}
	return row
}

// FromTaskRow maps a row back to a task.
func FromTaskRow(row *TaskRow) (domain.Task, error) {
	kind := domain.Kind(row.Kind)
	if !kind.Valid() {
		return domain.Task{}, zerr.With(zerr.Wrap(storage.ErrUnknownKind, "map task row"), "kind", row.Kind)
	}

	var task domain.Task
	switch kind {
	case domain.KindTodo:
		task = domain.NewTodo(row.Name)
	case domain.KindDeadline:
		by, err := requiredDate(row.ByDate, "by_date")
		if err != nil {
			return domain.Task{}, err
		}
		task = domain.NewDeadline(row.Name, by)
	case domain.KindEvent:
		from, err := requiredDate(row.FromDate, "from_date")
		if err != nil {
			return domain.Task{}, err
		}
		to, err := requiredDate(row.ToDate, "to_date")
		if err != nil {
			return domain.Task{}, err
		}
		task = domain.NewEvent(row.Name, from, to)
	}

	if row.Completed {
		task.Mark()
	}
	return task, nil
}

func requiredDate(col sql.NullString, column string) (time.Time, error) {
	if !col.Valid {
		return time.Time{}, zerr.With(zerr.Wrap(storage.ErrBadDate, "map task row"), "column", column)
	}
	t, err := ParseDateFromDB(col)
	if err != nil {
		return time.Time{}, zerr.With(zerr.With(zerr.Wrap(storage.ErrBadDate, "map task row"), "column", column), "value", col.String)
	}
	return t, nil
}
