package sqlite

import "database/sql"

// TaskRow is a task as stored in the tasks table. Position is the
// 1-based index of the task in the list. Date columns hold yyyy-mm-dd
// and are NULL for kinds that do not carry them.
type TaskRow struct {
	Position  int64
	Kind      string
	Completed bool
	Name      string
	ByDate    sql.NullString
	FromDate  sql.NullString
	ToDate    sql.NullString
}
