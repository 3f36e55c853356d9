package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTaskRow scans a single task row in column order
// position, kind, completed, name, by_date, from_date, to_date.
func ScanTaskRow(scanner Scanner) (*TaskRow, error) {
	row := &TaskRow{}
	var completed int64

	err := scanner.Scan(
		&row.Position,
		&row.Kind,
		&completed,
		&row.Name,
		&row.ByDate,
		&row.FromDate,
		&row.ToDate,
	)
	if err != nil {
		return nil, err
	}

	row.Completed = completed != 0
	return row, nil
}

// ScanTaskRows scans all task rows.
func ScanTaskRows(rows Rows) ([]*TaskRow, error) {
	var result []*TaskRow
	for rows.Next() {
		row, err := ScanTaskRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
