package sqlite

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScanner implements Scanner over a fixed set of column values.
type TestScanner struct {
	values []interface{}
	err    error
}

func (s *TestScanner) Scan(dest ...interface{}) error {
	if s.err != nil {
		return s.err
	}
	for i, d := range dest {
		switch v := d.(type) {
		case *int64:
			*v = s.values[i].(int64)
		case *string:
			*v = s.values[i].(string)
		case *sql.NullString:
			if s.values[i] == nil {
				*v = sql.NullString{}
			} else {
				*v = sql.NullString{String: s.values[i].(string), Valid: true}
			}
		}
	}
	return nil
}

// TestRows implements Rows over a slice of scanners.
type TestRows struct {
	rows []*TestScanner
	pos  int
	err  error
}

func (r *TestRows) Next() bool {
	if r.pos >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *TestRows) Scan(dest ...interface{}) error {
	return r.rows[r.pos-1].Scan(dest...)
}

func (r *TestRows) Err() error {
	return r.err
}

func TestScanTaskRow(t *testing.T) {
	tests := []struct {
		name     string
		values   []interface{}
		expected *TaskRow
	}{
		{
			name:   "todo",
			values: []interface{}{int64(1), "T", int64(0), "read book", nil, nil, nil},
			expected: &TaskRow{
				Position: 1,
				Kind:     "T",
				Name:     "read book",
			},
		},
		{
			name:   "completed deadline",
			values: []interface{}{int64(2), "D", int64(1), "return book", "2019-12-02", nil, nil},
			expected: &TaskRow{
				Position:  2,
				Kind:      "D",
				Completed: true,
				Name:      "return book",
				ByDate:    sql.NullString{String: "2019-12-02", Valid: true},
			},
		},
		{
			name:   "event",
			values: []interface{}{int64(3), "E", int64(0), "camp", nil, "2020-01-30", "2020-02-02"},
			expected: &TaskRow{
				Position: 3,
				Kind:     "E",
				Name:     "camp",
				FromDate: sql.NullString{String: "2020-01-30", Valid: true},
				ToDate:   sql.NullString{String: "2020-02-02", Valid: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, err := ScanTaskRow(&TestScanner{values: tt.values})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, row)
		})
	}
}

func TestScanTaskRow_Error(t *testing.T) {
	_, err := ScanTaskRow(&TestScanner{err: errors.New("scan failed")})
	assert.EqualError(t, err, "scan failed")
}

func TestScanTaskRows(t *testing.T) {
	rows := &TestRows{rows: []*TestScanner{
		{values: []interface{}{int64(1), "T", int64(0), "a", nil, nil, nil}},
		{values: []interface{}{int64(2), "T", int64(1), "b", nil, nil, nil}},
	}}

	result, err := ScanTaskRows(rows)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "a", result[0].Name)
	assert.True(t, result[1].Completed)
}

func TestScanTaskRows_RowsError(t *testing.T) {
	_, err := ScanTaskRows(&TestRows{err: errors.New("iteration failed")})
	assert.EqualError(t, err, "iteration failed")
}
