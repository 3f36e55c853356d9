package storage

import (
	"strings"
	"time"

	"go.trai.ch/zerr"

	"hachi/internal/domain"
)

var (
	// ErrMalformedLine is returned when a line has too few fields.
	ErrMalformedLine = zerr.New("malformed task line")
	// ErrUnknownKind is returned when the type tag is not T, D or E.
	ErrUnknownKind = zerr.New("unknown task type tag")
	// ErrBadStatus is returned when the completion flag is not 0 or 1.
	ErrBadStatus = zerr.New("completion flag must be 0 or 1")
	// ErrBadDate is returned when a date field is not yyyy-mm-dd.
	ErrBadDate = zerr.New("invalid date, expected yyyy-mm-dd")
	// ErrLineBreakInName is returned when a name cannot fit on one line.
	ErrLineBreakInName = zerr.New("task name contains a line break")
)

// Encode returns the persisted line for t. Names containing '\r' or '\n'
// cannot be stored one task per line and are rejected.
func Encode(t domain.Task) (string, error) {
	if strings.ContainsAny(t.Name(), "\r\n") {
		return "", zerr.With(zerr.Wrap(ErrLineBreakInName, "encode task"), "name", t.Name())
	}
	return t.ToData(), nil
}

// Decode parses a line produced by Encode.
//
// The tag and completion flag are read from the left and the date fields
// of deadlines and events from the right, so the name in between may
// itself contain the field separator.
func Decode(line string) (domain.Task, error) {
	parts := strings.SplitN(line, domain.FieldSeparator, 3)
	if len(parts) < 3 {
		return domain.Task{}, zerr.With(zerr.Wrap(ErrMalformedLine, "decode task"), "fields", len(parts))
	}

	completed, err := decodeStatus(parts[1])
	if err != nil {
		return domain.Task{}, err
	}

	kind := domain.Kind(parts[0])
	if !kind.Valid() {
		return domain.Task{}, zerr.With(zerr.Wrap(ErrUnknownKind, "decode task"), "tag", parts[0])
	}

	var task domain.Task
	switch kind {
	case domain.KindTodo:
		task = domain.NewTodo(parts[2])
	case domain.KindDeadline:
		name, dates, err := splitTrailer(parts[2], 1)
		if err != nil {
			return domain.Task{}, err
		}
		by, err := decodeDate(dates[0])
		if err != nil {
			return domain.Task{}, err
		}
		task = domain.NewDeadline(name, by)
	case domain.KindEvent:
		name, dates, err := splitTrailer(parts[2], 2)
		if err != nil {
			return domain.Task{}, err
		}
		from, err := decodeDate(dates[0])
		if err != nil {
			return domain.Task{}, err
		}
		to, err := decodeDate(dates[1])
		if err != nil {
			return domain.Task{}, err
		}
		task = domain.NewEvent(name, from, to)
	}

	if completed {
		task.Mark()
	}
	return task, nil
}

func decodeStatus(s string) (bool, error) {
	switch s {
	case "1":
		return true, nil
	case "0":
		return false, nil
	default:
		return false, zerr.With(zerr.Wrap(ErrBadStatus, "decode task"), "status", s)
	}
}

func decodeDate(s string) (time.Time, error) {
	t, err := domain.ParseDate(s)
	if err != nil {
		return time.Time{}, zerr.With(zerr.Wrap(ErrBadDate, "decode task"), "date", s)
	}
	return t, nil
}

// splitTrailer cuts n separator-delimited fields off the end of s and
// returns what is left in front of them.
func splitTrailer(s string, n int) (string, []string, error) {
	fields := make([]string, n)
	for i := n - 1; i >= 0; i-- {
		idx := strings.LastIndex(s, domain.FieldSeparator)
		if idx < 0 {
			return "", nil, zerr.With(zerr.Wrap(ErrMalformedLine, "decode task"), "missing_fields", i+1)
		}
		fields[i] = s[idx+len(domain.FieldSeparator):]
		s = s[:idx]
	}
	return s, fields, nil
}
