package cli

import (
	"strings"

	"hachi/internal/errors"
)

// Argument markers.
const (
	byMarker   = "/by"
	fromMarker = "/from"
	toMarker   = "/to"
)

// deadlineArgs splits "<description> /by <date>".
func deadlineArgs(input string) (description, by string, err error) {
	description, by, found := cutMarker(input, byMarker)
	if !found {
		return "", "", errors.NewInvalidInputError("deadline", input,
			"tell me when it is due, like: deadline return book /by 2019-12-02")
	}
	return description, by, nil
}

// eventArgs splits "<description> /from <date> /to <date>".
func eventArgs(input string) (description, from, to string, err error) {
	description, span, found := cutMarker(input, fromMarker)
	if !found {
		return "", "", "", errors.NewInvalidInputError("event", input,
			"tell me when it starts, like: event camp /from 2020-01-30 /to 2020-02-02")
	}
	from, to, found = cutMarker(span, toMarker)
	if !found {
		return "", "", "", errors.NewInvalidInputError("event", input,
			"tell me when it ends, like: event camp /from 2020-01-30 /to 2020-02-02")
	}
	return description, from, to, nil
}

// cutMarker splits input around the last occurrence of marker as a
// separate word. Both halves are trimmed.
func cutMarker(input, marker string) (before, after string, found bool) {
	padded := " " + strings.TrimSpace(input) + " "
	sep := " " + marker + " "
	idx := strings.LastIndex(padded, sep)
	if idx < 0 {
		return "", "", false
	}
	before = strings.TrimSpace(padded[:idx])
	after = strings.TrimSpace(padded[idx+len(sep):])
	return before, after, true
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
