package domain

import (
	"strings"
	"time"
)

// Kind identifies the variant of a Task. Its value is the one-letter
// type tag used in both the persisted and the display form.
type Kind string

const (
	KindTodo     Kind = "T"
	KindDeadline Kind = "D"
	KindEvent    Kind = "E"
)

// FieldSeparator delimits the fields of a persisted task line.
const FieldSeparator = " | "

// Valid reports whether k is one of the known task kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindTodo, KindDeadline, KindEvent:
		return true
	default:
		return false
	}
}

// String returns the type tag.
func (k Kind) String() string {
	return string(k)
}

// Task is a unit of work with a name and a completion flag.
// It is a closed set of variants selected by Kind: a Todo carries no
// extra fields, a Deadline carries a due date and an Event carries an
// inclusive span of dates. Dates are calendar dates at midnight UTC.
type Task struct {
	kind      Kind
	completed bool
	name      string
	by        time.Time
	from      time.Time
	to        time.Time
}

// NewTodo creates an incomplete Todo.
func NewTodo(name string) Task {
	return Task{kind: KindTodo, name: name}
}

// NewDeadline creates an incomplete Deadline due on by.
func NewDeadline(name string, by time.Time) Task {
	return Task{kind: KindDeadline, name: name, by: DateOf(by)}
}

// NewEvent creates an incomplete Event spanning from..to.
func NewEvent(name string, from, to time.Time) Task {
	return Task{kind: KindEvent, name: name, from: DateOf(from), to: DateOf(to)}
}

// Kind returns the variant of the task.
func (t Task) Kind() Kind { return t.kind }

// Name returns the task name.
func (t Task) Name() string { return t.name }

// Completed reports whether the task has been marked as done.
func (t Task) Completed() bool { return t.completed }

// By returns the due date of a Deadline, or the zero time for other kinds.
func (t Task) By() time.Time { return t.by }

// From returns the first day of an Event, or the zero time for other kinds.
func (t Task) From() time.Time { return t.from }

// To returns the last day of an Event, or the zero time for other kinds.
func (t Task) To() time.Time { return t.to }

// Mark marks the task as completed.
func (t *Task) Mark() {
	t.completed = true
}

// Unmark marks the task as not completed.
func (t *Task) Unmark() {
	t.completed = false
}

// IsDateWithinRange reports whether date falls on the task's dates.
// A Deadline matches on its due date, an Event matches any day from its
// first to its last day inclusive. A Todo never matches.
func (t Task) IsDateWithinRange(date time.Time) bool {
	day := DateOf(date)
	switch t.kind {
	case KindDeadline:
		return day.Equal(t.by)
	case KindEvent:
		return !day.Before(t.from) && !day.After(t.to)
	default:
		return false
	}
}

// IsStringWithinTaskName reports whether str is contained in the task name.
// Matching is case-sensitive.
func (t Task) IsStringWithinTaskName(str string) bool {
	return strings.Contains(t.name, str)
}

// CompareName compares the task names lexicographically, returning a
// negative number, zero or a positive number.
func (t Task) CompareName(other Task) int {
	return strings.Compare(t.name, other.name)
}

// ToData returns the persisted line form of the task:
//
//	<tag> | <0|1> | <name>[ | <dates>...]
func (t Task) ToData() string {
	var sb strings.Builder
	sb.WriteString(t.kind.String())
	sb.WriteString(FieldSeparator)
	sb.WriteString(t.baseData())

	switch t.kind {
	case KindDeadline:
		sb.WriteString(FieldSeparator)
		sb.WriteString(FormatDate(t.by))
	case KindEvent:
		sb.WriteString(FieldSeparator)
		sb.WriteString(FormatDate(t.from))
		sb.WriteString(FieldSeparator)
		sb.WriteString(FormatDate(t.to))
	}
	return sb.String()
}

// String returns the display form of the task, e.g. "[T][X] buy milk".
func (t Task) String() string {
	s := "[" + t.kind.String() + "]" + t.baseString()

	switch t.kind {
	case KindDeadline:
		s += " (by: " + DisplayDate(t.by) + ")"
	case KindEvent:
		s += " (from: " + DisplayDate(t.from) + " to: " + DisplayDate(t.to) + ")"
	}
	return s
}

func (t Task) baseData() string {
	status := "0"
	if t.completed {
		status = "1"
	}
	return status + FieldSeparator + t.name
}

func (t Task) baseString() string {
	checkbox := "[ ]"
	if t.completed {
		checkbox = "[X]"
	}
	return checkbox + " " + t.name
}
