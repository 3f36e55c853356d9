// Package tasklist holds the ordered list of tasks the user works with.
// Positions are 1-based, as shown to the user.
package tasklist

import (
	"slices"
	"strconv"
	"time"

	"hachi/internal/domain"
	"hachi/internal/errors"
)

// Match is a task together with its position in the list.
type Match struct {
	Position int
	Task     domain.Task
}

// TaskList is an ordered collection of tasks.
type TaskList struct {
	tasks []domain.Task
}

// New creates a list holding tasks in order.
func New(tasks []domain.Task) *TaskList {
	return &TaskList{tasks: slices.Clone(tasks)}
}

// Len returns the number of tasks.
func (l *TaskList) Len() int {
	return len(l.tasks)
}

// All returns a copy of the tasks in order.
func (l *TaskList) All() []domain.Task {
	return slices.Clone(l.tasks)
}

// Add appends task and returns the new size of the list.
func (l *TaskList) Add(task domain.Task) int {
	l.tasks = append(l.tasks, task)
	return len(l.tasks)
}

// Get returns the task at position.
func (l *TaskList) Get(position int) (domain.Task, error) {
	idx, err := l.index(position)
	if err != nil {
		return domain.Task{}, err
	}
	return l.tasks[idx], nil
}

// Delete removes and returns the task at position. Later tasks move up
// by one.
func (l *TaskList) Delete(position int) (domain.Task, error) {
	idx, err := l.index(position)
	if err != nil {
		return domain.Task{}, err
	}
	task := l.tasks[idx]
	l.tasks = slices.Delete(l.tasks, idx, idx+1)
	return task, nil
}

// Mark marks the task at position as done and returns it.
func (l *TaskList) Mark(position int) (domain.Task, error) {
	idx, err := l.index(position)
	if err != nil {
		return domain.Task{}, err
	}
	l.tasks[idx].Mark()
	return l.tasks[idx], nil
}

// Unmark marks the task at position as not done and returns it.
func (l *TaskList) Unmark(position int) (domain.Task, error) {
	idx, err := l.index(position)
	if err != nil {
		return domain.Task{}, err
	}
	l.tasks[idx].Unmark()
	return l.tasks[idx], nil
}

// Find returns every task whose name contains substr.
func (l *TaskList) Find(substr string) []Match {
	return l.filter(func(t domain.Task) bool {
		return t.IsStringWithinTaskName(substr)
	})
}

// OnDate returns every task that falls on date.
func (l *TaskList) OnDate(date time.Time) []Match {
	return l.filter(func(t domain.Task) bool {
		return t.IsDateWithinRange(date)
	})
}

// SortByName orders the list by task name. Tasks with equal names keep
// their relative order.
func (l *TaskList) SortByName() {
	slices.SortStableFunc(l.tasks, func(a, b domain.Task) int {
		return a.CompareName(b)
	})
}

func (l *TaskList) filter(keep func(domain.Task) bool) []Match {
	var matches []Match
	for i, task := range l.tasks {
		if keep(task) {
			matches = append(matches, Match{Position: i + 1, Task: task})
		}
	}
	return matches
}

func (l *TaskList) index(position int) (int, error) {
	if position < 1 || position > len(l.tasks) {
		return 0, errors.NewNotFoundError("task", strconv.Itoa(position)).
			WithContext("size", len(l.tasks))
	}
	return position - 1, nil
}
