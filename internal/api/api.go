package api

import (
	"context"
	stderrors "errors"
	"log/slog"
	"time"

	"hachi/internal/config"
	"hachi/internal/domain"
	"hachi/internal/errors"
	"hachi/internal/logging"
	"hachi/internal/storage"
	"hachi/internal/tasklist"
	"hachi/internal/validation"
)

// API defines the operations the commands perform on the task list.
// Every operation that changes the list saves it before returning.
type API interface {
	// Load replaces the list with the stored tasks.
	Load(ctx context.Context) (*storage.LoadResult, error)

	// Task creation
	AddTodo(ctx context.Context, description string) (domain.Task, error)
	AddDeadline(ctx context.Context, description string, by time.Time) (domain.Task, error)
	AddEvent(ctx context.Context, description string, from, to time.Time) (domain.Task, error)

	// Task updates
	Mark(ctx context.Context, position int) (domain.Task, error)
	Unmark(ctx context.Context, position int) (domain.Task, error)
	Delete(ctx context.Context, position int) (domain.Task, error)
	SortByName(ctx context.Context) ([]domain.Task, error)

	// Queries
	List() []domain.Task
	Count() int
	Find(substr string) []tasklist.Match
	OnDate(date time.Time) []tasklist.Match
}

type apiImpl struct {
	store         storage.Storage
	list          *tasklist.TaskList
	taskValidator *validation.TaskValidator
	timeout       time.Duration
	logger        *slog.Logger
}

// New creates a new API instance over an empty list. Call Load to read
// the stored tasks.
func New(store storage.Storage, cfg *config.Config, logger *slog.Logger) API {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &apiImpl{
		store:         store,
		list:          tasklist.New(nil),
		taskValidator: validation.NewTaskValidatorWithConfig(cfg),
		timeout:       cfg.Application.Timeout,
		logger:        logger,
	}
}

func (a *apiImpl) Load(ctx context.Context) (*storage.LoadResult, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	result, err := a.store.Load(ctx)
	if err != nil {
		return nil, a.storageError("load tasks", err)
	}
	a.list = tasklist.New(result.Tasks)
	return result, nil
}

func (a *apiImpl) AddTodo(ctx context.Context, description string) (domain.Task, error) {
	name, err := a.validDescription(description)
	if err != nil {
		return domain.Task{}, err
	}
	return a.add(ctx, domain.NewTodo(name))
}

func (a *apiImpl) AddDeadline(ctx context.Context, description string, by time.Time) (domain.Task, error) {
	name, err := a.validDescription(description)
	if err != nil {
		return domain.Task{}, err
	}
	return a.add(ctx, domain.NewDeadline(name, by))
}

func (a *apiImpl) AddEvent(ctx context.Context, description string, from, to time.Time) (domain.Task, error) {
	name, err := a.validDescription(description)
	if err != nil {
		return domain.Task{}, err
	}
	if err := a.taskValidator.ValidateDateRange(domain.DateOf(from), domain.DateOf(to)); err != nil {
		return domain.Task{}, invalid(err)
	}
	return a.add(ctx, domain.NewEvent(name, from, to))
}

func (a *apiImpl) Mark(ctx context.Context, position int) (domain.Task, error) {
	return a.update(ctx, position, a.list.Mark)
}

func (a *apiImpl) Unmark(ctx context.Context, position int) (domain.Task, error) {
	return a.update(ctx, position, a.list.Unmark)
}

func (a *apiImpl) Delete(ctx context.Context, position int) (domain.Task, error) {
	return a.update(ctx, position, a.list.Delete)
}

func (a *apiImpl) SortByName(ctx context.Context) ([]domain.Task, error) {
	err := a.mutate(ctx, func() error {
		a.list.SortByName()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return a.list.All(), nil
}

func (a *apiImpl) List() []domain.Task {
	return a.list.All()
}

func (a *apiImpl) Count() int {
	return a.list.Len()
}

func (a *apiImpl) Find(substr string) []tasklist.Match {
	return a.list.Find(substr)
}

func (a *apiImpl) OnDate(date time.Time) []tasklist.Match {
	return a.list.OnDate(date)
}

func (a *apiImpl) add(ctx context.Context, task domain.Task) (domain.Task, error) {
	err := a.mutate(ctx, func() error {
		a.list.Add(task)
		return nil
	})
	if err != nil {
		return domain.Task{}, err
	}
	a.logger.Debug("added task", "kind", task.Kind().String(), "size", a.list.Len())
	return task, nil
}

func (a *apiImpl) update(ctx context.Context, position int, op func(int) (domain.Task, error)) (domain.Task, error) {
	if err := a.taskValidator.ValidatePosition(position); err != nil {
		return domain.Task{}, invalid(err)
	}

	var task domain.Task
	err := a.mutate(ctx, func() error {
		var err error
		task, err = op(position)
		return err
	})
	if err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// mutate applies change to the list and saves it. When the save fails
// the list is restored to what it was before.
func (a *apiImpl) mutate(ctx context.Context, change func() error) error {
	snapshot := a.list.All()
	if err := change(); err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.store.Save(ctx, a.list.All()); err != nil {
		a.list = tasklist.New(snapshot)
		return a.storageError("save tasks", err)
	}
	return nil
}

func (a *apiImpl) validDescription(description string) (string, error) {
	name, err := a.taskValidator.GetValidDescription(description)
	if err != nil {
		return "", invalid(err)
	}
	return name, nil
}

func (a *apiImpl) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.timeout)
}

func (a *apiImpl) storageError(operation string, err error) error {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.NewTimeoutError(operation, a.timeout.String())
	}
	if errors.IsErrorType(err, errors.ErrorTypeStorage) {
		return err
	}
	return errors.NewStorageError(operation, err)
}

// invalid turns a validation failure into an AppError carrying the
// message shown to the user.
func invalid(err error) error {
	var ve *validation.ValidationError
	if stderrors.As(err, &ve) {
		return errors.NewValidationError(ve.GetUserFriendlyMessage(), err)
	}
	return errors.NewValidationError(err.Error(), err)
}
