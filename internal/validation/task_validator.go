package validation

import (
	"strconv"
	"strings"
	"time"

	"hachi/internal/config"
	"hachi/internal/domain"
)

const dateFormatHint = "a date like 2019-12-02"

// TaskValidator validates the user input that creates or addresses tasks
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidatorWithConfig creates a task validator using configured limits
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateDescription validates a task description for creation
func (tv *TaskValidator) ValidateDescription(description string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimAndValidateString(description)

	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("description")
		return validationError
	}

	if !tv.validator.IsValidNameLength(trimmed) {
		validationError.AddInvalidLengthError("description", trimmed, tv.validator.getNameMaxLength())
	}

	if !tv.validator.IsValidTaskName(trimmed) {
		validationError.AddInvalidCharacterError("description", trimmed)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// GetValidDescription returns a cleaned description if valid
func (tv *TaskValidator) GetValidDescription(description string) (string, error) {
	if err := tv.ValidateDescription(description); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(description), nil
}

// ValidatePosition validates a 1-based list position
func (tv *TaskValidator) ValidatePosition(position int) error {
	if !tv.validator.IsValidPosition(position) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("task number", position, "it must be a positive number")
		return validationError
	}
	return nil
}

// ParsePosition parses and validates a task number typed by the user
func (tv *TaskValidator) ParsePosition(arg string) (int, error) {
	trimmed := strings.TrimSpace(arg)
	if trimmed == "" {
		validationError := NewValidationError()
		validationError.AddRequiredError("task number")
		return 0, validationError
	}

	position, err := strconv.Atoi(trimmed)
	if err != nil {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError("task number", trimmed, "a number from the list")
		return 0, validationError
	}

	if err := tv.ValidatePosition(position); err != nil {
		return 0, err
	}
	return position, nil
}

// ParseDate parses a yyyy-mm-dd date given for field
func (tv *TaskValidator) ParseDate(field, arg string) (time.Time, error) {
	trimmed := strings.TrimSpace(arg)
	if trimmed == "" {
		validationError := NewValidationError()
		validationError.AddRequiredError(field)
		return time.Time{}, validationError
	}

	date, err := domain.ParseDate(trimmed)
	if err != nil {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError(field, trimmed, dateFormatHint)
		return time.Time{}, validationError
	}
	return date, nil
}

// ValidateDateRange checks that an event does not end before it starts
func (tv *TaskValidator) ValidateDateRange(from, to time.Time) error {
	if !tv.validator.IsValidDateRange(from, to) {
		validationError := NewValidationError()
		validationError.AddInvalidRangeError("event period", map[string]time.Time{"from": from, "to": to}, "the end date is before the start date")
		return validationError
	}
	return nil
}
