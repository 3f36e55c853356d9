package cli

import (
	stderrors "errors"
	"fmt"
	"strconv"

	"hachi/internal/errors"
	"hachi/internal/validation"
)

// ErrorHandler turns command failures into the message shown to the user
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Message returns the user-facing text for err
func (eh *ErrorHandler) Message(err error) string {
	if appErr, ok := errors.AsAppError(err); ok {
		if eh.IsNotFoundError(err) {
			if msg, ok := missingTaskMessage(appErr); ok {
				return msg
			}
		}
		return errors.GetUserMessage(err)
	}

	var ve *validation.ValidationError
	if stderrors.As(err, &ve) {
		return ve.GetUserFriendlyMessage()
	}

	return err.Error()
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	return errors.IsErrorType(err, errors.ErrorTypeValidation)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeNotFound)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}

func missingTaskMessage(appErr *errors.AppError) (string, bool) {
	resource, _ := appErr.GetContext("resource")
	identifier, _ := appErr.GetContext("identifier")
	size, hasSize := appErr.GetContext("size")
	if resource != "task" || !hasSize {
		return "", false
	}

	position, _ := identifier.(string)
	if _, err := strconv.Atoi(position); err != nil {
		return "", false
	}
	count, _ := size.(int)
	if count == 0 {
		return fmt.Sprintf("There is no task %s. Your list is empty.", position), true
	}
	return fmt.Sprintf("There is no task %s. You have %d %s in the list.", position, count, pluralize(count, "task")), true
}
