package validation

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"hachi/internal/config"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{config: cfg}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if the trimmed string has at most max characters
func (v *Validator) IsValidStringLength(s string, max int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) <= max
}

// IsValidNameLength checks a task name against the configured maximum
func (v *Validator) IsValidNameLength(name string) bool {
	return v.IsValidStringLength(name, v.getNameMaxLength())
}

// IsValidTaskName rejects control characters, which would break the
// one-task-per-line file format.
func (v *Validator) IsValidTaskName(name string) bool {
	for _, r := range name {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// IsValidPosition checks if a 1-based list position is positive
func (v *Validator) IsValidPosition(position int) bool {
	return position > 0
}

// IsValidDateRange checks that from is not after to
func (v *Validator) IsValidDateRange(from, to time.Time) bool {
	return !from.After(to)
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// getNameMaxLength returns configured maximum task name length or default
func (v *Validator) getNameMaxLength() int {
	if v.config != nil {
		return v.config.Validation.NameMaxLength
	}
	return 255 // Default maximum
}
