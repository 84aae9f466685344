package application

import (
	"fmt"
	"strings"

	"offjournal/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts field names to readable words for error messages
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"entryID":   "entry ID",
		"eventID":   "event ID",
		"srcPath":   "source path",
		"outPath":   "output path",
		"recipient": "recipient",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateDate checks that value is a YYYY-MM-DD date
func ValidateDate(fieldName, value string) error {
	if _, err := domain.ParseDate(value); err != nil {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("invalid date %q, use YYYY-MM-DD", value),
		}
	}
	return nil
}

// ValidateEventID checks that an event id is positive
func ValidateEventID(id int) error {
	if id <= 0 {
		return &ValidationError{
			Field:   "eventID",
			Message: fmt.Sprintf("invalid event ID: %d", id),
		}
	}
	return nil
}
