package employees

import (
	"fmt"
	"strings"
)

// ValidationError reports input that cannot be persisted.
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed: " + e.Message
	}
	return fmt.Sprintf("validation failed: %s (%s)", e.Message, strings.Join(e.Fields, ", "))
}

// NotFoundError reports an identifier that does not resolve to a record.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("employee %q not found", e.ID)
}
