package validation

import (
	"fmt"
	"strings"
)

// Issue is a single (field, problem) pair reported back to the client.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error carries every issue found in one request. It always maps to 400.
type Error struct {
	Issues []Issue
}

func (e *Error) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = fmt.Sprintf("%s: %s", issue.Field, issue.Message)
	}
	return "Validation error: " + strings.Join(parts, "; ")
}

// AsError turns a list of issues into an error, or nil when the list is empty.
func AsError(issues []Issue) error {
	if len(issues) == 0 {
		return nil
	}
	return &Error{Issues: issues}
}
