package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// NotFound builds the 404 returned when a referenced entity is absent, e.g. "Board not found".
func NotFound(kind string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: fmt.Sprintf("%s not found", kind), StatusCode: http.StatusNotFound}
}

// IsNotFound reports whether err is a 404 status error.
func IsNotFound(err error) bool {
	var e *ErrorWithStatusCode
	return stderrors.As(err, &e) && e.StatusCode == http.StatusNotFound
}
