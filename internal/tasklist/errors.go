package tasklist

import (
	"fmt"

	"github.com/hy4ri/tasks-tui/internal/api"
)

// Op names a controller operation.
type Op string

const (
	OpLoad   Op = "load"
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// OpError is returned when a store request fails. Transport and
// application failures are treated alike; Err keeps the cause.
type OpError struct {
	Op  Op
	Err error
}

// Error implements the error interface.
func (e *OpError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying store error.
func (e *OpError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status of an application failure, or 0 for a
// transport failure.
func (e *OpError) StatusCode() int {
	if apiErr, ok := api.IsAPIError(e.Err); ok {
		return apiErr.StatusCode
	}
	return 0
}
