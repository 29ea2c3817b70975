package repository

import "errors"

// Common repository errors
var (
	// ErrTaskNotFound is returned when no task matches both the ID and the
	// owner. A task owned by someone else is reported the same way.
	ErrTaskNotFound = errors.New("task not found")

	// ErrUserNotFound is returned when a user row does not exist.
	ErrUserNotFound = errors.New("user not found")
)
