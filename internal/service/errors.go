package service

import "fmt"

// ValidationError reports a rejected input field. The handler layer renders
// these as 400 responses with a field-level detail list.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

var (
	ErrEmptyTitle         = &ValidationError{Field: "title", Msg: "Title cannot be empty"}
	ErrTitleTooLong       = &ValidationError{Field: "title", Msg: "Title must be at most 200 characters"}
	ErrDescriptionTooLong = &ValidationError{Field: "description", Msg: "Description must be at most 1000 characters"}
)
