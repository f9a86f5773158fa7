package model

import "fmt"

// UnknownTypeError reports a question type missing from the registry.
type UnknownTypeError struct {
	Type string
}

func (e UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown question type %q", e.Type)
}

// NotFoundError reports an operation targeting a missing question id.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("question %q not found", e.ID)
}
