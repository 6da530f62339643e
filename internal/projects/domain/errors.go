package domain

import (
	"errors"
	"fmt"
)

// Kind is the closed set of error categories callers must handle.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
)

const (
	EntityProject = "Project"
	EntityTodo    = "Todo"
)

type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func (e *NotFoundError) Kind() Kind { return KindNotFound }

// Tag names the error on the wire, e.g. "ProjectNotFoundError".
func (e *NotFoundError) Tag() string { return e.Entity + "NotFoundError" }

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func (e *ValidationError) Kind() Kind { return KindValidation }

func ProjectNotFound(id int64) error { return &NotFoundError{Entity: EntityProject, ID: id} }

func TodoNotFound(id int64) error { return &NotFoundError{Entity: EntityTodo, ID: id} }

func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// KindOf classifies err. Anything that does not carry a kind, including raw
// store failures, is internal.
func KindOf(err error) Kind {
	var k interface{ Kind() Kind }
	if errors.As(err, &k) {
		return k.Kind()
	}
	return KindInternal
}
