// Package shared holds the error taxonomy and field validators used by
// every entity model.
package shared

import (
	"errors"
	"fmt"
)

// Error is a constant error string.
type Error string

func (e Error) Error() string { return string(e) }

// InvalidAttributeError reports a field that failed its type, shape or
// range check before any storage access happened. Attr is the logical
// field name ("user_id", "name", ...).
type InvalidAttributeError struct {
	Attr string
}

func (e *InvalidAttributeError) Error() string {
	return fmt.Sprintf("Invalid %s.", e.Attr)
}

// NotFoundError reports that a syntactically valid identifier has no
// matching row. It is also raised when a row exists but belongs to a
// different owner; callers cannot tell the two apart.
type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %v does not exist.", e.Entity, e.ID)
}

// InvalidPasswordError is raised by the credential verifier only, never
// by an entity operation.
type InvalidPasswordError struct{}

func (e *InvalidPasswordError) Error() string {
	return "Invalid user password."
}

func NewInvalidAttribute(attr string) error {
	return &InvalidAttributeError{Attr: attr}
}

func NewNotFound(entity string, id any) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func NewInvalidPassword() error {
	return &InvalidPasswordError{}
}

// IsInvalidAttribute reports whether err is an InvalidAttributeError.
func IsInvalidAttribute(err error) bool {
	var e *InvalidAttributeError
	return errors.As(err, &e)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// IsInvalidPassword reports whether err is an InvalidPasswordError.
func IsInvalidPassword(err error) bool {
	var e *InvalidPasswordError
	return errors.As(err, &e)
}
