package repository

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate wraps unique-constraint violations.
	ErrDuplicate = errors.New("duplicate record")

	ErrMissingRelation = errors.New("referenced record does not exist")
)

// DuplicateError names the unique field that collided.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string { return fmt.Sprintf("%s: %s", ErrDuplicate, e.Field) }

func (e *DuplicateError) Is(target error) bool { return target == ErrDuplicate }

// MissingRelationError is returned when a foreign key points nowhere, or when a
// delete is blocked by rows that still reference the record.
type MissingRelationError struct {
	Field string
}

func (e *MissingRelationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingRelation, e.Field)
}

func (e *MissingRelationError) Is(target error) bool { return target == ErrMissingRelation }
