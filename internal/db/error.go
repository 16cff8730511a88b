package db

import (
	"errors"
	"fmt"
)

// DuplicateKeyError is returned when a write collides with a unique index.
type DuplicateKeyError struct {
	Key     string
	Message string
}

func (e *DuplicateKeyError) Error() string {
	return e.Message
}

func newDuplicateKeyError(key string, err error) *DuplicateKeyError {
	return &DuplicateKeyError{
		Key:     key,
		Message: fmt.Sprintf("duplicate %s: %v", key, err),
	}
}

func IsDuplicateKeyError(err error) bool {
	var e *DuplicateKeyError
	return errors.As(err, &e)
}

// NotFoundError is returned when the requested document does not exist.
type NotFoundError struct {
	Collection string
	Key        string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Collection, e.Key)
}

func IsNotFoundError(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}
