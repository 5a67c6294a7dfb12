package client

import (
	"errors"
	"fmt"
)

var (
	ErrTimeout      = errors.New("remote source timed out")
	ErrFetch        = errors.New("remote fetch failed")
	ErrWrite        = errors.New("remote write failed")
	ErrNotFound     = errors.New("record not found on remote")
	ErrInvalidState = errors.New("record has no id")
	ErrPersist      = errors.New("local cache persist failed")
)

// FetchError - неуспешный статус при чтении коллекции
type FetchError struct {
	Status int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("remote fetch failed: status %d", e.Status)
}

func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}

// WriteError - отказ удаленного источника при создании, изменении или удалении.
// Status равен нулю, если ответа не было вовсе.
type WriteError struct {
	Op     string
	Status int
	Err    error
}

func (e *WriteError) Error() string {
	switch {
	case e.Status != 0:
		return fmt.Sprintf("remote %s failed: status %d", e.Op, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("remote %s failed: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("remote %s failed", e.Op)
	}
}

func (e *WriteError) Is(target error) bool {
	return target == ErrWrite
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
