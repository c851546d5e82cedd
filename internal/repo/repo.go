package repo

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound reports that the addressed row does not exist. It is kept
// apart from StoreError so callers can tell "no data" from "store failed".
var ErrNotFound = errors.New("not found")

// StoreError wraps a low-level failure with the operation that hit it.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s. Error: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, ErrNotFound) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}
