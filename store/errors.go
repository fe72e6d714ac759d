// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import "errors"

// ErrNotFound is returned when a burner or job lookup matches no record.
var ErrNotFound = errors.New("record not found")

// Error reports a failed query or transport problem. It is never returned
// for a lookup that simply found nothing.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func storeErr(op string, err error) error {
	return &Error{Op: op, Err: err}
}
