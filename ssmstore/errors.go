package ssmstore

import "errors"

// ErrAdapterInit is returned when an Adapter cannot be constructed.
var ErrAdapterInit = errors.New("paramconf: adapter init failed")

// InitError describes why New could not build an Adapter.
type InitError struct {
	Detail string
	Err    error
}

func (e *InitError) Error() string {
	if e.Err == nil {
		return "paramconf: adapter init failed: " + e.Detail
	}
	return "paramconf: adapter init failed: " + e.Detail + ": " + e.Err.Error()
}

func (e *InitError) Is(target error) bool { return target == ErrAdapterInit }

func (e *InitError) Unwrap() error { return e.Err }
