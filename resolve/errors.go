package resolve

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrUnsupportedShape is returned when the target type is not a flat struct of
	// exported string fields with unique names and keys.
	ErrUnsupportedShape = errors.New("paramconf: unsupported target shape")

	// ErrKeyNotFound is returned when the store has no value for a key.
	ErrKeyNotFound = errors.New("paramconf: key not found")

	// ErrStoreUnavailable is returned when the store could not answer a lookup
	// (transport, auth, throttling, closed adapter).
	ErrStoreUnavailable = errors.New("paramconf: store unavailable")
)

// ShapeError describes why a target type was rejected.
type ShapeError struct {
	Type   reflect.Type
	Reason string
}

func (e *ShapeError) Error() string {
	if e.Type == nil {
		return "paramconf: unsupported target shape: " + e.Reason
	}
	return fmt.Sprintf("paramconf: unsupported target shape %v: %s", e.Type, e.Reason)
}

func (e *ShapeError) Unwrap() error { return ErrUnsupportedShape }

// KeyNotFoundError reports a key that has no parameter, or a parameter without a value.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("paramconf: no value found for %q", e.Key)
}

func (e *KeyNotFoundError) Is(target error) bool { return target == ErrKeyNotFound }

// StoreUnavailableError reports a lookup that failed for reasons other than a
// missing key.
type StoreUnavailableError struct {
	Detail string
	Err    error
}

func (e *StoreUnavailableError) Error() string {
	return "paramconf: store unavailable: " + e.Detail
}

func (e *StoreUnavailableError) Is(target error) bool { return target == ErrStoreUnavailable }

func (e *StoreUnavailableError) Unwrap() error { return e.Err }

// FieldError is returned when resolving a single field failed. Cause is always a
// *KeyNotFoundError or a *StoreUnavailableError.
type FieldError struct {
	Field string
	Key   string
	Cause error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("paramconf: resolve field %q: %v", e.Field, e.Cause)
}

func (e *FieldError) Unwrap() error { return e.Cause }

// classify normalises a Source error into one of the two lookup causes.
func classify(key string, err error) error {
	var notFound *KeyNotFoundError
	if errors.As(err, &notFound) {
		return notFound
	}
	var unavailable *StoreUnavailableError
	if errors.As(err, &unavailable) {
		return unavailable
	}
	if errors.Is(err, ErrKeyNotFound) {
		return &KeyNotFoundError{Key: key}
	}
	return &StoreUnavailableError{Detail: err.Error(), Err: err}
}
