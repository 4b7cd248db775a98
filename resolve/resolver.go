package resolve

import (
	"context"
	"io"
	"log/slog"
	"reflect"
)

// Source looks up a single parameter by key and blocks until it has an answer.
// Implementations report a missing key with *KeyNotFoundError (or ErrKeyNotFound)
// and any other failure with *StoreUnavailableError; other errors are treated as
// the store being unavailable.
type Source interface {
	GetParameter(ctx context.Context, key string) (string, error)
}

// SourceFunc adapts a function to a Source.
type SourceFunc func(ctx context.Context, key string) (string, error)

// GetParameter calls f.
func (f SourceFunc) GetParameter(ctx context.Context, key string) (string, error) {
	return f(ctx, key)
}

// Resolver populates configuration values from a Source.
type Resolver struct {
	source Source
	logger *slog.Logger
}

// New creates a Resolver reading from source.
func New(source Source, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		source: source,
		logger: logger,
	}
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// Resolve populates a T from src. See ResolveWith.
func Resolve[T any](ctx context.Context, src Source) (T, error) {
	return ResolveWith[T](ctx, &Resolver{source: src, logger: discard})
}

// ResolveWith populates a T using r.
//
// Fields are looked up one at a time in declaration order. The first failure
// stops resolution and is returned as a *FieldError; no later field is queried
// and the returned T is the zero value.
func ResolveWith[T any](ctx context.Context, r *Resolver) (T, error) {
	var zero T

	t := reflect.TypeOf((*T)(nil)).Elem()
	fields, err := Fields(t)
	if err != nil {
		return zero, err
	}

	values, err := r.lookup(ctx, fields)
	if err != nil {
		return zero, err
	}

	var result T
	v := reflect.ValueOf(&result).Elem()
	for i, f := range fields {
		v.Field(f.index).SetString(values[i])
	}
	return result, nil
}

// ResolveFields looks up an explicit ordered list of structural field names and
// returns their values in the same order, with the same fail-fast semantics as
// Resolve.
func (r *Resolver) ResolveFields(ctx context.Context, names []string) ([]string, error) {
	fields, err := namedFields(names)
	if err != nil {
		return nil, err
	}
	return r.lookup(ctx, fields)
}

// ResolveFields is the package-level form of (*Resolver).ResolveFields.
func ResolveFields(ctx context.Context, src Source, names []string) ([]string, error) {
	return (&Resolver{source: src, logger: discard}).ResolveFields(ctx, names)
}

func (r *Resolver) lookup(ctx context.Context, fields []Field) ([]string, error) {
	values := make([]string, len(fields))
	for i, f := range fields {
		key := f.Key()
		r.logger.Debug("resolving parameter", "field", f.Name, "key", key)

		value, err := r.source.GetParameter(ctx, key)
		if err != nil {
			cause := classify(key, err)
			r.logger.Warn("parameter resolution failed",
				"field", f.Name,
				"key", key,
				"error", cause,
			)
			return nil, &FieldError{Field: f.Name, Key: key, Cause: cause}
		}
		values[i] = value
	}
	return values, nil
}
