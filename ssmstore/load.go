package ssmstore

import (
	"context"
	"log/slog"

	"github.com/jacentio/paramconf/resolve"
)

// Load builds an Adapter from the ambient AWS configuration, resolves a T through
// it and closes it again.
func Load[T any](ctx context.Context, cfg Config, logger *slog.Logger) (T, error) {
	var zero T

	a, err := New(ctx, cfg, logger)
	if err != nil {
		return zero, err
	}
	defer a.Close()

	return resolve.ResolveWith[T](ctx, resolve.New(a, a.logger))
}
