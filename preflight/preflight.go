// Package preflight provides a Lambda handler that checks configuration fields resolve.
package preflight

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jacentio/paramconf/resolve"
)

// Failure reasons reported in Response.Reason.
const (
	ReasonKeyNotFound      = "key_not_found"
	ReasonStoreUnavailable = "store_unavailable"
	ReasonInvalidRequest   = "invalid_request"
)

// Request lists the structural field names to check, in resolution order.
type Request struct {
	Fields []string `json:"fields"`
}

// Response reports the outcome of a check. Resolved values are never included.
type Response struct {
	OK          bool     `json:"ok"`
	Checked     []string `json:"checked"`
	FailedField string   `json:"failedField,omitempty"`
	FailedKey   string   `json:"failedKey,omitempty"`
	Reason      string   `json:"reason,omitempty"`
	Message     string   `json:"message,omitempty"`
}

// Handler runs preflight checks against a parameter source.
type Handler struct {
	resolver *resolve.Resolver
	logger   *slog.Logger
}

// NewHandler creates a new preflight handler.
func NewHandler(src resolve.Source, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		resolver: resolve.New(src, logger),
		logger:   logger,
	}
}

// HandleCheck resolves every requested field and reports the first failure.
// Lookup failures are reported in the Response, not as an error, so the caller
// sees which field broke; only a cancelled context is returned as an error.
func (h *Handler) HandleCheck(ctx context.Context, req Request) (Response, error) {
	h.logger.Info("running preflight check", "fieldCount", len(req.Fields))

	_, err := h.resolver.ResolveFields(ctx, req.Fields)
	if err == nil {
		h.logger.Info("preflight check passed", "fieldCount", len(req.Fields))
		return Response{OK: true, Checked: req.Fields}, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Response{}, ctxErr
	}

	resp := Response{Message: err.Error()}

	var fieldErr *resolve.FieldError
	switch {
	case errors.As(err, &fieldErr):
		resp.FailedField = fieldErr.Field
		resp.FailedKey = fieldErr.Key
		resp.Checked = checkedUpTo(req.Fields, fieldErr.Field)
		resp.Reason = ReasonStoreUnavailable
		if errors.Is(err, resolve.ErrKeyNotFound) {
			resp.Reason = ReasonKeyNotFound
		}
	case errors.Is(err, resolve.ErrUnsupportedShape):
		resp.Reason = ReasonInvalidRequest
	default:
		return Response{}, err
	}

	h.logger.Warn("preflight check failed",
		"field", resp.FailedField,
		"key", resp.FailedKey,
		"reason", resp.Reason,
	)
	return resp, nil
}

// checkedUpTo returns the fields queried before and including failed.
func checkedUpTo(fields []string, failed string) []string {
	for i, f := range fields {
		if f == failed {
			return fields[:i+1]
		}
	}
	return fields
}
