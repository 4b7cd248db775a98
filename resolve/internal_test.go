package resolve

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

// --- Fields Tests ---

func TestFields_DeclarationOrder(t *testing.T) {
	type cfg struct {
		Zeta        string
		APIEndpoint string
		Alpha       string `param:"alpha_override"`
	}

	fields, err := Fields(reflect.TypeOf(cfg{}))
	if err != nil {
		t.Fatalf("Fields failed: %v", err)
	}

	expected := []struct {
		name string
		key  string
	}{
		{"zeta", "zeta"},
		{"api_endpoint", "api-endpoint"},
		{"alpha_override", "alpha-override"},
	}
	if len(fields) != len(expected) {
		t.Fatalf("expected %d fields, got %d", len(expected), len(fields))
	}
	for i, f := range fields {
		if f.Name != expected[i].name {
			t.Errorf("field %d: expected name %q, got %q", i, expected[i].name, f.Name)
		}
		if f.Key() != expected[i].key {
			t.Errorf("field %d: expected key %q, got %q", i, expected[i].key, f.Key())
		}
		if f.Order != i {
			t.Errorf("field %d: expected order %d, got %d", i, i, f.Order)
		}
		if f.index != i {
			t.Errorf("field %d: expected index %d, got %d", i, i, f.index)
		}
	}
}

func TestFields_NilType(t *testing.T) {
	_, err := Fields(nil)
	if !errors.Is(err, ErrUnsupportedShape) {
		t.Errorf("expected ErrUnsupportedShape, got %v", err)
	}
}

func TestShapeError_Message(t *testing.T) {
	err := &ShapeError{Type: reflect.TypeOf(0), Reason: "kind int is not a struct"}
	want := "paramconf: unsupported target shape int: kind int is not a struct"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}

	err = &ShapeError{Reason: "field 0 has an empty name"}
	want = "paramconf: unsupported target shape: field 0 has an empty name"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

// --- classify Tests ---

func TestClassify(t *testing.T) {
	notFound := &KeyNotFoundError{Key: "k"}
	unavailable := &StoreUnavailableError{Detail: "throttled"}

	tests := []struct {
		name         string
		err          error
		wantNotFound bool
	}{
		{"typed not found", notFound, true},
		{"wrapped not found", fmt.Errorf("ssm: %w", notFound), true},
		{"sentinel not found", ErrKeyNotFound, true},
		{"typed unavailable", unavailable, false},
		{"wrapped unavailable", fmt.Errorf("ssm: %w", unavailable), false},
		{"foreign error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cause := classify("k", tt.err)

			_, isNotFound := cause.(*KeyNotFoundError)
			_, isUnavailable := cause.(*StoreUnavailableError)
			if isNotFound != tt.wantNotFound {
				t.Errorf("expected not-found=%v, got %T", tt.wantNotFound, cause)
			}
			if !isNotFound && !isUnavailable {
				t.Errorf("expected a lookup cause type, got %T", cause)
			}
		})
	}
}

func TestClassify_SentinelUsesKey(t *testing.T) {
	cause := classify("retry-count", ErrKeyNotFound)
	nf, ok := cause.(*KeyNotFoundError)
	if !ok {
		t.Fatalf("expected *KeyNotFoundError, got %T", cause)
	}
	if nf.Key != "retry-count" {
		t.Errorf("expected key 'retry-count', got %q", nf.Key)
	}
}
