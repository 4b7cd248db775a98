package resolve

import (
	"fmt"
	"reflect"

	"github.com/jacentio/paramconf/internal/keyname"
)

// TagName is the struct tag that overrides a field's structural name.
const TagName = "param"

// Field describes one field of a target type.
type Field struct {
	// Name is the structural (snake_case) field name.
	Name string

	// Order is the zero-based declaration position.
	Order int

	index int
}

// Key returns the parameter store key for the field.
func (f Field) Key() string {
	return keyname.Kebab(f.Name)
}

// Fields returns the descriptors of t in declaration order.
//
// t must be a struct whose fields are all exported and of kind string. Structural
// names come from the `param` tag, falling back to the snake_case Go name. Two
// fields that share a name or a store key are rejected.
func Fields(t reflect.Type) ([]Field, error) {
	if t == nil {
		return nil, &ShapeError{Type: t, Reason: "nil type"}
	}
	if t.Kind() != reflect.Struct {
		return nil, &ShapeError{Type: t, Reason: fmt.Sprintf("kind %s is not a struct", t.Kind())}
	}

	fields := make([]Field, 0, t.NumField())
	names := make(map[string]string, t.NumField())
	keys := make(map[string]string, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			return nil, &ShapeError{Type: t, Reason: fmt.Sprintf("field %s is unexported", sf.Name)}
		}
		if sf.Type.Kind() != reflect.String {
			return nil, &ShapeError{Type: t, Reason: fmt.Sprintf("field %s has kind %s, want string", sf.Name, sf.Type.Kind())}
		}

		name := sf.Tag.Get(TagName)
		if name == "" {
			name = keyname.Structural(sf.Name)
		}

		f := Field{Name: name, Order: len(fields), index: i}
		if prev, ok := names[name]; ok {
			return nil, &ShapeError{Type: t, Reason: fmt.Sprintf("fields %s and %s share name %q", prev, sf.Name, name)}
		}
		if prev, ok := keys[f.Key()]; ok {
			return nil, &ShapeError{Type: t, Reason: fmt.Sprintf("fields %s and %s share key %q", prev, sf.Name, f.Key())}
		}
		names[name] = sf.Name
		keys[f.Key()] = sf.Name
		fields = append(fields, f)
	}

	return fields, nil
}

// namedFields builds descriptors from an explicit ordered list of structural names.
func namedFields(names []string) ([]Field, error) {
	fields := make([]Field, 0, len(names))
	keys := make(map[string]string, len(names))

	for i, name := range names {
		if name == "" {
			return nil, &ShapeError{Reason: fmt.Sprintf("field %d has an empty name", i)}
		}
		f := Field{Name: name, Order: i, index: i}
		if prev, ok := keys[f.Key()]; ok {
			return nil, &ShapeError{Reason: fmt.Sprintf("fields %q and %q share key %q", prev, name, f.Key())}
		}
		keys[f.Key()] = name
		fields = append(fields, f)
	}

	return fields, nil
}
