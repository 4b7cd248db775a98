// Package keyname maps structural field names onto parameter store key names.
package keyname

import (
	"strings"

	"github.com/stoewer/go-strcase"
)

const (
	// FieldSeparator separates words in structural field names.
	FieldSeparator = "_"

	// KeySeparator separates words in parameter store keys.
	KeySeparator = "-"
)

// Kebab converts a structural field name into its parameter store key.
// Every "_" becomes "-"; no other character is touched, so the result is stable
// under repeated application.
func Kebab(field string) string {
	return strings.ReplaceAll(field, FieldSeparator, KeySeparator)
}

// Structural derives the structural (snake_case) name of an exported Go field.
// APIEndpoint becomes "api_endpoint", RetryCount becomes "retry_count".
func Structural(goName string) string {
	return strcase.SnakeCase(goName)
}
