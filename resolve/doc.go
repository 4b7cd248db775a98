// Package resolve populates flat configuration structs from a key-value parameter store.
//
// Each exported string field of the target struct is looked up under a key derived
// from its name, one field at a time in declaration order:
//
//	type Config struct {
//	    APIEndpoint string // key "api-endpoint"
//	    RetryCount  string // key "retry-count"
//	    Region      string `param:"aws_region"` // key "aws-region"
//	}
//
//	cfg, err := resolve.Resolve[Config](ctx, src)
//
// Structural names are snake_case (from the `param` tag or the Go field name);
// store keys replace every "_" with "-".
//
// # Sources
//
// Any [Source] works. The ssmstore package provides one backed by AWS Systems
// Manager Parameter Store, dynamostore one backed by a DynamoDB table.
//
// # Errors
//
// Resolution is all-or-nothing. The first failing field aborts the whole call:
//
//   - [ErrUnsupportedShape] - target is not a flat struct of exported string fields,
//     or two fields map to the same key (no lookup is made)
//   - [*FieldError] - a field failed; its Cause is a [*KeyNotFoundError] or a
//     [*StoreUnavailableError], matchable with [ErrKeyNotFound] / [ErrStoreUnavailable]
package resolve
