// Package dynamostore resolves configuration from a DynamoDB table of key/value rows.
//
// Each row holds one parameter: the key in Config.KeyAttr (partition key) and
// the value in Config.ValueAttr. Rows whose numeric "ttl" attribute has passed
// are treated as absent.
package dynamostore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"

	"github.com/jacentio/paramconf/internal/bridge"
	"github.com/jacentio/paramconf/resolve"
)

// API is the subset of the DynamoDB client used by the Store.
type API interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// Store is a blocking resolve.Source backed by a DynamoDB table.
type Store struct {
	client API
	config Config
	exec   *bridge.Executor
	logger *slog.Logger
	now    func() time.Time
}

var _ resolve.Source = (*Store)(nil)

// New creates a Store. The store owns an executor goroutine; call Close to release it.
func New(client API, config Config, logger *slog.Logger) *Store {
	config.validate()
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		client: client,
		config: config,
		exec:   bridge.New(),
		logger: logger.With("table", config.TableName),
		now:    time.Now,
	}
}

// GetParameter reads the row for key with a consistent read.
//
// A missing row, an expired row, or a row without a non-empty value yields
// *resolve.KeyNotFoundError. A value that is not a string, or any SDK failure,
// yields *resolve.StoreUnavailableError.
func (s *Store) GetParameter(ctx context.Context, key string) (string, error) {
	var value string
	err := s.exec.Do(ctx, func(ctx context.Context) error {
		result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
			TableName:      aws.String(s.config.TableName),
			Key:            s.key(key),
			ConsistentRead: aws.Bool(true),
		})
		if err != nil {
			return err
		}
		value, err = s.decodeValue(key, result.Item)
		return err
	})
	if err != nil {
		return "", s.mapError(key, err)
	}
	return value, nil
}

// Put writes (or replaces) the row for key.
func (s *Store) Put(ctx context.Context, key, value string) error {
	return s.exec.Do(ctx, func(ctx context.Context) error {
		item := s.key(key)
		av, err := attributevalue.Marshal(value)
		if err != nil {
			return fmt.Errorf("marshal value: %w", err)
		}
		item[s.config.ValueAttr] = av

		_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(s.config.TableName),
			Item:      item,
		})
		if err != nil {
			return fmt.Errorf("put %q: %w", key, err)
		}
		return nil
	})
}

// Close releases the store's executor.
func (s *Store) Close() {
	s.exec.Close()
}

func (s *Store) key(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		s.config.KeyAttr: &types.AttributeValueMemberS{Value: key},
	}
}

// decodeValue extracts the value attribute of a GetItem result.
func (s *Store) decodeValue(key string, item map[string]types.AttributeValue) (string, error) {
	if item == nil || isExpired(item, s.now()) {
		return "", &resolve.KeyNotFoundError{Key: key}
	}

	raw, ok := item[s.config.ValueAttr]
	if !ok {
		return "", &resolve.KeyNotFoundError{Key: key}
	}
	if _, isNull := raw.(*types.AttributeValueMemberNULL); isNull {
		return "", &resolve.KeyNotFoundError{Key: key}
	}
	if _, isString := raw.(*types.AttributeValueMemberS); !isString {
		return "", &resolve.StoreUnavailableError{
			Detail: fmt.Sprintf("attribute %q of %q is not a string", s.config.ValueAttr, key),
		}
	}

	var value string
	if err := attributevalue.Unmarshal(raw, &value); err != nil {
		return "", &resolve.StoreUnavailableError{Detail: "decode value: " + err.Error(), Err: err}
	}
	if value == "" {
		return "", &resolve.KeyNotFoundError{Key: key}
	}
	return value, nil
}

func (s *Store) mapError(key string, err error) error {
	var notFound *resolve.KeyNotFoundError
	if errors.As(err, &notFound) {
		return notFound
	}
	var unavailable *resolve.StoreUnavailableError
	if errors.As(err, &unavailable) {
		return unavailable
	}

	var missingTable *types.ResourceNotFoundException
	if errors.As(err, &missingTable) {
		s.logger.Warn("parameter table missing", "key", key, "error", err)
		return &resolve.StoreUnavailableError{Detail: "table " + s.config.TableName + " not found", Err: err}
	}
	if errors.Is(err, bridge.ErrClosed) {
		return &resolve.StoreUnavailableError{Detail: "store closed", Err: err}
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return &resolve.StoreUnavailableError{
			Detail: fmt.Sprintf("%s: %s", apiErr.ErrorCode(), apiErr.ErrorMessage()),
			Err:    err,
		}
	}
	return &resolve.StoreUnavailableError{Detail: err.Error(), Err: err}
}
