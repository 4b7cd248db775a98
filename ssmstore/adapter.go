package ssmstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"

	"github.com/jacentio/paramconf/internal/bridge"
	"github.com/jacentio/paramconf/resolve"
)

// API is the subset of the SSM client used by the Adapter.
type API interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// Adapter is a blocking resolve.Source backed by SSM Parameter Store.
type Adapter struct {
	id     string
	api    API
	config Config
	exec   *bridge.Executor
	logger *slog.Logger
}

var _ resolve.Source = (*Adapter)(nil)

// New builds an Adapter from the ambient AWS configuration (environment, shared
// config files, instance role). It fails with *InitError when no region is
// configured or no credentials can be retrieved; no adapter is returned then.
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Adapter, error) {
	var opts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(cfg.Profile))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, &InitError{Detail: "load aws config", Err: err}
	}
	if awsCfg.Region == "" {
		return nil, &InitError{Detail: "no region configured"}
	}
	if awsCfg.Credentials == nil {
		return nil, &InitError{Detail: "no credentials provider"}
	}
	if _, err := awsCfg.Credentials.Retrieve(ctx); err != nil {
		return nil, &InitError{Detail: "retrieve credentials", Err: err}
	}

	return NewWithAPI(ssm.NewFromConfig(awsCfg), cfg, logger), nil
}

// NewWithAPI builds an Adapter around an existing client. The adapter takes
// ownership of api; callers should not use it afterwards.
func NewWithAPI(api API, cfg Config, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	id := uuid.New().String()
	return &Adapter{
		id:     id,
		api:    api,
		config: cfg,
		exec:   bridge.New(),
		logger: logger.With("adapterID", id),
	}
}

// GetParameter fetches a single parameter by name, blocking until SSM answers.
//
// A missing parameter, or one without a value, yields *resolve.KeyNotFoundError.
// Any other failure yields *resolve.StoreUnavailableError.
func (a *Adapter) GetParameter(ctx context.Context, key string) (string, error) {
	var value string
	err := a.exec.Do(ctx, func(ctx context.Context) error {
		a.logger.Debug("fetching parameter", "key", key)

		out, err := a.api.GetParameter(ctx, &ssm.GetParameterInput{
			Name:           aws.String(key),
			WithDecryption: aws.Bool(a.config.WithDecryption),
		})
		if err != nil {
			return err
		}
		if out == nil || out.Parameter == nil || aws.ToString(out.Parameter.Value) == "" {
			return &resolve.KeyNotFoundError{Key: key}
		}
		value = *out.Parameter.Value
		return nil
	})
	if err != nil {
		return "", mapError(key, err)
	}
	return value, nil
}

// Close releases the adapter's executor. Lookups after Close fail with
// *resolve.StoreUnavailableError.
func (a *Adapter) Close() {
	a.exec.Close()
	a.logger.Debug("adapter closed")
}

// mapError maps SSM and executor errors onto the resolve lookup causes.
func mapError(key string, err error) error {
	var notFound *resolve.KeyNotFoundError
	if errors.As(err, &notFound) {
		return notFound
	}

	var paramErr *types.ParameterNotFound
	if errors.As(err, &paramErr) {
		return &resolve.KeyNotFoundError{Key: key}
	}
	var versionErr *types.ParameterVersionNotFound
	if errors.As(err, &versionErr) {
		return &resolve.KeyNotFoundError{Key: key}
	}

	if errors.Is(err, bridge.ErrClosed) {
		return &resolve.StoreUnavailableError{Detail: "adapter closed", Err: err}
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
