// Command preflight is an AWS Lambda function that checks configuration fields
// resolve from SSM Parameter Store.
//
// Invoke with {"fields": ["api_endpoint", "retry_count"]}.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/jacentio/paramconf/preflight"
	"github.com/jacentio/paramconf/ssmstore"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	adapter, err := ssmstore.New(context.Background(), ssmstore.DefaultConfig(), logger)
	if err != nil {
		logger.Error("failed to create parameter store adapter", "error", err)
		os.Exit(1)
	}
	defer adapter.Close()

	handler := preflight.NewHandler(adapter, logger)
	lambda.Start(handler.HandleCheck)
}
