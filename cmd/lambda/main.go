// Command lambda serves the notes application behind an API Gateway HTTP API.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/ferdiebergado/jobnotes/internal/app"
	"github.com/ferdiebergado/jobnotes/internal/platform/lambdahttp"
)

func main() {
	ctx := context.Background()

	// The connection is reused across invocations of the same container.
	a, _, err := app.Setup(ctx, app.DefaultOptions())
	if err != nil {
		slog.Error("Application failed to start.", "reason", err)
		os.Exit(1)
	}

	lambda.Start(lambdahttp.New(a.Handler()))
}
