package db

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/ferdiebergado/jobnotes/internal/config"
)

// dialDynamo handles dynamodb://<table>?region=<region>&endpoint=<url>.
func dialDynamo(ctx context.Context, uri *url.URL, cfg *config.DB) (*Conn, error) {
	table := strings.Trim(uri.Host+uri.Path, "/")
	if table == "" {
		return nil, fmt.Errorf("%w: dynamodb connection string has no table name", ErrConfiguration)
	}

	query := uri.Query()
	var loadOpts []func(*awsconfig.LoadOptions) error
	if region := query.Get("region"); region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: load aws config: %w", ErrConfiguration, err)
	}

	endpoint := query.Get("endpoint")
	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	pingCtx, cancel := pingContext(ctx, cfg)
	defer cancel()

	if _, err := client.DescribeTable(pingCtx, &dynamodb.DescribeTableInput{
		TableName: aws.String(table),
	}); err != nil {
		return nil, fmt.Errorf("%w: describe dynamodb table %q: %w", ErrConnection, table, err)
	}

	return &Conn{
		Driver: DriverDynamo,
		Dynamo: client,
		Table:  table,
	}, nil
}
