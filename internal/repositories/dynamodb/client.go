package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ClientConfig holds the settings needed to build a DynamoDB client.
// Endpoint is only set when pointing at a local DynamoDB instance.
type ClientConfig struct {
	Region   string
	Endpoint string
}

// NewClient builds a DynamoDB client from the default credential chain. The
// client is safe for concurrent reuse across invocations.
func NewClient(ctx context.Context, cfg ClientConfig) (*dynamodb.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, err
	}

	if cfg.Endpoint != "" {
		// Local DynamoDB accepts any credentials but requires some.
		return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.Credentials = credentials.NewStaticCredentialsProvider("local", "local", "")
		}), nil
	}

	return dynamodb.NewFromConfig(awsCfg), nil
}
