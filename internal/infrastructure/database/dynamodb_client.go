package database

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// localCredential is accepted by DynamoDB Local, which ignores credentials but
// still needs the request signed.
const localCredential = "local"

// DynamoDBOptions locates the DynamoDB service holding the bookshop tables.
type DynamoDBOptions struct {
	Region          string
	Endpoint        string // DynamoDB Local, e.g. http://dynamodb:8000
	AccessKeyID     string
	SecretAccessKey string
}

// NewDynamoDBClient builds the client shared by the customer, item, bill,
// payment and sequence repositories.
func NewDynamoDBClient(ctx context.Context, opts DynamoDBOptions) (*dynamodb.Client, error) {
	cfg, err := loadAWSConfig(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("dynamodb config: %w", err)
	}
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	}), nil
}

// loadAWSConfig uses static credentials when keys are given or a local
// endpoint is set, and the default AWS chain (env, profile, IAM role) otherwise.
func loadAWSConfig(ctx context.Context, opts DynamoDBOptions) (aws.Config, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(opts.Region),
	}

	key, secret := opts.AccessKeyID, opts.SecretAccessKey
	if opts.Endpoint != "" {
		if key == "" {
			key = localCredential
		}
		if secret == "" {
			secret = localCredential
		}
	}
	if key != "" && secret != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(key, secret, ""),
		))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}
