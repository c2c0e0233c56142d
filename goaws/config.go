// package goaws contains methods for initializing AWS SDK v2
// configurations for use with each service client. Also contains
// generic error types for implementing service-specific errors
// and the shared logic that turns an SDK outcome into a sample result.
package goaws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"

	"github.com/ggarcia209/go-aws-samples/internal/log"
)

type AwsConfig struct {
	Config aws.Config
}

func NewDefaultConfig(ctx context.Context) (*AwsConfig, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("config.LoadDefaultConfig: %w", err)
	}

	return &AwsConfig{Config: cfg}, nil
}

func NewConfigWithProfile(ctx context.Context, profile string) (*AwsConfig, error) {
	return NewConfig(ctx, WithProfile(profile))
}

func NewConfigFromEnv(
	ctx context.Context,
	accessKeyId,
	secretKey,
	stsToken string,
) (*AwsConfig, error) {
	return NewConfig(ctx, WithStaticCredentials(accessKeyId, secretKey, stsToken))
}

// options holds optional overrides applied on top of the default
// shared config chain.
type options struct {
	profile      string
	region       string
	baseEndpoint string
	creds        aws.CredentialsProvider
	httpClient   aws.HTTPClient
	maxAttempts  int
	noRetries    bool
}

// Option customizes how the AWS config is loaded. With no options the
// environment and shared config files decide everything.
type Option func(*options)

// WithProfile sets the shared config profile.
func WithProfile(profile string) Option {
	return func(o *options) { o.profile = profile }
}

// WithRegion overrides the region.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// WithStaticCredentials uses fixed credentials instead of the provider chain.
func WithStaticCredentials(accessKeyId, secretKey, sessionToken string) Option {
	return func(o *options) {
		o.creds = credentials.NewStaticCredentialsProvider(accessKeyId, secretKey, sessionToken)
	}
}

// WithHTTPClient routes every request of clients built from the config
// through client. Tests use it to install MockHTTP.
func WithHTTPClient(client aws.HTTPClient) Option {
	return func(o *options) { o.httpClient = client }
}

// WithRetryMaxAttempts caps SDK attempts per call. A value of 1 or less
// disables retries so one call sends exactly one request.
func WithRetryMaxAttempts(attempts int) Option {
	return func(o *options) {
		if attempts <= 1 {
			o.noRetries = true
			return
		}
		o.maxAttempts = attempts
	}
}

// WithBaseEndpoint points every service client at endpoint, e.g. a local
// emulator.
func WithBaseEndpoint(endpoint string) Option {
	return func(o *options) { o.baseEndpoint = endpoint }
}

// NewConfig loads the default config chain with the given overrides applied.
func NewConfig(ctx context.Context, opts ...Option) (*AwsConfig, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var loadOpts []func(*config.LoadOptions) error
	if o.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(o.profile))
	}
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}
	if o.creds != nil {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(o.creds))
	}
	if o.httpClient != nil {
		loadOpts = append(loadOpts, config.WithHTTPClient(o.httpClient))
	}
	if o.baseEndpoint != "" {
		loadOpts = append(loadOpts, config.WithBaseEndpoint(o.baseEndpoint))
	}
	switch {
	case o.noRetries:
		loadOpts = append(loadOpts, config.WithRetryer(func() aws.Retryer {
			return aws.NopRetryer{}
		}))
	case o.maxAttempts > 0:
		loadOpts = append(loadOpts, config.WithRetryMaxAttempts(o.maxAttempts))
	}
	log.Debugf("loading aws config: profile=%q region=%q overrides=%d", o.profile, o.region, len(loadOpts))

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("config.LoadDefaultConfig: %w", err)
	}

	return &AwsConfig{Config: cfg}, nil
}
