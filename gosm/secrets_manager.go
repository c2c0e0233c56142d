// gosm contains common methods for interacting with AWS Secrets Manager
package gosm

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	sm "github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	json "github.com/goccy/go-json"
	"go.openly.dev/pointy"

	"github.com/ggarcia209/go-aws-samples/goaws"
	"github.com/ggarcia209/go-aws-samples/internal/log"
)

const (
	minRecoveryWindowDays = 7
	maxRecoveryWindowDays = 30
)

//go:generate mockgen -destination=../mocks/gosmmock/secrets_manager.go -package=gosmmock . SecretsManagerLogic
type SecretsManagerLogic interface {
	GetSecret(ctx context.Context, key string) (*GetSecretResponse, error)
	CreateSecret(ctx context.Context, name, value string) (*CreateSecretResponse, error)
	ListSecretVersions(ctx context.Context, key string) (*ListSecretVersionsResponse, error)
	DeleteSecret(ctx context.Context, key string, recoveryWindowDays int64) (*DeleteSecretResponse, error)
}

// SecretsManagerClientAPI defines the interface for the AWS SecretsManager client methods used by this package.
//
//go:generate mockgen -destination=./secrets_manager_client_test.go -package=gosm . SecretsManagerClientAPI
type SecretsManagerClientAPI interface {
	GetSecretValue(ctx context.Context, params *sm.GetSecretValueInput, optFns ...func(*sm.Options)) (*sm.GetSecretValueOutput, error)
	CreateSecret(ctx context.Context, params *sm.CreateSecretInput, optFns ...func(*sm.Options)) (*sm.CreateSecretOutput, error)
	ListSecretVersionIds(ctx context.Context, params *sm.ListSecretVersionIdsInput, optFns ...func(*sm.Options)) (*sm.ListSecretVersionIdsOutput, error)
	DeleteSecret(ctx context.Context, params *sm.DeleteSecretInput, optFns ...func(*sm.Options)) (*sm.DeleteSecretOutput, error)
}

type SecretsManager struct {
	svc SecretsManagerClientAPI
}

func NewSecretsManager(config goaws.AwsConfig) *SecretsManager {
	client := sm.NewFromConfig(config.Config)
	return &SecretsManager{
		svc: client,
	}
}

// GetSecret returns the secret at the given key. A secret stored as a JSON
// object with a member named key is returned as a key pair holding that
// member's value.
func (s *SecretsManager) GetSecret(ctx context.Context, key string) (*GetSecretResponse, error) {
	input := &sm.GetSecretValueInput{
		SecretId: aws.String(key),
	}

	secret, err := s.svc.GetSecretValue(ctx, input)
	if err != nil {
		return nil, handleErr(fmt.Errorf("s.svc.GetSecretValue: %w", err), key)
	}

	switch {
	case secret.ARN == nil:
		return nil, NewMissingResponseDataError("ARN")
	case secret.Name == nil:
		return nil, NewMissingResponseDataError("Name")
	}

	var raw string
	switch {
	case secret.SecretString != nil:
		raw = *secret.SecretString
	case len(secret.SecretBinary) > 0:
		raw = string(secret.SecretBinary)
	default:
		return nil, NewMissingResponseDataError("Secret")
	}

	resp := &GetSecretResponse{
		ARN:    *secret.ARN,
		Name:   *secret.Name,
		Secret: Secret{Value: raw},
	}
	var pairs map[string]string
	if err := json.Unmarshal([]byte(raw), &pairs); err == nil {
		if v, ok := pairs[key]; ok {
			resp.Secret = Secret{Key: pointy.String(key), Value: v}
			resp.IsKeyPair = true
		}
	}

	return resp, nil
}

// CreateSecret stores value as the string secret name.
func (s *SecretsManager) CreateSecret(ctx context.Context, name, value string) (*CreateSecretResponse, error) {
	result, err := s.svc.CreateSecret(ctx, &sm.CreateSecretInput{
		Name:         aws.String(name),
		SecretString: aws.String(value),
	})
	if err != nil {
		return nil, handleErr(fmt.Errorf("s.svc.CreateSecret: %w", err), name)
	}
	log.Debugf("created secret %s", aws.ToString(result.ARN))

	return &CreateSecretResponse{
		ARN:       aws.ToString(result.ARN),
		Name:      aws.ToString(result.Name),
		VersionId: aws.ToString(result.VersionId),
	}, nil
}

// ListSecretVersions returns the versions of the secret at key, reading
// every page. Deprecated versions are left out.
func (s *SecretsManager) ListSecretVersions(ctx context.Context, key string) (*ListSecretVersionsResponse, error) {
	resp := &ListSecretVersionsResponse{Versions: make([]SecretVersion, 0)}

	p := sm.NewListSecretVersionIdsPaginator(s.svc, &sm.ListSecretVersionIdsInput{
		SecretId: aws.String(key),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, handleErr(fmt.Errorf("s.svc.ListSecretVersionIds: %w", err), key)
		}
		resp.ARN = aws.ToString(page.ARN)
		resp.Name = aws.ToString(page.Name)
		for _, v := range page.Versions {
			resp.Versions = append(resp.Versions, SecretVersion{
				VersionId:        aws.ToString(v.VersionId),
				Stages:           v.VersionStages,
				CreatedDate:      aws.ToTime(v.CreatedDate),
				LastAccessedDate: aws.ToTime(v.LastAccessedDate),
			})
		}
	}

	return resp, nil
}

// DeleteSecret schedules the secret at key for deletion after
// recoveryWindowDays, which must be between 7 and 30. A window of 0 deletes
// the secret immediately, without recovery.
func (s *SecretsManager) DeleteSecret(ctx context.Context, key string, recoveryWindowDays int64) (*DeleteSecretResponse, error) {
	input := &sm.DeleteSecretInput{SecretId: aws.String(key)}
	switch {
	case recoveryWindowDays == 0:
		input.ForceDeleteWithoutRecovery = pointy.Bool(true)
	case recoveryWindowDays < minRecoveryWindowDays || recoveryWindowDays > maxRecoveryWindowDays:
		return nil, NewInvalidRequestError(fmt.Sprintf(
			"recovery window must be between %d and %d days, got %d",
			minRecoveryWindowDays, maxRecoveryWindowDays, recoveryWindowDays))
	default:
		input.RecoveryWindowInDays = pointy.Int64(recoveryWindowDays)
	}

	result, err := s.svc.DeleteSecret(ctx, input)
	if err != nil {
		return nil, handleErr(fmt.Errorf("s.svc.DeleteSecret: %w", err), key)
	}

	return &DeleteSecretResponse{
		ARN:          aws.ToString(result.ARN),
		Name:         aws.ToString(result.Name),
		DeletionDate: aws.ToTime(result.DeletionDate),
	}, nil
}
