package gosm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ggarcia209/go-aws-samples/goaws"
)

// GetSecretValue prints the value of the secret.
func GetSecretValue(ctx context.Context, cfg goaws.AwsConfig, secretID string) bool {
	res, err := NewSecretsManager(cfg).GetSecret(ctx, secretID)
	if !goaws.Succeeded("secretsmanager.GetSecretValue", err) {
		return false
	}
	fmt.Printf("Value of %s: %s\n", res.Name, res.Secret.Value)
	return true
}

// CreateSecret creates a string secret.
func CreateSecret(ctx context.Context, cfg goaws.AwsConfig, name, value string) bool {
	res, err := NewSecretsManager(cfg).CreateSecret(ctx, name, value)
	if !goaws.Succeeded("secretsmanager.CreateSecret", err) {
		return false
	}
	fmt.Printf("Created secret %s with ARN: %s\n", res.Name, res.ARN)
	return true
}

// ListSecretVersions prints every version of the secret with its staging
// labels.
func ListSecretVersions(ctx context.Context, cfg goaws.AwsConfig, secretID string) bool {
	res, err := NewSecretsManager(cfg).ListSecretVersions(ctx, secretID)
	if !goaws.Succeeded("secretsmanager.ListSecretVersionIds", err) {
		return false
	}
	fmt.Printf("Versions of %s:\n", res.Name)
	for _, v := range res.Versions {
		fmt.Printf("\t%s [%s] created %s\n", v.VersionId, strings.Join(v.Stages, ","), v.CreatedDate.UTC().Format(time.DateOnly))
	}
	return true
}

// DeleteSecret deletes the secret immediately when recoveryWindowDays is 0,
// otherwise schedules it for deletion.
func DeleteSecret(ctx context.Context, cfg goaws.AwsConfig, secretID string, recoveryWindowDays int64) bool {
	res, err := NewSecretsManager(cfg).DeleteSecret(ctx, secretID, recoveryWindowDays)
	if !goaws.Succeeded("secretsmanager.DeleteSecret", err) {
		return false
	}
	if recoveryWindowDays == 0 {
		fmt.Printf("Deleted secret %s.\n", res.Name)
		return true
	}
	fmt.Printf("Secret %s is scheduled for deletion on %s.\n", res.Name, res.DeletionDate.UTC().Format(time.DateOnly))
	return true
}
