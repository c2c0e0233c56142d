package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/ggarcia209/go-aws-samples/goaws"
	"github.com/ggarcia209/go-aws-samples/gosm"
)

func (a *app) secretsManagerCommand() *cli.Command {
	secretID := requiredString("secret-id", "name or ARN of the secret")

	return &cli.Command{
		Name:    "secretsmanager",
		Aliases: []string{"sm"},
		Usage:   "AWS Secrets Manager samples",
		Commands: []*cli.Command{
			{
				Name:  "get-secret-value",
				Usage: "print the value of a secret",
				Flags: []cli.Flag{secretID},
				Action: a.query(
					func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
						return gosm.GetSecretValue(ctx, cfg, cmd.String("secret-id"))
					},
					func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) (any, error) {
						return gosm.NewSecretsManager(cfg).GetSecret(ctx, cmd.String("secret-id"))
					},
				),
			},
			{
				Name:  "create-secret",
				Usage: "create a string secret",
				Flags: []cli.Flag{requiredString("name", "secret name"), requiredString("value", "secret value")},
				Action: a.action(func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
					return gosm.CreateSecret(ctx, cfg, cmd.String("name"), cmd.String("value"))
				}),
			},
			{
				Name:  "list-secret-versions",
				Usage: "list the versions of a secret",
				Flags: []cli.Flag{secretID},
				Action: a.query(
					func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
						return gosm.ListSecretVersions(ctx, cfg, cmd.String("secret-id"))
					},
					func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) (any, error) {
						return gosm.NewSecretsManager(cfg).ListSecretVersions(ctx, cmd.String("secret-id"))
					},
				),
			},
			{
				Name:  "delete-secret",
				Usage: "schedule a secret for deletion, or delete it now with --recovery-window 0",
				Flags: []cli.Flag{
					secretID,
					&cli.Int64Flag{Name: "recovery-window", Value: 30, Usage: "days before the secret is deleted, 7 to 30, or 0"},
				},
				Action: a.action(func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
					return gosm.DeleteSecret(ctx, cfg, cmd.String("secret-id"), cmd.Int64("recovery-window"))
				}),
			},
		},
	}
}
