package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/ggarcia209/go-aws-samples/goaws"
	"github.com/ggarcia209/go-aws-samples/goiam"
)

func (a *app) iamCommand() *cli.Command {
	role := requiredString("role", "role name")
	user := requiredString("user", "user name")
	policyArn := requiredString("policy-arn", "ARN of a managed policy")

	return &cli.Command{
		Name:  "iam",
		Usage: "AWS Identity and Access Management samples",
		Commands: []*cli.Command{
			{
				Name:  "attach-role-policy",
				Usage: "attach a managed policy to a role",
				Flags: []cli.Flag{role, policyArn},
				Action: a.action(func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
					return goiam.AttachRolePolicy(ctx, cfg, cmd.String("role"), cmd.String("policy-arn"))
				}),
			},
			{
				Name:  "detach-role-policy",
				Usage: "detach a managed policy from a role",
				Flags: []cli.Flag{role, policyArn},
				Action: a.action(func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
					return goiam.DetachRolePolicy(ctx, cfg, cmd.String("role"), cmd.String("policy-arn"))
				}),
			},
			{
				Name:  "list-attached-role-policies",
				Usage: "list the managed policies attached to a role",
				Flags: []cli.Flag{role},
				Action: a.query(
					func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
						return goiam.ListAttachedRolePolicies(ctx, cfg, cmd.String("role"))
					},
					func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) (any, error) {
						return goiam.NewIAM(cfg).ListAttachedRolePolicies(ctx, cmd.String("role"))
					},
				),
			},
			{
				Name:  "create-role",
				Usage: "create a role a service or account can assume",
				Flags: []cli.Flag{role, requiredString("principal", "service principal or account ARN trusted by the role")},
				Action: a.action(func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
					return goiam.CreateRole(ctx, cfg, cmd.String("role"), cmd.String("principal"))
				}),
			},
			{
				Name:  "delete-role",
				Usage: "delete a role",
				Flags: []cli.Flag{role},
				Action: a.action(func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
					return goiam.DeleteRole(ctx, cfg, cmd.String("role"))
				}),
			},
			{
				Name:  "create-policy",
				Usage: "create a managed policy allowing actions on a resource",
				Flags: []cli.Flag{
					requiredString("name", "policy name"),
					&cli.StringSliceFlag{Name: "action", Usage: "allowed action, repeated", Required: true},
					requiredString("resource", "resource ARN the actions apply to"),
				},
				Action: a.action(func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
					return goiam.CreatePolicy(ctx, cfg, cmd.String("name"), cmd.StringSlice("action"), cmd.String("resource"))
				}),
			},
			{
				Name:  "delete-policy",
				Usage: "delete a managed policy",
				Flags: []cli.Flag{policyArn},
				Action: a.action(func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
					return goiam.DeletePolicy(ctx, cfg, cmd.String("policy-arn"))
				}),
			},
			{
				Name:  "attach-group-policy",
				Usage: "attach a managed policy to a group",
				Flags: []cli.Flag{requiredString("group", "group name"), policyArn},
				Action: a.action(func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
					return goiam.AttachGroupPolicy(ctx, cfg, cmd.String("group"), cmd.String("policy-arn"))
				}),
			},
			{
				Name:  "create-user",
				Usage: "create a user",
				Flags: []cli.Flag{user},
				Action: a.action(func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
					return goiam.CreateUser(ctx, cfg, cmd.String("user"))
				}),
			},
			{
				Name:  "delete-user",
				Usage: "delete a user",
				Flags: []cli.Flag{user},
				Action: a.action(func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
					return goiam.DeleteUser(ctx, cfg, cmd.String("user"))
				}),
			},
			{
				Name:  "list-users",
				Usage: "list the users in the account",
				Action: a.query(
					func(ctx context.Context, _ *cli.Command, cfg goaws.AwsConfig) bool {
						return goiam.ListUsers(ctx, cfg)
					},
					func(ctx context.Context, _ *cli.Command, cfg goaws.AwsConfig) (any, error) {
						return goiam.NewIAM(cfg).ListUsers(ctx)
					},
				),
			},
			{
				Name:  "create-access-key",
				Usage: "create an access key for a user",
				Flags: []cli.Flag{user},
				Action: a.action(func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
					return goiam.CreateAccessKey(ctx, cfg, cmd.String("user"))
				}),
			},
			{
				Name:  "delete-access-key",
				Usage: "delete an access key of a user",
				Flags: []cli.Flag{user, requiredString("access-key-id", "ID of the access key")},
				Action: a.action(func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
					return goiam.DeleteAccessKey(ctx, cfg, cmd.String("user"), cmd.String("access-key-id"))
				}),
			},
		},
	}
}
