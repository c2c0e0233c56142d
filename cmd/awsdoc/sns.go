package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/ggarcia209/go-aws-samples/goaws"
	"github.com/ggarcia209/go-aws-samples/gosns"
)

func (a *app) snsCommand() *cli.Command {
	topicArn := requiredString("topic-arn", "topic ARN")

	return &cli.Command{
		Name:  "sns",
		Usage: "Amazon SNS samples",
		Commands: []*cli.Command{
			{
				Name:  "list-topics",
				Usage: "list the topics in the region",
				Action: a.query(
					func(ctx context.Context, _ *cli.Command, cfg goaws.AwsConfig) bool {
						return gosns.ListTopics(ctx, cfg)
					},
					func(ctx context.Context, _ *cli.Command, cfg goaws.AwsConfig) (any, error) {
						return gosns.NewSNS(cfg).ListTopics(ctx)
					},
				),
			},
			{
				Name:  "create-topic",
				Usage: "create a topic, FIFO when the name ends in .fifo",
				Flags: []cli.Flag{requiredString("name", "topic name")},
				Action: a.action(func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
					return gosns.CreateTopic(ctx, cfg, cmd.String("name"))
				}),
			},
			{
				Name:  "delete-topic",
				Usage: "delete a topic and its subscriptions",
				Flags: []cli.Flag{topicArn},
				Action: a.action(func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
					return gosns.DeleteTopic(ctx, cfg, cmd.String("topic-arn"))
				}),
			},
			{
				Name:  "subscribe",
				Usage: "subscribe an endpoint to a topic",
				Flags: []cli.Flag{
					topicArn,
					requiredString("protocol", "delivery protocol, e.g. email, sqs or https"),
					requiredString("endpoint", "address of the endpoint"),
				},
				Action: a.action(func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
					return gosns.Subscribe(ctx, cfg, cmd.String("protocol"), cmd.String("endpoint"), cmd.String("topic-arn"))
				}),
			},
			{
				Name:  "unsubscribe",
				Usage: "delete a subscription",
				Flags: []cli.Flag{requiredString("subscription-arn", "subscription ARN")},
				Action: a.action(func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
					return gosns.Unsubscribe(ctx, cfg, cmd.String("subscription-arn"))
				}),
			},
			{
				Name:  "publish",
				Usage: "publish a message to a topic",
				Flags: []cli.Flag{topicArn, requiredString("message", "message text")},
				Action: a.action(func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
					return gosns.Publish(ctx, cfg, cmd.String("message"), cmd.String("topic-arn"))
				}),
			},
			{
				Name:  "list-subscriptions",
				Usage: "list the subscriptions in the region",
				Action: a.query(
					func(ctx context.Context, _ *cli.Command, cfg goaws.AwsConfig) bool {
						return gosns.ListSubscriptions(ctx, cfg)
					},
					func(ctx context.Context, _ *cli.Command, cfg goaws.AwsConfig) (any, error) {
						return gosns.NewSNS(cfg).ListSubscriptions(ctx)
					},
				),
			},
		},
	}
}
