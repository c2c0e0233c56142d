package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/ggarcia209/go-aws-samples/goaws"
	"github.com/ggarcia209/go-aws-samples/scenarios/topicsqueues"
)

func (a *app) scenarioCommand() *cli.Command {
	return &cli.Command{
		Name:  "scenario",
		Usage: "interactive walkthroughs",
		Commands: []*cli.Command{
			{
				Name:  "topics-and-queues",
				Usage: "publish to an SNS topic and read the messages from subscribed SQS queues",
				Action: a.action(func(ctx context.Context, _ *cli.Command, cfg goaws.AwsConfig) bool {
					return topicsqueues.RunScenario(ctx, cfg)
				}),
			},
		},
	}
}
