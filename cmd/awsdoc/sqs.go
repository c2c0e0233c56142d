package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/ggarcia209/go-aws-samples/goaws"
	"github.com/ggarcia209/go-aws-samples/gosqs"
)

func (a *app) sqsCommand() *cli.Command {
	queueURL := requiredString("queue-url", "queue URL")

	return &cli.Command{
		Name:  "sqs",
		Usage: "Amazon SQS samples",
		Commands: []*cli.Command{
			{
				Name:  "create-queue",
				Usage: "create a queue, FIFO when the name ends in .fifo",
				Flags: []cli.Flag{requiredString("name", "queue name")},
				Action: a.action(func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
					return gosqs.CreateQueue(ctx, cfg, cmd.String("name"))
				}),
			},
			{
				Name:  "list-queues",
				Usage: "list the queues in the region",
				Flags: []cli.Flag{&cli.StringFlag{Name: "prefix", Usage: "only list queues whose name starts with prefix"}},
				Action: a.query(
					func(ctx context.Context, _ *cli.Command, cfg goaws.AwsConfig) bool {
						return gosqs.ListQueues(ctx, cfg)
					},
					func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) (any, error) {
						return gosqs.NewSQS(cfg).Queues.ListQueues(ctx, cmd.String("prefix"))
					},
				),
			},
			{
				Name:  "delete-queue",
				Usage: "delete a queue",
				Flags: []cli.Flag{queueURL},
				Action: a.action(func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
					return gosqs.DeleteQueue(ctx, cfg, cmd.String("queue-url"))
				}),
			},
			{
				Name:  "send-message",
				Usage: "send a message to a queue",
				Flags: []cli.Flag{
					queueURL,
					requiredString("body", "message body"),
					&cli.StringSliceFlag{Name: "attribute", Usage: "String message attribute as name=value, repeated"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					attributes, err := parseAttributes(cmd.StringSlice("attribute"))
					if err != nil {
						return err
					}
					return a.action(func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
						return gosqs.SendMessage(ctx, cfg, cmd.String("queue-url"), cmd.String("body"), attributes...)
					})(ctx, cmd)
				},
			},
			{
				Name:  "receive-messages",
				Usage: "receive, print and delete messages from a queue",
				Flags: []cli.Flag{
					queueURL,
					&cli.Int32Flag{Name: "max", Value: 10, Usage: "maximum number of messages, 1 to 10"},
				},
				Action: a.action(func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
					return gosqs.ReceiveMessages(ctx, cfg, cmd.String("queue-url"), cmd.Int32("max"))
				}),
			},
		},
	}
}

// parseAttributes parses String message attributes written as "name=value".
func parseAttributes(specs []string) ([]gosqs.MsgAV, error) {
	attributes := make([]gosqs.MsgAV, 0, len(specs))
	for _, spec := range specs {
		name, value, ok := strings.Cut(spec, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("attribute %q is not name=value", spec)
		}
		attributes = append(attributes, gosqs.CreateMsgAttribute(name, "String", value))
	}
	return attributes, nil
}
