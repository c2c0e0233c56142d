package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/ggarcia209/go-aws-samples/goaws"
	"github.com/ggarcia209/go-aws-samples/godynamo"
)

func (a *app) dynamodbCommand() *cli.Command {
	table := requiredString("table", "table name")
	partitionKey := requiredString("partition-key", "name of the partition key attribute")
	partitionValue := requiredString("partition-value", "value of the partition key")

	return &cli.Command{
		Name:    "dynamodb",
		Aliases: []string{"ddb"},
		Usage:   "Amazon DynamoDB samples",
		Commands: []*cli.Command{
			{
				Name:  "create-table",
				Usage: "create a table and wait until it is active",
				Flags: []cli.Flag{
					table, partitionKey,
					&cli.StringFlag{Name: "partition-key-type", Value: "S", Usage: "S, N or B"},
					&cli.StringFlag{Name: "sort-key", Usage: "name of the sort key attribute"},
					&cli.StringFlag{Name: "sort-key-type", Value: "S", Usage: "S, N or B"},
				},
				Action: a.action(func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
					t := &godynamo.Table{
						TableName:      cmd.String("table"),
						PrimaryKeyName: cmd.String("partition-key"),
						PrimaryKeyType: cmd.String("partition-key-type"),
					}
					if sk := cmd.String("sort-key"); sk != "" {
						t.SortKeyName = sk
						t.SortKeyType = cmd.String("sort-key-type")
					}
					return godynamo.CreateTable(ctx, cfg, t)
				}),
			},
			{
				Name:  "describe-table",
				Usage: "print the status and size of a table",
				Flags: []cli.Flag{table},
				Action: a.query(
					func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
						return godynamo.DescribeTable(ctx, cfg, cmd.String("table"))
					},
					func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) (any, error) {
						return godynamo.NewDynamoDB(cfg, nil, nil).Tables.DescribeTable(ctx, cmd.String("table"))
					},
				),
			},
			{
				Name:  "list-tables",
				Usage: "list the tables in the region",
				Action: a.query(
					func(ctx context.Context, _ *cli.Command, cfg goaws.AwsConfig) bool {
						return godynamo.ListTables(ctx, cfg)
					},
					func(ctx context.Context, _ *cli.Command, cfg goaws.AwsConfig) (any, error) {
						names, _, err := godynamo.NewDynamoDB(cfg, nil, nil).Tables.ListTables(ctx, godynamo.ListTableParams{})
						return map[string][]string{"table_names": names}, err
					},
				),
			},
			{
				Name:  "delete-table",
				Usage: "delete a table",
				Flags: []cli.Flag{table},
				Action: a.action(func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
					return godynamo.DeleteTable(ctx, cfg, cmd.String("table"))
				}),
			},
			{
				Name:  "put-item",
				Usage: "put an item of string attributes",
				Flags: []cli.Flag{
					table,
					&cli.StringSliceFlag{Name: "key", Usage: "attribute name, repeated", Required: true},
					&cli.StringSliceFlag{Name: "value", Usage: "attribute value, repeated in the order of --key", Required: true},
				},
				Action: a.action(func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
					return godynamo.PutItem(ctx, cfg, cmd.String("table"), cmd.StringSlice("key"), cmd.StringSlice("value"))
				}),
			},
			{
				Name:  "get-item",
				Usage: "print the item with a partition key value",
				Flags: []cli.Flag{table, partitionKey, partitionValue},
				Action: a.action(func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
					return godynamo.GetItem(ctx, cfg, cmd.String("table"), cmd.String("partition-key"), cmd.String("partition-value"))
				}),
			},
			{
				Name:  "update-item",
				Usage: "set one attribute of an item",
				Flags: []cli.Flag{
					table, partitionKey, partitionValue,
					requiredString("attribute", "name of the attribute to set"),
					requiredString("attribute-value", "new value of the attribute"),
				},
				Action: a.action(func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
					return godynamo.UpdateItem(ctx, cfg, cmd.String("table"),
						cmd.String("partition-key"), cmd.String("partition-value"),
						cmd.String("attribute"), cmd.String("attribute-value"))
				}),
			},
			{
				Name:  "delete-item",
				Usage: "delete the item with a partition key value",
				Flags: []cli.Flag{table, partitionKey, partitionValue},
				Action: a.action(func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
					return godynamo.DeleteItem(ctx, cfg, cmd.String("table"), cmd.String("partition-key"), cmd.String("partition-value"))
				}),
			},
			{
				Name:  "query",
				Usage: "print the items with a partition key value",
				Flags: []cli.Flag{table, partitionKey, partitionValue},
				Action: a.action(func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
					return godynamo.QueryItems(ctx, cfg, cmd.String("table"), cmd.String("partition-key"), cmd.String("partition-value"))
				}),
			},
			{
				Name:  "scan",
				Usage: "print the items whose attribute equals a value",
				Flags: []cli.Flag{
					table,
					requiredString("attribute", "attribute to filter on"),
					requiredString("attribute-value", "value the attribute must equal"),
				},
				Action: a.action(func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
					return godynamo.ScanItems(ctx, cfg, cmd.String("table"), cmd.String("attribute"), cmd.String("attribute-value"))
				}),
			},
			{
				Name:  "batch-write",
				Usage: "put several items in one batch",
				Flags: []cli.Flag{
					table,
					&cli.StringSliceFlag{Name: "item", Usage: "item as name=value pairs separated by commas, repeated", Required: true},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					items, err := parseItems(cmd.StringSlice("item"))
					if err != nil {
						return err
					}
					return a.action(func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
						return godynamo.BatchWriteItems(ctx, cfg, cmd.String("table"), items)
					})(ctx, cmd)
				},
			},
		},
	}
}

// parseItems parses items written as "name=value,name=value".
func parseItems(specs []string) ([]map[string]string, error) {
	items := make([]map[string]string, 0, len(specs))
	for _, spec := range specs {
		item := make(map[string]string)
		for _, pair := range strings.Split(spec, ",") {
			name, value, ok := strings.Cut(pair, "=")
			name = strings.TrimSpace(name)
			if !ok || name == "" {
				return nil, fmt.Errorf("item %q: %q is not name=value", spec, pair)
			}
			item[name] = strings.TrimSpace(value)
		}
		items = append(items, item)
	}
	return items, nil
}
