package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/ggarcia209/go-aws-samples/goaws"
	"github.com/ggarcia209/go-aws-samples/gos3"
)

func (a *app) s3Command() *cli.Command {
	bucket := requiredString("bucket", "bucket name")
	key := requiredString("key", "object key")

	return &cli.Command{
		Name:  "s3",
		Usage: "Amazon S3 samples",
		Commands: []*cli.Command{
			{
				Name:  "create-bucket",
				Usage: "create a bucket in the configured region",
				Flags: []cli.Flag{bucket},
				Action: a.action(func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
					return gos3.CreateBucket(ctx, cfg, cmd.String("bucket"))
				}),
			},
			{
				Name:  "delete-bucket",
				Usage: "delete an empty bucket",
				Flags: []cli.Flag{bucket},
				Action: a.action(func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
					return gos3.DeleteBucket(ctx, cfg, cmd.String("bucket"))
				}),
			},
			{
				Name:  "list-buckets",
				Usage: "list the buckets of the account",
				Action: a.query(
					func(ctx context.Context, _ *cli.Command, cfg goaws.AwsConfig) bool {
						return gos3.ListBuckets(ctx, cfg)
					},
					func(ctx context.Context, _ *cli.Command, cfg goaws.AwsConfig) (any, error) {
						return gos3.NewS3(cfg).ListBuckets(ctx)
					},
				),
			},
			{
				Name:  "put-object",
				Usage: "upload a file",
				Flags: []cli.Flag{bucket, key, requiredString("file", "path of the file to upload")},
				Action: a.action(func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
					return gos3.PutObject(ctx, cfg, cmd.String("bucket"), cmd.String("key"), cmd.String("file"))
				}),
			},
			{
				Name:  "get-object",
				Usage: "print the content of an object",
				Flags: []cli.Flag{bucket, key},
				Action: a.action(func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
					return gos3.GetObject(ctx, cfg, cmd.String("bucket"), cmd.String("key"))
				}),
			},
			{
				Name:  "delete-object",
				Usage: "delete an object",
				Flags: []cli.Flag{bucket, key},
				Action: a.action(func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
					return gos3.DeleteObject(ctx, cfg, cmd.String("bucket"), cmd.String("key"))
				}),
			},
			{
				Name:  "list-objects",
				Usage: "list the objects in a bucket",
				Flags: []cli.Flag{bucket, &cli.StringFlag{Name: "prefix", Usage: "only list keys starting with prefix"}},
				Action: a.query(
					func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool {
						return gos3.ListObjects(ctx, cfg, cmd.String("bucket"))
					},
					func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) (any, error) {
						return gos3.NewS3(cfg).ListObjects(ctx, cmd.String("bucket"), cmd.String("prefix"))
					},
				),
			},
		},
	}
}
