package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/ggarcia209/go-aws-samples/goaws"
)

// errActionFailed is returned when a sample reports failure. The sample has
// already logged the cause.
var errActionFailed = errors.New("action failed")

// configLoader builds the AWS config. goaws.NewConfig outside tests.
type configLoader func(ctx context.Context, opts ...goaws.Option) (*goaws.AwsConfig, error)

// sample runs one sample action with the flags of cmd.
type sample func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) bool

// fetch returns the wrapper response a read action prints.
type fetch func(ctx context.Context, cmd *cli.Command, cfg goaws.AwsConfig) (any, error)

type app struct {
	load configLoader
}

func newApp(configFile string, load configLoader) *cli.Command {
	a := &app{load: load}
	root := &cli.Command{
		Name:                      "awsdoc",
		Usage:                     "run the AWS SDK samples",
		Flags:                     newGlobalFlags(configFile),
		DisableSliceFlagSeparator: true,
		Commands: []*cli.Command{
			a.dynamodbCommand(),
			a.iamCommand(),
			a.s3Command(),
			a.secretsManagerCommand(),
			a.snsCommand(),
			a.sqsCommand(),
			a.scenarioCommand(),
		},
	}

	for _, svc := range root.Commands {
		sort.Slice(svc.Commands, func(i, j int) bool {
			return svc.Commands[i].Name < svc.Commands[j].Name
		})
		// cli reads the separator setting from every command it sets up
		svc.DisableSliceFlagSeparator = true
		for _, action := range svc.Commands {
			action.DisableSliceFlagSeparator = true
		}
	}
	return root
}

func (a *app) config(ctx context.Context, cmd *cli.Command) (goaws.AwsConfig, error) {
	var opts []goaws.Option
	if region := cmd.String("region"); region != "" {
		opts = append(opts, goaws.WithRegion(region))
	}
	if profile := cmd.String("profile"); profile != "" {
		opts = append(opts, goaws.WithProfile(profile))
	}
	if endpoint := cmd.String("endpoint-url"); endpoint != "" {
		opts = append(opts, goaws.WithBaseEndpoint(endpoint))
	}

	cfg, err := a.load(ctx, opts...)
	if err != nil {
		return goaws.AwsConfig{}, fmt.Errorf("a.load: %w", err)
	}
	return *cfg, nil
}

// action adapts a sample to a cli.ActionFunc.
func (a *app) action(run sample) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg, err := a.config(ctx, cmd)
		if err != nil {
			return err
		}
		if !run(ctx, cmd, cfg) {
			return fmt.Errorf("%s: %w", cmd.FullName(), errActionFailed)
		}
		return nil
	}
}

// query is action for read samples. With --json the wrapper response is
// printed instead of the sample's text output.
func (a *app) query(run sample, get fetch) cli.ActionFunc {
	text := a.action(run)
	return func(ctx context.Context, cmd *cli.Command) error {
		if !cmd.Bool("json") {
			return text(ctx, cmd)
		}
		cfg, err := a.config(ctx, cmd)
		if err != nil {
			return err
		}
		v, err := get(ctx, cmd, cfg)
		if !goaws.Succeeded(cmd.FullName(), err) {
			return fmt.Errorf("%s: %w", cmd.FullName(), errActionFailed)
		}
		return printJSON(cmd.Root().Writer, v)
	}
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
