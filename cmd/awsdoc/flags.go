package main

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// newGlobalFlags returns the flags every command inherits. region, profile
// and endpoint-url fall back to the environment, then to the YAML file at
// configFile.
func newGlobalFlags(configFile string) []cli.Flag {
	return []cli.Flag{
		withConfigFile(configFile, &cli.StringFlag{
			Name:    "region",
			Aliases: []string{"r"},
			Usage:   "AWS region to send requests to",
			Sources: cli.NewValueSourceChain(cli.EnvVar("AWS_REGION")),
		}),
		withConfigFile(configFile, &cli.StringFlag{
			Name:    "profile",
			Aliases: []string{"p"},
			Usage:   "shared config profile to load credentials from",
			Sources: cli.NewValueSourceChain(cli.EnvVar("AWS_PROFILE")),
		}),
		withConfigFile(configFile, &cli.StringFlag{
			Name:    "endpoint-url",
			Usage:   "send every request to this endpoint, e.g. a local emulator",
			Sources: cli.NewValueSourceChain(cli.EnvVar("AWS_ENDPOINT_URL")),
		}),
		&cli.BoolFlag{
			Name:        "json",
			Usage:       "print the result of list and get actions as JSON",
			HideDefault: true,
		},
	}
}

// withConfigFile appends the YAML file at path to the sources of flag.
func withConfigFile(path string, flag *cli.StringFlag) *cli.StringFlag {
	if path == "" {
		return flag
	}
	flag.Sources.Chain = append(flag.Sources.Chain, yaml.YAML(flag.Name, altsrc.StringSourcer(path)))
	return flag
}

func requiredString(name, usage string) *cli.StringFlag {
	return &cli.StringFlag{Name: name, Usage: usage, Required: true}
}
