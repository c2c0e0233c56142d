// Command awsdoc runs the AWS SDK samples by service and action name:
//
//	awsdoc [global flags] <service> <action> [flags]
//
// It exits 0 when the action succeeds and 1 otherwise.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ggarcia209/go-aws-samples/goaws"
	"github.com/ggarcia209/go-aws-samples/internal/log"
)

// envConfigFile names the variable pointing at the YAML config file.
const envConfigFile = "AWSDOC_CONFIG"

func main() {
	os.Exit(realMain(context.Background(), os.Args))
}

func realMain(ctx context.Context, args []string) int {
	log.InitLogger()
	log.Debugf("args captured: args=%v", args)

	app := newApp(configFile(), goaws.NewConfig)
	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 1
	}
	return 0
}

// configFile returns the path of the optional YAML file holding flag
// defaults: $AWSDOC_CONFIG, or .awsdoc.yaml in the home directory.
func configFile() string {
	if path := os.Getenv(envConfigFile); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".awsdoc.yaml")
}
