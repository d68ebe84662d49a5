// Command dashctl exercises the dashboard rendering pipeline and GitLab
// client from a terminal.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "dashctl: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "dashctl",
		Usage: "Review dashboard tooling",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env",
				Usage:   "Logger environment: local, dev or prod",
				Value:   "local",
				Sources: cli.EnvVars("ENV"),
			},
		},
		Commands: []*cli.Command{
			renderCommand(),
			resolveCommand(),
			projectsCommand(),
		},
	}
}
