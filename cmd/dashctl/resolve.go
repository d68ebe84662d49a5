package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/YusovID/review-dashboard/internal/domain"
	"github.com/YusovID/review-dashboard/internal/markdown"
	"github.com/urfave/cli/v3"
)

var errNotReference = errors.New("not a source file reference")

func resolveCommand() *cli.Command {
	return &cli.Command{
		Name:      "resolve",
		Usage:     "Resolve a link text and optional href into a GitLab source URL",
		ArgsUsage: "<text> [href]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "web-url",
				Usage:    "Project web URL",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "ref",
				Usage: "Branch or commit",
				Value: "main",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() < 1 || cmd.NArg() > 2 {
				return fmt.Errorf("expected <text> [href], got %d arguments", cmd.NArg())
			}

			ref, ok := markdown.ResolveReference(cmd.Args().Get(0), cmd.Args().Get(1))
			if !ok {
				return errNotReference
			}

			links := domain.SourceLinks{WebURL: cmd.String("web-url"), Ref: cmd.String("ref")}

			_, err := fmt.Fprintf(cmd.Root().Writer, "%s\t%s\n", markdown.ReferenceLabel(ref), markdown.SourceURL(links, ref))

			return err
		},
	}
}
