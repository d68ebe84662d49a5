package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/YusovID/review-dashboard/internal/diagram"
	"github.com/YusovID/review-dashboard/internal/domain"
	"github.com/YusovID/review-dashboard/internal/markdown"
	"github.com/YusovID/review-dashboard/pkg/logger/slogpretty"
	"github.com/urfave/cli/v3"
)

var errInvalidArgCount = errors.New("expected exactly one argument: file path or \"-\" for stdin")

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "Render a review Markdown document to HTML",
		ArgsUsage: "<file | ->",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "web-url",
				Usage: "Project web URL used for source file links",
			},
			&cli.StringFlag{
				Name:  "ref",
				Usage: "Branch or commit used for source file links",
				Value: "main",
			},
			&cli.StringFlag{
				Name:    "renderer-url",
				Usage:   "Kroki base URL; diagrams are left untouched when empty",
				Sources: cli.EnvVars("DIAGRAM_RENDERER_URL"),
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Diagram rendering timeout",
				Value: 10 * time.Second,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("%w: got %d", errInvalidArgCount, cmd.NArg())
			}

			src, err := readInput(cmd.Args().First(), cmd.Root().Reader)
			if err != nil {
				return err
			}

			links := domain.SourceLinks{WebURL: cmd.String("web-url"), Ref: cmd.String("ref")}

			out, err := markdown.NewRenderer().Render(src, links)
			if err != nil {
				return fmt.Errorf("render failed: %w", err)
			}

			if url := cmd.String("renderer-url"); url != "" {
				log := slogpretty.NewLogger(cmd.Root().String("env"), cmd.Root().ErrWriter)
				renderer := diagram.NewKrokiRenderer(url, diagram.WithTimeout(cmd.Duration("timeout")))

				res, err := diagram.NewPostRenderer(renderer, 0, log).Process(ctx, out)
				if err != nil {
					return fmt.Errorf("diagram rendering failed: %w", err)
				}

				if res.Failed > 0 {
					fmt.Fprintf(cmd.Root().ErrWriter, "%d of %d diagrams failed\n", res.Failed, res.Rendered+res.Failed)
				}

				out = res.HTML
			}

			_, err = io.WriteString(cmd.Root().Writer, out)

			return err
		},
	}
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}

		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	return string(data), nil
}
