package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/YusovID/review-dashboard/internal/backend"
	"github.com/YusovID/review-dashboard/internal/domain"
	"github.com/YusovID/review-dashboard/internal/gitlab"
	"github.com/YusovID/review-dashboard/internal/session"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

var errNoToken = errors.New("a GitLab token is required: pass --token or set GITLAB_TOKEN")

func projectsCommand() *cli.Command {
	return &cli.Command{
		Name:  "projects",
		Usage: "List the GitLab projects visible to a token",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "gitlab-url",
				Usage:   "GitLab base URL",
				Value:   "https://gitlab.com",
				Sources: cli.EnvVars("GITLAB_BASE_URL"),
			},
			&cli.StringFlag{
				Name:    "backend-url",
				Usage:   "Review backend base URL; when set, bound repositories are marked",
				Sources: cli.EnvVars("BACKEND_BASE_URL"),
			},
			&cli.StringFlag{
				Name:    "token",
				Usage:   "Access token",
				Sources: cli.EnvVars("GITLAB_TOKEN"),
			},
			&cli.StringFlag{
				Name:  "search",
				Usage: "Filter projects by name",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of projects",
				Value: 20,
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: 10 * time.Second,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			token := cmd.String("token")
			if token == "" {
				return errNoToken
			}

			s := session.New(token)
			timeout := cmd.Duration("timeout")

			gl := gitlab.New(cmd.String("gitlab-url"), gitlab.WithTimeout(timeout))

			projects, err := gl.Projects(ctx, s, gitlab.ProjectQuery{
				Membership: true,
				Search:     cmd.String("search"),
				PerPage:    int(cmd.Int("limit")),
			})
			if err != nil {
				return fmt.Errorf("list projects: %w", err)
			}

			var bound []domain.BoundRepository

			if url := cmd.String("backend-url"); url != "" {
				bound, err = backend.New(url, backend.WithTimeout(timeout)).BoundRepositories(ctx, s)
				if err != nil {
					return fmt.Errorf("list bound repositories: %w", err)
				}
			}

			return writeProjects(cmd.Root().Writer, projects, bound)
		},
	}
}

func writeProjects(w io.Writer, projects []domain.Project, bound []domain.BoundRepository) error {
	analyses := make(map[int64]*int64, len(bound))
	for _, b := range bound {
		analyses[b.ID] = b.AnalysisID
	}

	table := tablewriter.NewWriter(w)
	table.Header("ID", "Path", "Default branch", "Bound", "Analysis")

	for _, p := range projects {
		isBound, analysis := "", ""

		if id, ok := analyses[p.ID]; ok {
			isBound = "yes"

			if id != nil {
				analysis = strconv.FormatInt(*id, 10)
			}
		}

		row := []string{strconv.FormatInt(p.ID, 10), p.PathWithNamespace, p.DefaultBranch, isBound, analysis}
		if err := table.Append(row); err != nil {
			return err
		}
	}

	return table.Render()
}
