/*
Copyright © 2025 Cookbook Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"

	"github.com/devdonalds/cookbook/pkg/cookbook"
	"github.com/devdonalds/cookbook/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Run the cookbook API server",
		Description: `Run the cookbook HTTP API:

  POST /v1/entries  - validate and store an ingredient or recipe
  GET  /v1/summary  - flattened summary of a stored recipe (?name=)
  POST /v1/parse    - normalize a free-text recipe name

The registry starts empty unless a cookbook file is provided, in which
case every entry in the file is loaded before the server accepts traffic.
Loading stops at the first invalid entry and the server does not start.

# Examples

Serve on the default port:
  cookbook serve

Serve a pre-seeded cookbook on port 9090:
  cookbook serve --port 9090 --cookbook entries.yaml`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port for the HTTP server",
				Sources: cli.EnvVars("PORT"),
				Value:   8080,
			},
			&cli.FloatFlag{
				Name:  "rate-limit",
				Usage: "Max requests per second per server (0 = server default)",
			},
			&cli.IntFlag{
				Name:  "rate-limit-burst",
				Usage: "Burst allowance for the rate limiter (0 = server default)",
			},
			cookbookFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			h := cookbook.NewHandler(cookbook.NewRegistry())

			if path := cmd.String("cookbook"); path != "" {
				n, err := cookbook.LoadFile(path, h.Validator())
				if err != nil {
					return fmt.Errorf("error seeding cookbook: %w", err)
				}
				slog.Info("seeded cookbook", "path", path, "entries", n)
			}

			opts := []server.Option{
				server.WithName(name),
				server.WithVersion(version),
				server.WithPort(int(cmd.Int("port"))),
				server.WithHandler(h.Routes()),
			}
			if limit := cmd.Float("rate-limit"); limit > 0 {
				burst := int(cmd.Int("rate-limit-burst"))
				if burst <= 0 {
					burst = int(limit)
				}
				opts = append(opts, server.WithRateLimit(rate.Limit(limit), burst))
			}

			return server.New(opts...).Run(ctx)
		},
	}
}
