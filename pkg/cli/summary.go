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

	"github.com/devdonalds/cookbook/pkg/cookbook"
)

func summaryCmd() *cli.Command {
	return &cli.Command{
		Name:                  "summary",
		EnableShellCompletion: true,
		Usage:                 "Summarize a recipe from a cookbook file",
		Description: `Load a cookbook file and produce a flattened summary of the named
recipe: the total cook time and the total quantity of every base
ingredient, with nested recipes fully expanded.

The cookbook file is a JSON or YAML list of entry payloads. Loading
stops at the first invalid entry.

# Examples

Summarize a recipe to stdout in YAML:
  cookbook summary --cookbook entries.json --name pasta

Write the summary as JSON to a file:
  cookbook summary -f entries.yaml --name pasta -t json -o summary.json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "name",
				Aliases:  []string{"n"},
				Required: true,
				Usage:    "Name of the recipe to summarize",
			},
			cookbookFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			out, err := outputWriter(cmd)
			if err != nil {
				return err
			}

			path := cmd.String("cookbook")
			if path == "" {
				return fmt.Errorf("cookbook file is required (--cookbook)")
			}

			registry := cookbook.NewRegistry()
			n, err := cookbook.LoadFile(path, cookbook.NewValidator(registry))
			if err != nil {
				return fmt.Errorf("error loading cookbook: %w", err)
			}
			slog.Debug("loaded cookbook", "path", path, "entries", n)

			summary, err := cookbook.NewSummarizer(registry).Summarize(ctx, cmd.String("name"))
			if err != nil {
				return fmt.Errorf("error summarizing recipe: %w", err)
			}

			return out.Serialize(summary)
		},
	}
}
