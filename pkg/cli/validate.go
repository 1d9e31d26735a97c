/*
Copyright © 2025 Cookbook Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/devdonalds/cookbook/pkg/cookbook"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Validate every entry in a cookbook file",
		Description: `Validate each entry payload in a cookbook file and report the outcome
per entry. Unlike loading, validation continues past rejections, so a
single run reports every problem in the file. Accepted entries still
count toward duplicate-name checks for the entries after them.

# Examples

Report all entries:
  cookbook validate --cookbook entries.json

Fail the command if any entry is rejected (useful for CI/CD):
  cookbook validate -f entries.yaml --fail-on-error -t table`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit with non-zero status if any entry is rejected",
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

			reports, err := cookbook.CheckFile(path, cookbook.NewValidator(cookbook.NewRegistry()))
			if err != nil {
				return fmt.Errorf("error validating cookbook: %w", err)
			}

			if err := out.Serialize(reports); err != nil {
				return err
			}

			if cmd.Bool("fail-on-error") {
				for _, r := range reports {
					if !r.Accepted {
						return fmt.Errorf("cookbook contains invalid entries")
					}
				}
			}

			return nil
		},
	}
}
