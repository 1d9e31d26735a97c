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

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:                  "parse",
		EnableShellCompletion: true,
		Usage:                 "Normalize a free-text recipe name",
		ArgsUsage:             "NAME",
		Description: `Clean up a free-text recipe name: runs of whitespace, hyphens, and
underscores become a single space, characters that are neither letters
nor spaces are dropped, and each word is title-cased.

# Examples

  cookbook parse "Riz@z RISO00tto!"
  Rizz Risotto

  cookbook parse "alpha-alpha"
  Alpha Alpha`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			input := cmd.Args().First()
			if input == "" {
				return fmt.Errorf("recipe name argument is required")
			}

			parsed, err := cookbook.NormalizeName(input)
			if err != nil {
				return fmt.Errorf("error parsing recipe name: %w", err)
			}

			fmt.Fprintln(cmd.Writer, parsed)
			return nil
		},
	}
}
