// Package cli implements the command-line interface for the cookbook tool.
//
// # Overview
//
// The cookbook CLI manages cookbook entry files and runs the cookbook API
// server. It validates entry lists, produces flattened recipe summaries,
// normalizes free-text recipe names, and serves the HTTP API.
//
// # Commands
//
// serve - Run the cookbook API server:
//
//	cookbook serve [--port PORT] [--cookbook FILE]
//
// Starts the HTTP API, optionally seeding the registry from a cookbook file
// before accepting traffic.
//
// summary - Summarize a recipe from a cookbook file:
//
//	cookbook summary --cookbook entries.json --name pasta [--format yaml]
//
// Loads the cookbook file and prints the named recipe's total cook time and
// flattened base-ingredient quantities.
//
// parse - Normalize a recipe name:
//
//	cookbook parse "Riz@z RISO00tto!"
//
// validate - Check every entry in a cookbook file:
//
//	cookbook validate --cookbook entries.json [--fail-on-error]
//
// Reports the outcome of each entry payload, continuing past rejections.
//
// # Global Flags
//
//	--log-level    Set logging verbosity (debug, info, warn, error)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Formats
//
// Commands that produce structured output accept --format json|yaml|table
// and --output FILE (default: stdout in YAML).
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/devdonalds/cookbook/pkg/cli.version=1.0.0'"
package cli
