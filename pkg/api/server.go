// Copyright (c) 2025, Cookbook Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import (
	"context"
	"log/slog"
	"os"

	"github.com/devdonalds/cookbook/pkg/cookbook"
	"github.com/devdonalds/cookbook/pkg/logging"
	"github.com/devdonalds/cookbook/pkg/server"
)

const (
	name           = "cookbookd"
	versionDefault = "dev"

	// COOKBOOK_FILE points at a JSON or YAML entry list loaded into the
	// registry before the server accepts traffic.
	seedFileEnvVar = "COOKBOOK_FILE"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/devdonalds/cookbook/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the cookbook API server and blocks until shutdown.
// It configures logging, optionally seeds the registry from the file named
// by COOKBOOK_FILE, sets up routes, and handles graceful shutdown.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	h := cookbook.NewHandler(cookbook.NewRegistry())

	if path := os.Getenv(seedFileEnvVar); path != "" {
		n, err := cookbook.LoadFile(path, h.Validator())
		if err != nil {
			slog.Error("failed to seed cookbook", "path", path, "error", err)
			return err
		}
		slog.Info("seeded cookbook", "path", path, "entries", n)
	}

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(h.Routes()),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
