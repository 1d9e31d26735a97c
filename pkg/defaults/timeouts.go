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

package defaults

import "time"

// Handler timeouts for HTTP request processing.
const (
	// EntryHandlerTimeout is the timeout for entry creation requests.
	EntryHandlerTimeout = 10 * time.Second

	// SummaryHandlerTimeout is the timeout for recipe summary requests.
	// Deep recipe graphs resolve quickly, but the bound keeps a
	// pathological request from holding a connection open.
	SummaryHandlerTimeout = 30 * time.Second

	// SummaryCacheTTL is the default cache duration for summary responses.
	// The cache is flushed on every successful entry insert, so the TTL
	// only bounds memory for names that stop being requested.
	SummaryCacheTTL = 10 * time.Minute

	// SummaryCacheSweepInterval is how often expired summary cache items
	// are purged.
	SummaryCacheSweepInterval = 15 * time.Minute
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Resolution limits.
const (
	// MaxResolutionDepth caps recipe expansion depth. The cycle guard
	// catches true cycles; this bounds legitimate but absurdly deep
	// reference chains.
	MaxResolutionDepth = 1000
)
