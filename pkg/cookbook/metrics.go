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

package cookbook

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Entry creation metrics
	entriesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookbook_entries_created_total",
			Help: "Total number of entries committed to the cookbook",
		},
		[]string{"type"},
	)

	entryRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookbook_entry_rejections_total",
			Help: "Total number of entry payloads rejected by validation",
		},
		[]string{"code"},
	)

	// Summary metrics
	summaryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cookbook_summary_duration_seconds",
			Help:    "Duration of recipe summary resolution in seconds",
			Buckets: []float64{.0001, .001, .01, .1, 1, 10},
		},
	)

	summaryCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cookbook_summary_cache_hits_total",
			Help: "Total number of summary responses served from cache",
		},
	)
	summaryCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cookbook_summary_cache_misses_total",
			Help: "Total number of summary requests resolved from the registry",
		},
	)
)
