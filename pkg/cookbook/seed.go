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
	"fmt"
	"log/slog"

	"github.com/devdonalds/cookbook/pkg/serializer"
)

// EntryReport is the per-payload outcome of loading a cookbook file.
type EntryReport struct {
	Index    int    `json:"index" yaml:"index"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Accepted bool   `json:"accepted" yaml:"accepted"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

// LoadFile reads a cookbook file (a JSON or YAML list of raw entry
// payloads, format inferred from the extension) and feeds each payload
// through the validator in order. Loading stops at the first rejection.
//
// Returns the number of entries committed before the failure, if any.
func LoadFile(path string, v *Validator) (int, error) {
	payloads, err := serializer.FromFile[[]map[string]any](path)
	if err != nil {
		return 0, fmt.Errorf("failed to load cookbook file: %w", err)
	}

	for i, payload := range *payloads {
		entry, err := v.Add(payload)
		if err != nil {
			return i, fmt.Errorf("entry %d rejected: %w", i, err)
		}
		slog.Debug("seeded entry", "index", i, "name", entry.EntryName(), "type", entry.Type())
	}

	return len(*payloads), nil
}

// CheckFile reads a cookbook file and validates every payload, continuing
// past rejections. Accepted payloads are committed to the validator's
// registry, so cross-entry checks (duplicate names) behave as they would
// during sequential loading.
func CheckFile(path string, v *Validator) ([]EntryReport, error) {
	payloads, err := serializer.FromFile[[]map[string]any](path)
	if err != nil {
		return nil, fmt.Errorf("failed to load cookbook file: %w", err)
	}

	reports := make([]EntryReport, 0, len(*payloads))
	for i, payload := range *payloads {
		report := EntryReport{Index: i}
		if name, ok := payload["name"].(string); ok {
			report.Name = name
		}

		if entry, err := v.Add(payload); err != nil {
			report.Error = err.Error()
		} else {
			report.Accepted = true
			report.Name = entry.EntryName()
		}

		reports = append(reports, report)
	}

	return reports, nil
}
