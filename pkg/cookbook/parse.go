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
	"regexp"
	"strings"

	cberrors "github.com/devdonalds/cookbook/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	separatorRuns = regexp.MustCompile(`[\s_-]+`)
	nonNameRunes  = regexp.MustCompile(`[^A-Za-z ]+`)

	titleCaser = cases.Title(language.English)
)

// NormalizeName cleans a free-text entry name: runs of whitespace, hyphens,
// and underscores collapse to a single space, anything that is neither a
// letter nor a space is dropped, and each remaining word is title-cased.
// A name with nothing left after cleaning is invalid.
//
// Normalization is independent of the registry; it is a pure string
// transform used by the parse endpoint.
func NormalizeName(input string) (string, error) {
	cleaned := separatorRuns.ReplaceAllString(input, " ")
	cleaned = nonNameRunes.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	if cleaned == "" {
		return "", cberrors.New(cberrors.ErrCodeInvalidName, "invalid recipe name")
	}

	return titleCaser.String(strings.ToLower(cleaned)), nil
}
