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
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	cberrors "github.com/devdonalds/cookbook/pkg/errors"
)

// Validator turns untyped entry payloads into committed registry entries.
// Checks run in a fixed order and the first failure wins; on any failure
// the registry is left unmodified.
//
// The validator does not verify that required item names reference
// existing entries. That check is deferred to resolution time, so a recipe
// may be added before the items it requires.
type Validator struct {
	registry *Registry
}

// NewValidator creates a Validator committing into the given registry.
func NewValidator(registry *Registry) *Validator {
	return &Validator{registry: registry}
}

// AddJSON decodes a raw JSON payload and validates it via Add. Numbers are
// decoded as json.Number so integer checks are exact: a fractional cook
// time or quantity is rejected rather than truncated.
func (v *Validator) AddJSON(data []byte) (Entry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		return nil, cberrors.Wrap(cberrors.ErrCodeInvalidRequest, "invalid entry format", err)
	}
	if payload == nil {
		return nil, cberrors.New(cberrors.ErrCodeInvalidRequest, "invalid entry format")
	}

	return v.Add(payload)
}

// Add validates an untyped payload and, on success, constructs the typed
// Entry and commits it to the registry in one step.
func (v *Validator) Add(payload map[string]any) (Entry, error) {
	entryType, ok := payload["type"].(string)
	if !ok || !EntryType(entryType).IsValid() {
		return nil, cberrors.New(cberrors.ErrCodeInvalidType,
			"type must be recipe or ingredient")
	}

	name, ok := payload["name"].(string)
	if !ok || name == "" {
		return nil, cberrors.New(cberrors.ErrCodeInvalidName,
			"name must be a non-empty string")
	}

	var cookTime int64
	if EntryType(entryType) == EntryTypeIngredient {
		raw, present := payload["cookTime"]
		ct, isInt := intValue(raw)
		if !present || !isInt || ct < 0 {
			return nil, cberrors.New(cberrors.ErrCodeInvalidCookTime,
				"cookTime must be an integer >= 0")
		}
		cookTime = ct
	}

	if v.registry.Has(name) {
		return nil, cberrors.NewWithContext(cberrors.ErrCodeDuplicateName,
			"entry names must be unique", map[string]any{"name": name})
	}

	var entry Entry
	switch EntryType(entryType) {
	case EntryTypeIngredient:
		entry = &Ingredient{Name: name, CookTime: cookTime}
	case EntryTypeRecipe:
		items, err := validateRequiredItems(payload["requiredItems"])
		if err != nil {
			return nil, err
		}
		entry = &Recipe{Name: name, RequiredItems: items}
	}

	// Re-checked under the registry write lock in case of a concurrent
	// insert between the uniqueness check above and here.
	if err := v.registry.Insert(entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// validateRequiredItems checks the requiredItems field of a recipe payload.
// Quantities are not required to be positive and the list may be empty;
// both are accepted as-is.
func validateRequiredItems(raw any) ([]RequiredItem, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, cberrors.New(cberrors.ErrCodeInvalidRequiredItems,
			"requiredItems must be a list")
	}

	items := make([]RequiredItem, 0, len(list))
	seen := make(map[string]bool, len(list))

	for i, elem := range list {
		obj, ok := elem.(map[string]any)
		if !ok {
			return nil, cberrors.NewWithContext(cberrors.ErrCodeInvalidRequiredItem,
				"required item must be an object", map[string]any{"index": i})
		}

		itemName, ok := obj["name"].(string)
		if !ok || itemName == "" {
			return nil, cberrors.NewWithContext(cberrors.ErrCodeInvalidRequiredItem,
				"required item name must be a non-empty string", map[string]any{"index": i})
		}

		if seen[itemName] {
			return nil, cberrors.NewWithContext(cberrors.ErrCodeDuplicateRequiredItemName,
				fmt.Sprintf("required item %q listed more than once", itemName),
				map[string]any{"name": itemName})
		}

		quantity, isInt := intValue(obj["quantity"])
		if !isInt {
			return nil, cberrors.NewWithContext(cberrors.ErrCodeInvalidRequiredItem,
				"required item quantity must be an integer", map[string]any{"name": itemName})
		}

		seen[itemName] = true
		items = append(items, RequiredItem{Name: itemName, Quantity: quantity})
	}

	return items, nil
}

// intValue extracts an exact int64 from the kinds JSON and YAML decoding
// produce. Fractional values are rejected, never truncated.
func intValue(raw any) (int64, bool) {
	switch n := raw.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float64:
		// Seed files decoded without json.Number land here.
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}
