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
	"context"
	"fmt"
	"sort"

	cberrors "github.com/devdonalds/cookbook/pkg/errors"
)

// Summarizer builds flattened recipe summaries from resolver output and
// per-ingredient cook times.
type Summarizer struct {
	registry *Registry
	resolver *Resolver
}

// NewSummarizer creates a Summarizer over the given registry.
func NewSummarizer(registry *Registry) *Summarizer {
	return &Summarizer{
		registry: registry,
		resolver: NewResolver(registry),
	}
}

// Summarize resolves the named recipe into its base ingredients and total
// cook time. Resolver failures, including unknown references, collapse
// into the single ingredient-resolution-failed reason; context
// cancellation passes through as a timeout.
//
// The ingredient list is sorted by name. Ordering carries no meaning; it
// only keeps responses stable.
func (s *Summarizer) Summarize(ctx context.Context, name string) (*Summary, error) {
	entry, ok := s.registry.Get(name)
	if !ok {
		return nil, cberrors.NewWithContext(cberrors.ErrCodeRecipeNotFound,
			fmt.Sprintf("recipe %q not found", name),
			map[string]any{"name": name})
	}

	if entry.Type() != EntryTypeRecipe {
		return nil, cberrors.NewWithContext(cberrors.ErrCodeNotARecipe,
			"can only summarize recipe entries",
			map[string]any{"name": name, "type": string(entry.Type())})
	}

	totals, err := s.resolver.Resolve(ctx, name, 1)
	if err != nil {
		if cberrors.CodeOf(err) == cberrors.ErrCodeTimeout {
			return nil, err
		}
		return nil, cberrors.Wrap(cberrors.ErrCodeIngredientResolutionFailed,
			"a base ingredient does not exist in the cookbook", err)
	}

	summary := &Summary{
		Name:        name,
		Ingredients: make([]IngredientQuantity, 0, len(totals)),
	}

	for ingredientName, quantity := range totals {
		// The resolver only returns names it found as ingredients, so the
		// lookup cannot miss while the registry is write-once.
		ing, ok := s.registry.Get(ingredientName)
		if !ok {
			return nil, cberrors.New(cberrors.ErrCodeInternal,
				fmt.Sprintf("resolved ingredient %q vanished from the registry", ingredientName))
		}

		base, ok := ing.(*Ingredient)
		if !ok {
			return nil, cberrors.New(cberrors.ErrCodeInternal,
				fmt.Sprintf("resolved entry %q is not an ingredient", ingredientName))
		}

		summary.CookTime += quantity * base.CookTime
		summary.Ingredients = append(summary.Ingredients, IngredientQuantity{
			Name:     ingredientName,
			Quantity: quantity,
		})
	}

	sort.Slice(summary.Ingredients, func(i, j int) bool {
		return summary.Ingredients[i].Name < summary.Ingredients[j].Name
	})

	return summary, nil
}
