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

// EntryType discriminates the two entry variants.
type EntryType string

const (
	// EntryTypeIngredient is a base item with a fixed cook time.
	EntryTypeIngredient EntryType = "ingredient"
	// EntryTypeRecipe is a composite item with required sub-items.
	EntryTypeRecipe EntryType = "recipe"
)

// IsValid reports whether the entry type is one of the known variants.
func (t EntryType) IsValid() bool {
	return t == EntryTypeIngredient || t == EntryTypeRecipe
}

// Entry is a named cookbook item, either an *Ingredient or a *Recipe.
type Entry interface {
	// EntryName returns the unique registry key.
	EntryName() string
	// Type returns the variant discriminator.
	Type() EntryType
}

// Ingredient is a base item resolution bottoms out on.
type Ingredient struct {
	Name     string `json:"name" yaml:"name"`
	CookTime int64  `json:"cookTime" yaml:"cookTime"`
}

// EntryName implements Entry.
func (i *Ingredient) EntryName() string { return i.Name }

// Type implements Entry.
func (i *Ingredient) Type() EntryType { return EntryTypeIngredient }

// RequiredItem references another entry by name with a quantity.
// The reference is resolved at query time; it may name an entry that does
// not exist yet.
type RequiredItem struct {
	Name     string `json:"name" yaml:"name"`
	Quantity int64  `json:"quantity" yaml:"quantity"`
}

// Recipe is a composite entry expanded recursively during resolution.
type Recipe struct {
	Name          string         `json:"name" yaml:"name"`
	RequiredItems []RequiredItem `json:"requiredItems" yaml:"requiredItems"`
}

// EntryName implements Entry.
func (r *Recipe) EntryName() string { return r.Name }

// Type implements Entry.
func (r *Recipe) Type() EntryType { return EntryTypeRecipe }

// IngredientQuantity is one line of a recipe summary.
type IngredientQuantity struct {
	Name     string `json:"name" yaml:"name"`
	Quantity int64  `json:"quantity" yaml:"quantity"`
}

// Summary is the flattened view of a recipe: its base ingredients and the
// total cook time across them.
type Summary struct {
	Name        string               `json:"name" yaml:"name"`
	CookTime    int64                `json:"cookTime" yaml:"cookTime"`
	Ingredients []IngredientQuantity `json:"ingredients" yaml:"ingredients"`
}
