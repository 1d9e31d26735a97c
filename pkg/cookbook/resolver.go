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

	"github.com/devdonalds/cookbook/pkg/defaults"
	cberrors "github.com/devdonalds/cookbook/pkg/errors"
)

// Resolver flattens a recipe's reference graph into base-ingredient totals.
type Resolver struct {
	registry *Registry
}

// NewResolver creates a Resolver reading from the given registry.
func NewResolver(registry *Registry) *Resolver {
	return &Resolver{registry: registry}
}

// Resolve expands the named entry depth-first with the given multiplier and
// returns the total quantity of every base ingredient reached. Quantities
// for an ingredient reached via different sub-paths are summed.
//
// Any failure at any depth aborts the whole resolution; no partial mapping
// is returned. A name missing from the registry yields UNKNOWN_REFERENCE,
// and a recipe that directly or indirectly requires itself yields
// CYCLIC_REFERENCE instead of recursing forever.
func (r *Resolver) Resolve(ctx context.Context, name string, multiplier int64) (map[string]int64, error) {
	totals := make(map[string]int64)
	if err := r.expand(ctx, name, multiplier, totals, make(map[string]bool), 0); err != nil {
		return nil, err
	}
	return totals, nil
}

// expand accumulates base-ingredient quantities for name into totals.
// path holds the names currently being expanded on the active chain.
func (r *Resolver) expand(ctx context.Context, name string, multiplier int64, totals map[string]int64, path map[string]bool, depth int) error {
	if err := ctx.Err(); err != nil {
		return cberrors.Wrap(cberrors.ErrCodeTimeout, "resolution aborted", err)
	}

	if depth > defaults.MaxResolutionDepth {
		return cberrors.NewWithContext(cberrors.ErrCodeCyclicReference,
			fmt.Sprintf("expansion depth limit (%d) reached at %q", defaults.MaxResolutionDepth, name),
			map[string]any{"name": name, "depth": depth})
	}

	entry, ok := r.registry.Get(name)
	if !ok {
		return cberrors.NewWithContext(cberrors.ErrCodeUnknownReference,
			fmt.Sprintf("%q does not exist in the cookbook", name),
			map[string]any{"name": name})
	}

	switch e := entry.(type) {
	case *Ingredient:
		totals[name] += multiplier
		return nil

	case *Recipe:
		if path[name] {
			return cberrors.NewWithContext(cberrors.ErrCodeCyclicReference,
				fmt.Sprintf("recipe %q requires itself", name),
				map[string]any{"name": name})
		}
		path[name] = true

		for _, item := range e.RequiredItems {
			if err := r.expand(ctx, item.Name, multiplier*item.Quantity, totals, path, depth+1); err != nil {
				return err
			}
		}

		delete(path, name)
		return nil

	default:
		return cberrors.New(cberrors.ErrCodeInternal,
			fmt.Sprintf("unknown entry variant %T for %q", entry, name))
	}
}
