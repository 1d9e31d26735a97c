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
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/devdonalds/cookbook/pkg/defaults"
	cberrors "github.com/devdonalds/cookbook/pkg/errors"
	"github.com/devdonalds/cookbook/pkg/serializer"
	"github.com/devdonalds/cookbook/pkg/server"
	gocache "github.com/patrickmn/go-cache"
)

// maxEntryPayloadBytes bounds entry creation request bodies.
const maxEntryPayloadBytes = 1 << 20

// Handler exposes the cookbook over HTTP. Summary responses are cached
// with a TTL; the cache is flushed on every successful entry insert since
// a new entry can change the resolvability of stored recipes.
type Handler struct {
	registry   *Registry
	validator  *Validator
	summarizer *Summarizer
	cache      *gocache.Cache
}

// NewHandler creates a Handler serving the given registry.
func NewHandler(registry *Registry) *Handler {
	return &Handler{
		registry:   registry,
		validator:  NewValidator(registry),
		summarizer: NewSummarizer(registry),
		cache:      gocache.New(defaults.SummaryCacheTTL, defaults.SummaryCacheSweepInterval),
	}
}

// Registry returns the registry the handler serves.
func (h *Handler) Registry() *Registry {
	return h.registry
}

// Validator returns the handler's validator, shared with seed loading.
func (h *Handler) Validator() *Validator {
	return h.validator
}

// Routes returns the handler's path mapping for server registration.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/entries": h.HandleEntries,
		"/v1/summary": h.HandleSummary,
		"/v1/parse":   h.HandleParse,
	}
}

// HandleEntries processes entry creation requests (POST /v1/entries).
// The stored entry is echoed back on success. Errors are returned in a
// structured format with the validation taxonomy code.
func (h *Handler) HandleEntries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		server.WriteError(w, r, http.StatusMethodNotAllowed, server.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{http.MethodPost},
			})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.EntryHandlerTimeout)
	defer cancel()
	r = r.WithContext(ctx)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxEntryPayloadBytes))
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, server.ErrCodeInvalidRequest,
			"Unable to read request body", false, map[string]any{"error": err.Error()})
		return
	}

	entry, err := h.validator.AddJSON(body)
	if err != nil {
		code := cberrors.CodeOf(err)
		entryRejections.WithLabelValues(string(code)).Inc()
		slog.Debug("entry rejected",
			"code", code,
			"requestID", server.RequestIDFromContext(r.Context()),
		)
		server.WriteStructuredError(w, r, err)
		return
	}

	entriesCreated.WithLabelValues(string(entry.Type())).Inc()

	// A new entry can satisfy previously unresolvable references.
	h.cache.Flush()

	slog.Debug("entry accepted",
		"name", entry.EntryName(),
		"type", entry.Type(),
		"entries", h.registry.Len(),
	)

	serializer.RespondJSON(w, http.StatusOK, entryEnvelope(entry))
}

// HandleSummary processes recipe summary requests (GET /v1/summary?name=).
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, server.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{http.MethodGet},
			})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.SummaryHandlerTimeout)
	defer cancel()

	name := r.URL.Query().Get("name")
	if name == "" {
		server.WriteError(w, r, http.StatusBadRequest, server.ErrCodeInvalidRequest,
			"Query parameter 'name' is required", false, nil)
		return
	}

	if cached, ok := h.cache.Get(name); ok {
		summaryCacheHits.Inc()
		serializer.RespondJSON(w, http.StatusOK, cached)
		return
	}
	summaryCacheMisses.Inc()

	start := time.Now()
	summary, err := h.summarizer.Summarize(ctx, name)
	summaryDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		slog.Debug("summary failed",
			"name", name,
			"code", cberrors.CodeOf(err),
			"requestID", server.RequestIDFromContext(r.Context()),
		)
		server.WriteStructuredError(w, r, err)
		return
	}

	h.cache.SetDefault(name, summary)
	serializer.RespondJSON(w, http.StatusOK, summary)
}

// HandleParse processes name normalization requests (POST /v1/parse).
// The request body carries {"input": "..."}; the response echoes the
// cleaned name as {"msg": "..."}.
func (h *Handler) HandleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		server.WriteError(w, r, http.StatusMethodNotAllowed, server.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{http.MethodPost},
			})
		return
	}

	var req struct {
		Input string `json:"input"`
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxEntryPayloadBytes)).Decode(&req); err != nil {
		server.WriteError(w, r, http.StatusBadRequest, server.ErrCodeInvalidRequest,
			"Invalid request body", false, map[string]any{"error": err.Error()})
		return
	}

	parsed, err := NormalizeName(req.Input)
	if err != nil {
		server.WriteStructuredError(w, r, err)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, map[string]string{"msg": parsed})
}

// entryEnvelope adds the type discriminator when echoing a stored entry.
func entryEnvelope(e Entry) any {
	switch v := e.(type) {
	case *Ingredient:
		return struct {
			Type EntryType `json:"type"`
			*Ingredient
		}{EntryTypeIngredient, v}
	case *Recipe:
		return struct {
			Type EntryType `json:"type"`
			*Recipe
		}{EntryTypeRecipe, v}
	default:
		return e
	}
}
