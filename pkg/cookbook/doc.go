// Package cookbook implements the cookbook domain: a registry of named
// entries (ingredients and recipes), payload validation, recursive
// ingredient resolution, and recipe summaries.
//
// # Model
//
// An Entry is either an Ingredient (a base item with a fixed cook time) or
// a Recipe (an ordered list of required items referencing other entries by
// name). Entry names are unique and entries are write-once: the registry
// exposes no update or delete.
//
// Required items are name references resolved at query time, not stored
// pointers, so a recipe may be added before the entries it requires exist.
// Resolution reports UNKNOWN_REFERENCE when an expansion reaches a name
// that is still missing.
//
// # Resolution
//
// Resolve expands a recipe depth-first, multiplying quantities down the
// reference chain and summing per-ingredient totals across sub-paths.
// A visited-path guard aborts with CYCLIC_REFERENCE when a recipe directly
// or indirectly requires itself.
//
// # Failure semantics
//
// Every failure is a structured error with a taxonomy code (see pkg/errors)
// and leaves the registry unmodified. Validation is fail-fast: the first
// failing check wins.
package cookbook
