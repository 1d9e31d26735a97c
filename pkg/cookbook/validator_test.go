package cookbook

import (
	"encoding/json"
	"testing"

	cberrors "github.com/devdonalds/cookbook/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rejectionCode(t *testing.T, err error) cberrors.ErrorCode {
	t.Helper()
	var se *cberrors.StructuredError
	require.ErrorAs(t, err, &se)
	return se.Code
}

func TestAddJSONIngredient(t *testing.T) {
	v := NewValidator(NewRegistry())

	entry, err := v.AddJSON([]byte(`{"type":"ingredient","name":"Egg","cookTime":10}`))
	require.NoError(t, err)

	ing, ok := entry.(*Ingredient)
	require.True(t, ok, "expected *Ingredient, got %T", entry)
	assert.Equal(t, "Egg", ing.Name)
	assert.Equal(t, int64(10), ing.CookTime)
}

func TestAddJSONRecipe(t *testing.T) {
	v := NewValidator(NewRegistry())

	entry, err := v.AddJSON([]byte(`{
		"type": "recipe",
		"name": "Pasta",
		"requiredItems": [
			{"name": "Dough", "quantity": 1},
			{"name": "Egg", "quantity": 3}
		]
	}`))
	require.NoError(t, err)

	rec, ok := entry.(*Recipe)
	require.True(t, ok, "expected *Recipe, got %T", entry)
	assert.Equal(t, "Pasta", rec.Name)
	require.Len(t, rec.RequiredItems, 2)
	assert.Equal(t, RequiredItem{Name: "Dough", Quantity: 1}, rec.RequiredItems[0])
	assert.Equal(t, RequiredItem{Name: "Egg", Quantity: 3}, rec.RequiredItems[1])
}

func TestAddJSONRejections(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    cberrors.ErrorCode
	}{
		{
			name:    "not json",
			payload: `{{`,
			want:    cberrors.ErrCodeInvalidRequest,
		},
		{
			name:    "null payload",
			payload: `null`,
			want:    cberrors.ErrCodeInvalidRequest,
		},
		{
			name:    "missing type",
			payload: `{"name":"Egg","cookTime":1}`,
			want:    cberrors.ErrCodeInvalidType,
		},
		{
			name:    "bogus type",
			payload: `{"type":"potion","name":"Egg","cookTime":1}`,
			want:    cberrors.ErrCodeInvalidType,
		},
		{
			name:    "non-string type",
			payload: `{"type":7,"name":"Egg","cookTime":1}`,
			want:    cberrors.ErrCodeInvalidType,
		},
		{
			name:    "missing name",
			payload: `{"type":"ingredient","cookTime":1}`,
			want:    cberrors.ErrCodeInvalidName,
		},
		{
			name:    "empty name",
			payload: `{"type":"ingredient","name":"","cookTime":1}`,
			want:    cberrors.ErrCodeInvalidName,
		},
		{
			name:    "non-string name",
			payload: `{"type":"ingredient","name":42,"cookTime":1}`,
			want:    cberrors.ErrCodeInvalidName,
		},
		{
			name:    "missing cookTime",
			payload: `{"type":"ingredient","name":"Egg"}`,
			want:    cberrors.ErrCodeInvalidCookTime,
		},
		{
			name:    "negative cookTime",
			payload: `{"type":"ingredient","name":"Egg","cookTime":-1}`,
			want:    cberrors.ErrCodeInvalidCookTime,
		},
		{
			name:    "fractional cookTime",
			payload: `{"type":"ingredient","name":"Egg","cookTime":1.5}`,
			want:    cberrors.ErrCodeInvalidCookTime,
		},
		{
			name:    "string cookTime",
			payload: `{"type":"ingredient","name":"Egg","cookTime":"10"}`,
			want:    cberrors.ErrCodeInvalidCookTime,
		},
		{
			name:    "missing requiredItems",
			payload: `{"type":"recipe","name":"Pasta"}`,
			want:    cberrors.ErrCodeInvalidRequiredItems,
		},
		{
			name:    "requiredItems not a list",
			payload: `{"type":"recipe","name":"Pasta","requiredItems":{"name":"Egg"}}`,
			want:    cberrors.ErrCodeInvalidRequiredItems,
		},
		{
			name:    "required item not an object",
			payload: `{"type":"recipe","name":"Pasta","requiredItems":["Egg"]}`,
			want:    cberrors.ErrCodeInvalidRequiredItem,
		},
		{
			name:    "required item missing name",
			payload: `{"type":"recipe","name":"Pasta","requiredItems":[{"quantity":1}]}`,
			want:    cberrors.ErrCodeInvalidRequiredItem,
		},
		{
			name:    "required item empty name",
			payload: `{"type":"recipe","name":"Pasta","requiredItems":[{"name":"","quantity":1}]}`,
			want:    cberrors.ErrCodeInvalidRequiredItem,
		},
		{
			name:    "required item missing quantity",
			payload: `{"type":"recipe","name":"Pasta","requiredItems":[{"name":"Egg"}]}`,
			want:    cberrors.ErrCodeInvalidRequiredItem,
		},
		{
			name:    "required item fractional quantity",
			payload: `{"type":"recipe","name":"Pasta","requiredItems":[{"name":"Egg","quantity":0.5}]}`,
			want:    cberrors.ErrCodeInvalidRequiredItem,
		},
		{
			name: "duplicate required item name",
			payload: `{"type":"recipe","name":"Pasta","requiredItems":[
				{"name":"Egg","quantity":1},{"name":"Egg","quantity":2}]}`,
			want: cberrors.ErrCodeDuplicateRequiredItemName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewRegistry()
			v := NewValidator(registry)

			_, err := v.AddJSON([]byte(tt.payload))
			require.Error(t, err)
			assert.Equal(t, tt.want, rejectionCode(t, err))

			// No partial insert: any rejection leaves the registry empty.
			assert.Equal(t, 0, registry.Len())
		})
	}
}

func TestAddDuplicateName(t *testing.T) {
	registry := NewRegistry()
	v := NewValidator(registry)

	_, err := v.AddJSON([]byte(`{"type":"ingredient","name":"Egg","cookTime":10}`))
	require.NoError(t, err)

	_, err = v.AddJSON([]byte(`{"type":"ingredient","name":"Egg","cookTime":5}`))
	require.Error(t, err)
	assert.Equal(t, cberrors.ErrCodeDuplicateName, rejectionCode(t, err))

	// Duplicate rejection applies across variants too.
	_, err = v.AddJSON([]byte(`{"type":"recipe","name":"Egg","requiredItems":[]}`))
	require.Error(t, err)
	assert.Equal(t, cberrors.ErrCodeDuplicateName, rejectionCode(t, err))

	assert.Equal(t, 1, registry.Len())
	got, _ := registry.Get("Egg")
	assert.Equal(t, int64(10), got.(*Ingredient).CookTime)
}

func TestAddCheckOrder(t *testing.T) {
	registry := NewRegistry()
	v := NewValidator(registry)

	_, err := v.AddJSON([]byte(`{"type":"ingredient","name":"Egg","cookTime":10}`))
	require.NoError(t, err)

	// Duplicate name is checked before requiredItems, so a duplicate
	// recipe with a broken requiredItems field reports DUPLICATE_NAME.
	_, err = v.AddJSON([]byte(`{"type":"recipe","name":"Egg","requiredItems":"broken"}`))
	require.Error(t, err)
	assert.Equal(t, cberrors.ErrCodeDuplicateName, rejectionCode(t, err))

	// An invalid cook time is checked before the duplicate name.
	_, err = v.AddJSON([]byte(`{"type":"ingredient","name":"Egg","cookTime":-5}`))
	require.Error(t, err)
	assert.Equal(t, cberrors.ErrCodeInvalidCookTime, rejectionCode(t, err))
}

func TestAddPermissiveness(t *testing.T) {
	// The validator deliberately does not require positive quantities or
	// a non-empty requiredItems list, and stored references may point at
	// entries that do not exist yet.
	registry := NewRegistry()
	v := NewValidator(registry)

	_, err := v.AddJSON([]byte(`{"type":"recipe","name":"Empty","requiredItems":[]}`))
	require.NoError(t, err)

	_, err = v.AddJSON([]byte(`{
		"type":"recipe","name":"Odd",
		"requiredItems":[{"name":"Ghost","quantity":0},{"name":"AntiMatter","quantity":-2}]
	}`))
	require.NoError(t, err)

	assert.Equal(t, 2, registry.Len())
}

func TestAddRoundTrip(t *testing.T) {
	registry := NewRegistry()
	v := NewValidator(registry)

	payload := map[string]any{
		"type": "recipe",
		"name": "Pasta",
		"requiredItems": []any{
			map[string]any{"name": "Dough", "quantity": json.Number("1")},
			map[string]any{"name": "Egg", "quantity": json.Number("3")},
		},
	}

	entry, err := v.Add(payload)
	require.NoError(t, err)

	stored, ok := registry.Get("Pasta")
	require.True(t, ok)
	assert.Same(t, entry, stored)

	rec := stored.(*Recipe)
	assert.Equal(t, []RequiredItem{
		{Name: "Dough", Quantity: 1},
		{Name: "Egg", Quantity: 3},
	}, rec.RequiredItems)
}

func TestIntValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int64
		ok   bool
	}{
		{"json number", json.Number("42"), 42, true},
		{"json fraction", json.Number("4.2"), 0, false},
		{"json exponent", json.Number("1e3"), 0, false},
		{"int", int(7), 7, true},
		{"int64", int64(-7), -7, true},
		{"uint64", uint64(7), 7, true},
		{"uint64 overflow", uint64(1) << 63, 0, false},
		{"integral float", float64(3), 3, true},
		{"fractional float", 3.5, 0, false},
		{"string", "3", 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := intValue(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Errorf("intValue(%v) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestAddJSONUnknownReferenceAllowed(t *testing.T) {
	v := NewValidator(NewRegistry())

	// References are validated at resolution time, not insert time.
	_, err := v.AddJSON([]byte(`{
		"type":"recipe","name":"Mystery",
		"requiredItems":[{"name":"NotYetCreated","quantity":1}]
	}`))
	if err != nil {
		t.Fatalf("expected unknown references to be accepted, got %v", err)
	}
}
