package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAssignsDenseHandles(t *testing.T) {
	t.Parallel()
	r := New()

	assert.Equal(t, 1, r.Register("Script", "res://scripts/data/potion_recipe_data.gd"))
	assert.Equal(t, 2, r.Register("Resource", "res://resources/potions/healing_potion.tres"))
	assert.Equal(t, 3, r.Register("Resource", "res://resources/items/water.tres"))
	assert.Equal(t, 4, r.Register("Resource", "res://resources/items/red_herb.tres"))

	require.Equal(t, 4, r.Len())
	assert.Equal(t, 5, r.LoadSteps())
	for i, e := range r.Entries() {
		assert.Equal(t, i+1, e.ID)
	}
}

func TestRegisterDeduplicatesByPath(t *testing.T) {
	t.Parallel()
	r := New()
	first := r.Register("Resource", "res://resources/items/water.tres")
	again := r.Register("Script", "res://resources/items/water.tres")

	assert.Equal(t, first, again)
	require.Len(t, r.Entries(), 1)
	assert.Equal(t, Entry{ID: 1, Kind: "Resource", Path: "res://resources/items/water.tres"}, r.Entries()[0])
	assert.Equal(t, 2, r.LoadSteps())
}

func TestEntriesReturnsCopy(t *testing.T) {
	t.Parallel()
	r := New()
	r.Register("Resource", "a")
	entries := r.Entries()
	entries[0].Path = "mutated"

	assert.Equal(t, "a", r.Entries()[0].Path)
}

func TestEmptyRegistry(t *testing.T) {
	t.Parallel()
	r := New()
	assert.Empty(t, r.Entries())
	assert.Equal(t, 1, r.LoadSteps())
}
