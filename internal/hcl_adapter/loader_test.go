package hcl_adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/recipegen/internal/recipe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func writeTable(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadJSONTable(t *testing.T) {
	t.Parallel()
	path := writeTable(t, "table.json", `{
  "version": 2,
  "recipes": [
    {"recipe_id": "a", "tier": 1, "catalyst": null, "base_liquid": {"id": "water", "count": 2}},
    {"recipe_id": "b", "additional_ingredients": [{"id": "x"}, {"id": "y", "role": "garnish"}]}
  ]
}`)

	table, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, table.Records, 2)
	assert.Equal(t, path, table.Source)

	first := table.Records[0]
	assert.Equal(t, 0, first.Index)
	assert.Equal(t, "a", first.Value.GetAttr("recipe_id").AsString())
	assert.True(t, first.Value.GetAttr("catalyst").IsNull())
	base := first.Value.GetAttr("base_liquid")
	assert.True(t, base.GetAttr("count").Equals(cty.NumberIntVal(2)).True())

	second := table.Records[1]
	assert.Equal(t, 1, second.Index)
	assert.Equal(t, 2, second.Value.GetAttr("additional_ingredients").LengthInt())
}

func TestLoadHCLTable(t *testing.T) {
	t.Parallel()
	path := writeTable(t, "table.hcl", `
# Native syntax tables allow comments.
recipes = [
  {
    recipe_id          = "healing_draught"
    primary_ingredient = { id = "red_herb", count = 2 }
    catalyst           = null
  },
]
`)

	table, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, table.Records, 1)

	rec := table.Records[0].Value
	assert.Equal(t, "healing_draught", rec.GetAttr("recipe_id").AsString())
	assert.True(t, rec.GetAttr("catalyst").IsNull())
}

func TestLoadMalformedTables(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		file    string
		content string
		reason  string
	}{
		{name: "recipes is an object", file: "t.json", content: `{"recipes": {"recipe_id": "a"}}`, reason: "'recipes' must be a list"},
		{name: "recipes missing", file: "t.json", content: `{"potions": []}`, reason: "'recipes' must be a list"},
		{name: "recipes null", file: "t.json", content: `{"recipes": null}`, reason: "'recipes' must be a list"},
		{name: "entry is a string", file: "t.json", content: `{"recipes": ["a"]}`, reason: "recipe entry #1 must be an object"},
		{name: "invalid json", file: "t.json", content: `{"recipes": [`, reason: "failed to parse recipe table"},
		{name: "unsupported extension", file: "t.yaml", content: `recipes: []`, reason: "unsupported table format"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeTable(t, tc.file, tc.content)
			_, err := NewLoader().Load(context.Background(), path)

			var malformed *recipe.MalformedTableError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, path, malformed.Path)
			assert.Contains(t, malformed.Reason, tc.reason)
		})
	}
}

func TestLoadMissingTable(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "missing.json")
	_, err := NewLoader().Load(context.Background(), path)

	var malformed *recipe.MalformedTableError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "recipe table not found", malformed.Reason)
}

func TestLoadEmptyRecipes(t *testing.T) {
	t.Parallel()
	path := writeTable(t, "t.json", `{"recipes": []}`)
	table, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, table.Records)
}
