package recipe_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/specialistvlad/recipegen/internal/recipe"
	"github.com/specialistvlad/recipegen/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileSchema(t *testing.T) *jsonschema.Schema {
	t.Helper()
	out, err := recipe.Schema()
	require.NoError(t, err)
	s, err := jsonschema.CompileString("recipe_table.schema.json", string(out))
	require.NoError(t, err, string(out))
	return s
}

func validate(t *testing.T, s *jsonschema.Schema, table string) error {
	t.Helper()
	var doc any
	require.NoError(t, json.Unmarshal([]byte(table), &doc))
	return s.Validate(doc)
}

func TestSchemaAcceptsHealingDraught(t *testing.T) {
	t.Parallel()
	s := compileSchema(t)

	assert.NoError(t, validate(t, s, testutil.HealingDraughtJSON))
}

func TestSchemaMatchesDecode(t *testing.T) {
	t.Parallel()
	s := compileSchema(t)

	testCases := []struct {
		name  string
		old   string
		new   string
		valid bool
	}{
		{name: "empty slot object", old: `"catalyst": null`, new: `"catalyst": {}`, valid: true},
		{name: "populated catalyst", old: `"catalyst": null`, new: `"catalyst": {"id": "ember_salt", "count": 3}`, valid: true},
		{name: "secondary slot null", old: `"catalyst": null`, new: `"catalyst": null, "secondary_ingredient": null`, valid: true},
		{name: "additional ingredients", old: `"catalyst": null`, new: `"catalyst": null, "additional_ingredients": [{"id": "moonpetal", "role": "stabilizer"}, null, {}]`, valid: true},
		{name: "additional ingredients null", old: `"catalyst": null`, new: `"catalyst": null, "additional_ingredients": null`, valid: true},
		{name: "unknown keys ignored", old: `"tier": 1,`, new: `"tier": 1, "notes": "first aid",`, valid: true},
		{name: "slot without id", old: `"catalyst": null`, new: `"catalyst": {"count": 2}`},
		{name: "slot with zero count", old: `"catalyst": null`, new: `"catalyst": {"id": "ember_salt", "count": 0}`},
		{name: "slot not an object", old: `"catalyst": null`, new: `"catalyst": "ember_salt"`},
		{name: "missing required field", old: `"xp_reward": 10,`, new: ``},
		{name: "missing catalyst key", old: `,
      "catalyst": null`, new: ``},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			table := strings.Replace(testutil.HealingDraughtJSON, tc.old, tc.new, 1)
			require.NotEqual(t, testutil.HealingDraughtJSON, table)

			err := validate(t, s, table)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestSchemaRejectsNonListRecipes(t *testing.T) {
	t.Parallel()
	s := compileSchema(t)

	assert.Error(t, validate(t, s, `{"recipes": {}}`))
	assert.Error(t, validate(t, s, `{}`))
}
