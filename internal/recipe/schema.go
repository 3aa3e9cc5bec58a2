package recipe

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// TableDocument mirrors the JSON recipe table. It only exists to describe the
// document; Decode works on the raw table.
type TableDocument struct {
	Recipes []RecipeDocument `json:"recipes" jsonschema:"title=Recipes,description=Recipe definitions compiled one resource each"`
}

// RecipeDocument describes one entry of the recipes list.
type RecipeDocument struct {
	RecipeID             string  `json:"recipe_id" jsonschema:"title=Recipe id,minLength=1,description=Unique id; also the output file name"`
	DisplayName          string  `json:"display_name"`
	Result               string  `json:"result" jsonschema:"description=Identifier of the produced potion or item resource"`
	ResultCount          int     `json:"result_count"`
	Tier                 int     `json:"tier"`
	RequiredAlchemyLevel int     `json:"required_alchemy_level"`
	BasePotency          float64 `json:"base_potency"`
	PotencyPerLevel      float64 `json:"potency_per_level"`
	XPReward             int     `json:"xp_reward"`

	BaseLiquid          *PayloadDocument `json:"base_liquid" jsonschema:"description=Base liquid slot; null when unused"`
	PrimaryIngredient   *PayloadDocument `json:"primary_ingredient" jsonschema:"description=Primary ingredient slot; null when unused"`
	SecondaryIngredient *PayloadDocument `json:"secondary_ingredient,omitempty" jsonschema:"description=Secondary ingredient slot; null when unused"`
	Catalyst            *PayloadDocument `json:"catalyst" jsonschema:"description=Catalyst slot; null when unused"`

	AdditionalIngredients []PayloadDocument `json:"additional_ingredients,omitempty" jsonschema:"description=Extra ingredients in emission order"`
}

// PayloadDocument describes an ingredient payload.
type PayloadDocument struct {
	ID    string `json:"id" jsonschema:"minLength=1,description=Identifier of an item resource"`
	Count int    `json:"count,omitempty" jsonschema:"minimum=1,default=1"`
	Role  string `json:"role,omitempty" jsonschema:"description=Role tag for additional ingredients,default=additional"`
}

// Schema returns the JSON Schema of the recipe table document. Unknown keys
// are allowed because Decode ignores them.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{AllowAdditionalProperties: true}
	s := r.Reflect(&TableDocument{})
	if err := patchSlots(s); err != nil {
		return nil, err
	}
	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode recipe table schema: %w", err)
	}
	return out, nil
}

// patchSlots lets every ingredient position hold null or {} as well as a
// payload, which is what Decode treats as an unused slot.
func patchSlots(s *jsonschema.Schema) error {
	doc, ok := s.Definitions["RecipeDocument"]
	if !ok || doc.Properties == nil {
		return fmt.Errorf("recipe table schema has no RecipeDocument definition")
	}
	for _, role := range FixedRoles {
		prop, err := property(doc, role.Field())
		if err != nil {
			return err
		}
		doc.Properties.Set(role.Field(), absentable(prop))
	}

	list, err := property(doc, fieldAdditional)
	if err != nil {
		return err
	}
	if list.Items == nil {
		return fmt.Errorf("recipe table schema: %s has no item schema", fieldAdditional)
	}
	list.Items = absentable(list.Items)
	desc := list.Description
	list.Description = ""
	doc.Properties.Set(fieldAdditional, &jsonschema.Schema{
		Description: desc,
		OneOf:       []*jsonschema.Schema{list, {Type: "null"}},
	})
	return nil
}

func property(doc *jsonschema.Schema, name string) (*jsonschema.Schema, error) {
	v, ok := doc.Properties.Get(name)
	if !ok {
		return nil, fmt.Errorf("recipe table schema has no %q property", name)
	}
	prop, ok := v.(*jsonschema.Schema)
	if !ok {
		return nil, fmt.Errorf("recipe table schema: %q is a %T", name, v)
	}
	return prop, nil
}

func absentable(payload *jsonschema.Schema) *jsonschema.Schema {
	desc := payload.Description
	payload.Description = ""
	return &jsonschema.Schema{
		Description: desc,
		OneOf: []*jsonschema.Schema{
			payload,
			{Type: "null"},
			{Type: "object", AdditionalProperties: jsonschema.FalseSchema},
		},
	}
}
