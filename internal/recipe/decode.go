package recipe

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/recipegen/internal/config"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// RequiredFields are the top-level keys every table entry must carry. The
// slot keys must be present but may be null.
var RequiredFields = []string{
	"recipe_id",
	"result",
	"display_name",
	"tier",
	"required_alchemy_level",
	"xp_reward",
	"result_count",
	"base_potency",
	"potency_per_level",
	"base_liquid",
	"primary_ingredient",
	"catalyst",
}

const fieldAdditional = "additional_ingredients"

// Label returns a human-readable name for a record: its recipe_id when it has
// a usable one, otherwise its position in the table.
func Label(rec config.Record) string {
	if v, ok := lookup(rec.Value, "recipe_id"); ok && !v.IsNull() && v.Type().Equals(cty.String) {
		if s := v.AsString(); s != "" {
			return s
		}
	}
	return fmt.Sprintf("#%d", rec.Index+1)
}

// Validate checks that every required key is present on the record.
func Validate(rec config.Record) error {
	for _, field := range RequiredFields {
		if _, ok := lookup(rec.Value, field); !ok {
			return &MissingFieldError{Recipe: Label(rec), Field: field}
		}
	}
	return nil
}

// Decode validates rec and converts it into a Definition.
func Decode(rec config.Record) (*Definition, error) {
	if err := Validate(rec); err != nil {
		return nil, err
	}

	d := &fieldDecoder{recipe: Label(rec), obj: rec.Value}
	def := &Definition{}
	d.scalar("recipe_id", &def.ID)
	d.scalar("display_name", &def.DisplayName)
	d.scalar("result", &def.Result)
	d.scalar("result_count", &def.ResultCount)
	d.scalar("tier", &def.Tier)
	d.scalar("required_alchemy_level", &def.RequiredAlchemyLevel)
	d.scalar("base_potency", &def.BasePotency)
	d.scalar("potency_per_level", &def.PotencyPerLevel)
	d.scalar("xp_reward", &def.XPReward)
	def.BaseLiquid = d.slot(RoleBase)
	def.PrimaryIngredient = d.slot(RolePrimary)
	def.SecondaryIngredient = d.slot(RoleSecondary)
	def.Catalyst = d.slot(RoleCatalyst)
	def.Additional = d.additional()
	if d.err != nil {
		return nil, d.err
	}

	if err := checkRecipeID(def.ID); err != nil {
		return nil, &InvalidFieldError{Recipe: d.recipe, Field: "recipe_id", Reason: err.Error()}
	}
	if def.Result == "" {
		return nil, &MissingFieldError{Recipe: d.recipe, Field: "result"}
	}
	return def, nil
}

// checkRecipeID rejects ids that cannot be used as a file name inside the
// output directory.
func checkRecipeID(id string) error {
	switch {
	case id == "":
		return fmt.Errorf("must not be empty")
	case strings.ContainsAny(id, `/\`):
		return fmt.Errorf("must not contain path separators")
	case id == "." || id == "..":
		return fmt.Errorf("must not be a relative path element")
	}
	return nil
}

// fieldDecoder decodes fields of one record, keeping the first error.
type fieldDecoder struct {
	recipe string
	obj    cty.Value
	err    error
}

func (d *fieldDecoder) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

func (d *fieldDecoder) scalar(field string, target any) {
	if d.err != nil {
		return
	}
	val, ok := lookup(d.obj, field)
	if !ok {
		d.fail(&MissingFieldError{Recipe: d.recipe, Field: field})
		return
	}
	decodeScalar(d, val, field, target)
}

func decodeScalar(d *fieldDecoder, val cty.Value, field string, target any) {
	if val.IsNull() {
		d.fail(&InvalidFieldError{Recipe: d.recipe, Field: field, Reason: "must not be null"})
		return
	}
	if err := gocty.FromCtyValue(val, target); err != nil {
		d.fail(&InvalidFieldError{Recipe: d.recipe, Field: field, Reason: err.Error()})
	}
}

// slot decodes a fixed slot. Null and empty objects are absent slots.
func (d *fieldDecoder) slot(role Role) Slot {
	if d.err != nil {
		return None()
	}
	val, ok := lookup(d.obj, role.Field())
	if !ok {
		return None()
	}
	p, present := d.payload(val, role.Field(), role.String())
	if !present {
		return None()
	}
	return Some(p)
}

func (d *fieldDecoder) additional() []Payload {
	if d.err != nil {
		return nil
	}
	val, ok := lookup(d.obj, fieldAdditional)
	if !ok || val.IsNull() {
		return nil
	}
	ty := val.Type()
	if !ty.IsTupleType() && !ty.IsListType() {
		d.fail(&InvalidFieldError{Recipe: d.recipe, Field: fieldAdditional, Reason: "must be a list, got " + ty.FriendlyName()})
		return nil
	}

	var out []Payload
	for i, item := range val.AsValueSlice() {
		field := fmt.Sprintf("%s[%d]", fieldAdditional, i)
		tag := RoleAdditional.String()
		if roleVal, ok := lookup(item, "role"); ok && !roleVal.IsNull() {
			decodeScalar(d, roleVal, field+".role", &tag)
			if d.err != nil {
				return nil
			}
		}
		p, present := d.payload(item, field, tag)
		if d.err != nil {
			return nil
		}
		if present {
			out = append(out, p)
		}
	}
	return out
}

// payload decodes an ingredient object. It reports false for null or empty
// objects, which stand for an unused slot.
func (d *fieldDecoder) payload(val cty.Value, field, tag string) (Payload, bool) {
	if val.IsNull() {
		return Payload{}, false
	}
	if !isObject(val) {
		d.fail(&InvalidFieldError{Recipe: d.recipe, Field: field, Reason: "must be an object, got " + val.Type().FriendlyName()})
		return Payload{}, false
	}
	if isEmpty(val) {
		return Payload{}, false
	}

	p := Payload{Count: 1, Tag: tag}
	idVal, ok := lookup(val, "id")
	if !ok || idVal.IsNull() {
		d.fail(&MissingFieldError{Recipe: d.recipe, Field: "id", Role: tag})
		return Payload{}, false
	}
	decodeScalar(d, idVal, field+".id", &p.ID)
	if d.err == nil && p.ID == "" {
		d.fail(&MissingFieldError{Recipe: d.recipe, Field: "id", Role: tag})
	}
	if countVal, ok := lookup(val, "count"); ok && !countVal.IsNull() {
		decodeScalar(d, countVal, field+".count", &p.Count)
		if d.err == nil && p.Count < 1 {
			d.fail(&InvalidFieldError{Recipe: d.recipe, Field: field + ".count", Reason: fmt.Sprintf("must be at least 1, got %d", p.Count)})
		}
	}
	if d.err != nil {
		return Payload{}, false
	}
	return p, true
}

// lookup returns the attribute or map element named key.
func lookup(v cty.Value, key string) (cty.Value, bool) {
	if v.IsNull() || !v.IsKnown() {
		return cty.NilVal, false
	}
	ty := v.Type()
	switch {
	case ty.IsObjectType():
		if !ty.HasAttribute(key) {
			return cty.NilVal, false
		}
		return v.GetAttr(key), true
	case ty.IsMapType():
		k := cty.StringVal(key)
		if v.HasIndex(k).True() {
			return v.Index(k), true
		}
	}
	return cty.NilVal, false
}

func isObject(v cty.Value) bool {
	ty := v.Type()
	return ty.IsObjectType() || ty.IsMapType()
}

func isEmpty(v cty.Value) bool {
	ty := v.Type()
	if ty.IsObjectType() {
		return len(ty.AttributeTypes()) == 0
	}
	return v.LengthInt() == 0
}
