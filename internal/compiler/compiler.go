package compiler

import (
	"context"
	"fmt"

	"github.com/specialistvlad/recipegen/internal/ctxlog"
	"github.com/specialistvlad/recipegen/internal/recipe"
	"github.com/specialistvlad/recipegen/internal/registry"
	"github.com/specialistvlad/recipegen/internal/resolver"
	"github.com/specialistvlad/recipegen/internal/tres"
)

// Resolver maps a symbolic identifier to a res:// path.
type Resolver interface {
	Resolve(id string) (string, error)
}

// Options configures the emitted documents.
type Options struct {
	ScriptPath  string
	ScriptClass string
	// IngredientNamespace is the logical prefix every ingredient must resolve under.
	IngredientNamespace string
}

// DefaultOptions returns the PotionRecipeData settings.
func DefaultOptions() Options {
	return Options{
		ScriptPath:          "res://scripts/data/potion_recipe_data.gd",
		ScriptClass:         "PotionRecipeData",
		IngredientNamespace: resolver.ItemsPrefix,
	}
}

const (
	kindScript   = "Script"
	kindResource = "Resource"
)

// Compiler builds recipe documents.
type Compiler struct {
	resolver Resolver
	opts     Options
}

// New creates a Compiler resolving identifiers through r.
func New(r Resolver, opts Options) *Compiler {
	return &Compiler{resolver: r, opts: opts}
}

// Emit compiles def with a fresh registry and renders the document.
func (c *Compiler) Emit(ctx context.Context, def *recipe.Definition) (string, error) {
	doc, err := c.Compile(ctx, def, registry.New())
	if err != nil {
		return "", err
	}
	return doc.String(), nil
}

// Compile builds the document for def, registering its references with reg.
// reg must be empty and must not be reused for another recipe.
func (c *Compiler) Compile(ctx context.Context, def *recipe.Definition, reg *registry.Registry) (*tres.Document, error) {
	logger := ctxlog.FromContext(ctx).With("recipe_id", def.ID)

	scriptID := reg.Register(kindScript, c.opts.ScriptPath)

	resultPath, err := c.resolver.Resolve(def.Result)
	if err != nil {
		return nil, fmt.Errorf("recipe %s: result: %w", def.ID, err)
	}
	resultID := reg.Register(kindResource, resultPath)

	ingredients, err := c.Assemble(def)
	if err != nil {
		return nil, err
	}

	refs := make([]tres.Value, 0, len(ingredients))
	counts := make([]int, 0, len(ingredients))
	slots := make(map[recipe.Role]int, len(recipe.FixedRoles))
	for _, ing := range ingredients {
		id := reg.Register(kindResource, ing.Path)
		refs = append(refs, tres.Ref(id))
		counts = append(counts, ing.Count)
		if ing.Role.Fixed() {
			slots[ing.Role] = id
		}
	}
	logger.Debug("References registered.", "ext_resources", reg.Len(), "ingredients", len(ingredients))

	doc := &tres.Document{
		Type:        "Resource",
		ScriptClass: c.opts.ScriptClass,
		LoadSteps:   reg.LoadSteps(),
	}
	for _, e := range reg.Entries() {
		doc.ExtResources = append(doc.ExtResources, tres.ExtResource{Type: e.Kind, Path: e.Path, ID: e.ID})
	}

	doc.Set("script", tres.Ref(scriptID))
	doc.Set("id", tres.String(def.ID))
	doc.Set("display_name", tres.String(def.DisplayName))
	doc.Set("result", tres.Ref(resultID))
	doc.Set("result_count", tres.Int(def.ResultCount))
	doc.Set("ingredients", tres.Array(refs...))
	doc.Set("ingredient_counts", tres.Ints(counts))
	doc.Set("tier", tres.Int(def.Tier))
	doc.Set("required_alchemy_level", tres.Int(def.RequiredAlchemyLevel))
	doc.Set("base_potency", tres.Float(def.BasePotency))
	doc.Set("potency_per_level", tres.Float(def.PotencyPerLevel))
	doc.Set("xp_reward", tres.Int(def.XPReward))
	for _, role := range recipe.FixedRoles {
		id, ok := slots[role]
		doc.Set(role.Field(), tres.OptionalRef(id, ok))
	}
	return doc, nil
}
