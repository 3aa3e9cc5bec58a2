package compiler

import (
	"fmt"

	"github.com/specialistvlad/recipegen/internal/recipe"
	"github.com/specialistvlad/recipegen/internal/resolver"
)

// Assemble resolves the ingredients of def in emission order: the fixed
// slots, then the additional ingredients.
func (c *Compiler) Assemble(def *recipe.Definition) ([]recipe.IngredientEntry, error) {
	var entries []recipe.IngredientEntry
	bound := make(map[recipe.Role]bool, len(recipe.FixedRoles))

	add := func(role recipe.Role, p recipe.Payload) error {
		if role.Fixed() {
			if bound[role] {
				return &recipe.InvalidFieldError{
					Recipe: def.ID,
					Field:  role.Field(),
					Reason: fmt.Sprintf("slot is already bound, additional ingredient %q cannot claim it", p.ID),
				}
			}
			bound[role] = true
		}
		if p.ID == "" {
			return &recipe.MissingFieldError{Recipe: def.ID, Field: "id", Role: p.Tag}
		}

		path, err := c.resolver.Resolve(p.ID)
		if err != nil {
			return fmt.Errorf("recipe %s: %s ingredient: %w", def.ID, p.Tag, err)
		}
		if err := resolver.RequireNamespace(path, c.opts.IngredientNamespace, def.ID, p.Tag); err != nil {
			return err
		}

		count := p.Count
		if count == 0 {
			count = 1
		}
		entries = append(entries, recipe.IngredientEntry{Path: path, Count: count, Role: role, Tag: p.Tag})
		return nil
	}

	for _, role := range recipe.FixedRoles {
		p, ok := def.Slot(role).Get()
		if !ok {
			continue
		}
		if err := add(role, p); err != nil {
			return nil, err
		}
	}
	for _, p := range def.Additional {
		if err := add(recipe.ParseRole(p.Tag), p); err != nil {
			return nil, err
		}
	}

	if len(entries) == 0 {
		return nil, &recipe.EmptyIngredientsError{Recipe: def.ID}
	}
	return entries, nil
}
