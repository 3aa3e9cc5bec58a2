package recipe

import "fmt"

// Role identifies which part of a recipe an ingredient fills.
type Role int

const (
	RoleBase Role = iota
	RolePrimary
	RoleSecondary
	RoleCatalyst
	RoleAdditional
)

// FixedRoles lists the roles with a dedicated output field, in processing order.
var FixedRoles = [...]Role{RoleBase, RolePrimary, RoleSecondary, RoleCatalyst}

// String returns the role tag used in the recipe table.
func (r Role) String() string {
	switch r {
	case RoleBase:
		return "base"
	case RolePrimary:
		return "primary"
	case RoleSecondary:
		return "secondary"
	case RoleCatalyst:
		return "catalyst"
	case RoleAdditional:
		return "additional"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Field returns the table and resource field bound to a fixed role, or ""
// for RoleAdditional.
func (r Role) Field() string {
	switch r {
	case RoleBase:
		return "base_liquid"
	case RolePrimary:
		return "primary_ingredient"
	case RoleSecondary:
		return "secondary_ingredient"
	case RoleCatalyst:
		return "catalyst"
	case RoleAdditional:
		return ""
	default:
		return ""
	}
}

// Fixed reports whether r is one of the four named slots.
func (r Role) Fixed() bool {
	return r.Field() != ""
}

// ParseRole maps a role tag to its Role. Tags that do not name a fixed slot
// are additional ingredients.
func ParseRole(tag string) Role {
	for _, r := range FixedRoles {
		if r.String() == tag {
			return r
		}
	}
	return RoleAdditional
}

// Payload is one ingredient as written in the table.
type Payload struct {
	ID    string
	Count int
	// Tag is the declared role tag. Fixed slots carry their own role name.
	Tag string
}

// Slot is an optional fixed-slot payload.
type Slot struct {
	payload Payload
	present bool
}

// Some returns a populated slot.
func Some(p Payload) Slot {
	return Slot{payload: p, present: true}
}

// None returns an empty slot.
func None() Slot {
	return Slot{}
}

// Get returns the payload and whether the slot is populated.
func (s Slot) Get() (Payload, bool) {
	return s.payload, s.present
}

// Definition is one decoded recipe table entry.
type Definition struct {
	ID                   string
	DisplayName          string
	Result               string
	ResultCount          int
	Tier                 int
	RequiredAlchemyLevel int
	BasePotency          float64
	PotencyPerLevel      float64
	XPReward             int

	BaseLiquid          Slot
	PrimaryIngredient   Slot
	SecondaryIngredient Slot
	Catalyst            Slot

	// Additional holds the open-ended ingredient list in table order.
	Additional []Payload
}

// Slot returns the fixed slot for r. It panics for RoleAdditional.
func (d *Definition) Slot(r Role) Slot {
	switch r {
	case RoleBase:
		return d.BaseLiquid
	case RolePrimary:
		return d.PrimaryIngredient
	case RoleSecondary:
		return d.SecondaryIngredient
	case RoleCatalyst:
		return d.Catalyst
	case RoleAdditional:
		panic("recipe: additional ingredients have no fixed slot")
	default:
		panic(fmt.Sprintf("recipe: unknown role %d", int(r)))
	}
}

// IngredientEntry is a resolved ingredient ready for emission.
type IngredientEntry struct {
	Path  string
	Count int
	Role  Role
	Tag   string
}
