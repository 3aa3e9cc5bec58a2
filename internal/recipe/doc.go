// Package recipe defines the typed recipe model compiled into PotionRecipeData
// resources: definitions, ingredient slots and roles, and the error kinds
// raised while decoding and validating a recipe table record.
//
// A record from the table is turned into a Definition by Decode, which first
// enforces the required top-level keys and then decodes every field into its
// Go type. Fixed ingredient slots are explicit optional values; ingredient
// roles are a closed enumeration.
package recipe
