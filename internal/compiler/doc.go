// Package compiler turns decoded recipe definitions into PotionRecipeData
// text resources.
//
// Compilation of one recipe registers, in order, the recipe script, the
// result resource and every ingredient with a fresh registry.Registry. The
// fixed ingredient slots (base, primary, secondary, catalyst) are processed
// first, then the additional ingredients in table order. That order fixes
// both the ingredient array and the ExtResource ids, so the same input always
// produces the same bytes.
package compiler
