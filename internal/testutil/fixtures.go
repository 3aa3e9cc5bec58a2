package testutil

import "testing"

// HealingDraughtJSON is a one-recipe table whose identifiers resolve in a
// project seeded by SeedHealingDraught.
const HealingDraughtJSON = `{
  "recipes": [
    {
      "recipe_id": "healing_draught",
      "result": "healing_potion",
      "display_name": "Healing Draught",
      "tier": 1,
      "required_alchemy_level": 2,
      "xp_reward": 10,
      "result_count": 1,
      "base_potency": 5,
      "potency_per_level": 1.5,
      "base_liquid": {"id": "water"},
      "primary_ingredient": {"id": "red_herb", "count": 2},
      "catalyst": null
    }
  ]
}`

// HealingDraughtTres is the exact document compiled from HealingDraughtJSON.
const HealingDraughtTres = `[gd_resource type="Resource" script_class="PotionRecipeData" load_steps=5 format=3]

[ext_resource type="Script" path="res://scripts/data/potion_recipe_data.gd" id="1"]
[ext_resource type="Resource" path="res://resources/potions/healing_potion.tres" id="2"]
[ext_resource type="Resource" path="res://resources/items/water.tres" id="3"]
[ext_resource type="Resource" path="res://resources/items/red_herb.tres" id="4"]

[resource]
script = ExtResource("1")
id = "healing_draught"
display_name = "Healing Draught"
result = ExtResource("2")
result_count = 1
ingredients = [ExtResource("3"), ExtResource("4")]
ingredient_counts = [1, 2]
tier = 1
required_alchemy_level = 2
base_potency = 5
potency_per_level = 1.5
xp_reward = 10
base_liquid = ExtResource("3")
primary_ingredient = ExtResource("4")
secondary_ingredient = null
catalyst = null
`

// SeedHealingDraught creates every resource HealingDraughtJSON refers to.
func SeedHealingDraught(t *testing.T, p *Project) {
	t.Helper()
	p.AddPotions(t, "healing_potion")
	p.AddItems(t, "water", "red_herb")
}
