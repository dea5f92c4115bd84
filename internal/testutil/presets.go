package testutil

import (
	"time"

	"github.com/zjrosen/larder/internal/units"
)

// WithStandardPantry adds a small fixed set of recipes covering the common
// shapes: tagged, untagged, shared ingredients across recipes, and one
// soft-deleted entry.
func (b *Builder) WithStandardPantry() *Builder {
	now := time.Now()
	lastWeek := now.Add(-7 * 24 * time.Hour)

	return b.
		WithRecipe("pantry-1",
			Name("Pancakes"), CookingTime(20), Servings(4),
			Tags("breakfast"),
			Ingredients(
				Ingredient("flour", "", 250, units.Grams),
				Ingredient("eggs", "", 3, units.Pieces),
				Ingredient("milk", "", 473.176, units.Milliliters),
			),
			Instructions("Whisk, rest, fry."),
			CreatedAt(lastWeek)).
		WithRecipe("pantry-2",
			Name("Tomato Soup"), CookingTime(35), Servings(2),
			Tags("dinner", "vegetarian"),
			Ingredients(
				Ingredient("tomatoes", "chopped", 800, units.Grams),
				Ingredient("onion", "diced", 1, units.Pieces),
				UnquantifiedIngredient("salt"),
			),
			Instructions("Simmer and blend."),
			Notes("Better the next day."),
			CreatedAt(lastWeek)).
		WithRecipe("pantry-3",
			Name("Bolognese"), CookingTime(90), Servings(6),
			Tags("dinner"),
			Ingredients(
				Ingredient("ground beef", "", 500, units.Grams),
				Ingredient("tomatoes", "chopped", 400, units.Grams),
				Ingredient("onion", "diced", 1, units.Pieces),
			),
			Instructions("Brown, deglaze, simmer low.")).
		WithRecipe("pantry-4",
			Name("Retired Stew"), CookingTime(60), Servings(4),
			Instructions("No longer made."),
			Deleted(now))
}
