package testutil

import (
	"time"

	"github.com/zjrosen/larder/internal/recipes/domain"
	"github.com/zjrosen/larder/internal/units"
)

// recipeData holds all data for a recipe to be saved.
type recipeData struct {
	guid               string
	name               string
	cookingTimeMinutes int
	servings           int
	tags               []string
	notes              string
	instructions       string
	ingredients        []domain.IngredientLine
	createdAt          time.Time
	modifiedAt         time.Time
	deletedAt          *time.Time
}

// defaultRecipe returns a recipeData with sensible defaults.
func defaultRecipe(guid string) recipeData {
	now := time.Now()
	return recipeData{
		guid:               guid,
		name:               guid, // Default name is the GUID
		cookingTimeMinutes: 10,
		servings:           2,
		instructions:       "Cook until done.",
		createdAt:          now,
		modifiedAt:         now,
	}
}

// RecipeOption configures a recipe during builder setup.
type RecipeOption func(*recipeData)

// Name sets the recipe name.
func Name(name string) RecipeOption {
	return func(r *recipeData) { r.name = name }
}

// CookingTime sets the cooking time in minutes.
func CookingTime(minutes int) RecipeOption {
	return func(r *recipeData) { r.cookingTimeMinutes = minutes }
}

// Servings sets the serving count.
func Servings(servings int) RecipeOption {
	return func(r *recipeData) { r.servings = servings }
}

// Tags adds tags to the recipe.
func Tags(tags ...string) RecipeOption {
	return func(r *recipeData) { r.tags = append(r.tags, tags...) }
}

// Notes sets the recipe notes.
func Notes(notes string) RecipeOption {
	return func(r *recipeData) { r.notes = notes }
}

// Instructions sets the recipe instructions.
func Instructions(instructions string) RecipeOption {
	return func(r *recipeData) { r.instructions = instructions }
}

// Ingredients adds ingredient lines to the recipe.
func Ingredients(lines ...domain.IngredientLine) RecipeOption {
	return func(r *recipeData) { r.ingredients = append(r.ingredients, lines...) }
}

// Ingredient creates a quantified ingredient line. The quantity is taken to
// already be in the base unit of its dimension.
func Ingredient(name, modifier string, quantity float64, unit units.Unit) domain.IngredientLine {
	return domain.IngredientLine{
		Name:     name,
		Modifier: modifier,
		Quantity: &quantity,
		Unit:     unit,
	}
}

// UnquantifiedIngredient creates an ingredient line without a quantity.
func UnquantifiedIngredient(name string) domain.IngredientLine {
	return domain.IngredientLine{Name: name}
}

// CreatedAt sets the created timestamp.
func CreatedAt(t time.Time) RecipeOption {
	return func(r *recipeData) {
		r.createdAt = t
		if r.modifiedAt.Before(t) {
			r.modifiedAt = t
		}
	}
}

// ModifiedAt sets the modified timestamp.
func ModifiedAt(t time.Time) RecipeOption {
	return func(r *recipeData) { r.modifiedAt = t }
}

// Deleted marks the recipe as soft-deleted after saving.
func Deleted(t time.Time) RecipeOption {
	return func(r *recipeData) { r.deletedAt = &t }
}
