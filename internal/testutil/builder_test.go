package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/larder/internal/recipes/domain"
	"github.com/zjrosen/larder/internal/units"
)

func TestBuilder_Defaults(t *testing.T) {
	repo := NewTestDB(t).RecipeRepository()

	NewBuilder(t, repo).WithRecipe("r-1").Build()

	recipe, err := repo.FindByGUID("r-1")
	require.NoError(t, err)
	assert.Equal(t, "r-1", recipe.Name(), "default name is the GUID")
	assert.Equal(t, 10, recipe.CookingTimeMinutes())
	assert.Equal(t, 2, recipe.Servings())
	assert.NotEmpty(t, recipe.Instructions())
}

func TestBuilder_Options(t *testing.T) {
	repo := NewTestDB(t).RecipeRepository()
	created := time.Now().Add(-48 * time.Hour)

	NewBuilder(t, repo).
		WithRecipe("r-1",
			Name("Pancakes"), CookingTime(20), Servings(4),
			Tags("breakfast", "quick"),
			Notes("Double for a crowd."),
			Instructions("Whisk and fry."),
			Ingredients(
				Ingredient("flour", "", 250, units.Grams),
				UnquantifiedIngredient("salt"),
			),
			CreatedAt(created)).
		Build()

	recipe, err := repo.FindByGUID("r-1")
	require.NoError(t, err)
	assert.Equal(t, "Pancakes", recipe.Name())
	assert.Equal(t, 20, recipe.CookingTimeMinutes())
	assert.Equal(t, 4, recipe.Servings())
	assert.Equal(t, []string{"breakfast", "quick"}, recipe.Tags())
	assert.Equal(t, "Double for a crowd.", recipe.Notes())
	assert.WithinDuration(t, created, recipe.CreatedAt(), time.Second)

	require.Len(t, recipe.Ingredients(), 2)
	flour := recipe.Ingredients()[0]
	require.NotNil(t, flour.Quantity)
	assert.Equal(t, 250.0, *flour.Quantity)
	assert.Equal(t, units.Grams, flour.Unit)
	assert.Nil(t, recipe.Ingredients()[1].Quantity)
}

func TestBuilder_Deleted(t *testing.T) {
	repo := NewTestDB(t).RecipeRepository()

	NewBuilder(t, repo).
		WithRecipe("keep").
		WithRecipe("gone", Deleted(time.Now())).
		Build()

	_, err := repo.FindByGUID("gone")
	var notFound *domain.RecipeNotFoundError
	require.ErrorAs(t, err, &notFound)

	recipes, err := repo.List(domain.ListFilter{})
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "keep", recipes[0].GUID())
}
