package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/larder/internal/recipes/domain"
)

// Builder accumulates test recipes and saves them through a repository.
type Builder struct {
	t       *testing.T
	repo    domain.RecipeRepository
	recipes []recipeData
}

// NewBuilder creates a builder writing through the given repository.
func NewBuilder(t *testing.T, repo domain.RecipeRepository) *Builder {
	t.Helper()
	return &Builder{t: t, repo: repo}
}

// WithRecipe adds a recipe with optional configuration.
func (b *Builder) WithRecipe(guid string, opts ...RecipeOption) *Builder {
	data := defaultRecipe(guid)
	for _, opt := range opts {
		opt(&data)
	}
	b.recipes = append(b.recipes, data)
	return b
}

// Build saves all accumulated recipes in insertion order.
func (b *Builder) Build() {
	b.t.Helper()
	for _, data := range b.recipes {
		b.saveRecipe(data)
	}
}

func (b *Builder) saveRecipe(data recipeData) {
	b.t.Helper()

	recipe := domain.NewRecipe(data.guid, data.name)
	recipe.SetCookingTimeMinutes(data.cookingTimeMinutes)
	recipe.SetServings(data.servings)
	recipe.SetTags(data.tags)
	recipe.SetNotes(data.notes)
	recipe.SetInstructions(data.instructions)
	recipe.SetIngredients(data.ingredients)
	recipe.SetTimestamps(data.createdAt, data.modifiedAt)
	require.NoError(b.t, recipe.Validate())
	require.NoError(b.t, b.repo.Save(recipe))

	if data.deletedAt != nil {
		require.NoError(b.t, b.repo.Delete(data.guid))
	}
}
