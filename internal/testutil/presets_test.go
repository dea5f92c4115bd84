package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/larder/internal/recipes/domain"
)

func TestWithStandardPantry(t *testing.T) {
	repo := NewTestDB(t).RecipeRepository()

	NewBuilder(t, repo).WithStandardPantry().Build()

	recipes, err := repo.List(domain.ListFilter{})
	require.NoError(t, err)
	require.Len(t, recipes, 3, "deleted recipe excluded by default")

	names := make([]string, len(recipes))
	for i, r := range recipes {
		names[i] = r.Name()
	}
	assert.Equal(t, []string{"Bolognese", "Pancakes", "Tomato Soup"}, names, "ordered by name")

	all, err := repo.List(domain.ListFilter{IncludeDeleted: true})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	dinner, err := repo.List(domain.ListFilter{Tag: "dinner"})
	require.NoError(t, err)
	assert.Len(t, dinner, 2)
}
