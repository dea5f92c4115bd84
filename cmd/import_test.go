package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/larder/internal/recipes/domain"
	"github.com/zjrosen/larder/internal/testutil"
)

const importDoc = `===== RECIPE =====
Name: Pancakes
Cooking time: 20 minutes
Servings: 4

===== INGREDIENTS =====
250g flour
3 eggs

===== INSTRUCTIONS =====
Whisk and fry.

===== END RECIPE =====
===== RECIPE =====
Name: Broken Block
Cooking time: 10 minutes

===== INSTRUCTIONS =====
Missing servings, never imports.

===== END RECIPE =====
`

func TestImportDocument(t *testing.T) {
	repo := testutil.NewTestDB(t).RecipeRepository()

	var out bytes.Buffer
	require.NoError(t, importDocument(repo, importDoc, &out))

	assert.Contains(t, out.String(), "Imported 1 recipe(s), skipped 1 block(s)")
	assert.Contains(t, out.String(), "Recipe #2")

	recipes, err := repo.List(domain.ListFilter{})
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Pancakes", recipes[0].Name())
	assert.NotEmpty(t, recipes[0].GUID(), "imported recipes get a fresh GUID")
	assert.Len(t, recipes[0].Ingredients(), 2)
}

func TestImportExport_RoundTrip(t *testing.T) {
	repo := testutil.NewTestDB(t).RecipeRepository()
	testutil.NewBuilder(t, repo).WithStandardPantry().Build()

	var doc bytes.Buffer
	require.NoError(t, exportDocument(repo, nil, &doc))
	assert.Equal(t, 3, strings.Count(doc.String(), "===== END RECIPE ====="),
		"deleted recipes stay out of exports")

	// Import into a fresh database and compare
	otherRepo := testutil.NewTestDB(t).RecipeRepository()
	var out bytes.Buffer
	require.NoError(t, importDocument(otherRepo, doc.String(), &out))
	assert.Contains(t, out.String(), "Imported 3 recipe(s), skipped 0 block(s)")

	recipes, err := otherRepo.List(domain.ListFilter{})
	require.NoError(t, err)
	require.Len(t, recipes, 3)
	assert.Equal(t, "Bolognese", recipes[0].Name())
	assert.Equal(t, []string{"dinner"}, recipes[0].Tags())
}

func TestExportDocument_SelectedGUIDs(t *testing.T) {
	repo := testutil.NewTestDB(t).RecipeRepository()
	testutil.NewBuilder(t, repo).WithStandardPantry().Build()

	var doc bytes.Buffer
	require.NoError(t, exportDocument(repo, []string{"pantry-1"}, &doc))

	assert.Contains(t, doc.String(), "Name: Pancakes")
	assert.NotContains(t, doc.String(), "Name: Bolognese")

	var missing bytes.Buffer
	err := exportDocument(repo, []string{"nope"}, &missing)
	var notFound *domain.RecipeNotFoundError
	require.ErrorAs(t, err, &notFound)
}
