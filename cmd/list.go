package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zjrosen/larder/internal/presentation"
	"github.com/zjrosen/larder/internal/recipes/domain"
)

var (
	listName    string
	listTag     string
	listLimit   int
	listDeleted bool
	listJSON    bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recipes",
	Long: `List recipes ordered by name.

Examples:
  larder list
  larder list --name soup
  larder list --tag dinner --limit 10
  larder list --json | jq '.[].guid'`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listName, "name", "n", "",
		"filter by name substring (case-insensitive)")
	listCmd.Flags().StringVarP(&listTag, "tag", "t", "", "filter by tag")
	listCmd.Flags().IntVarP(&listLimit, "limit", "l", 0, "limit the number of results")
	listCmd.Flags().BoolVar(&listDeleted, "deleted", false, "include soft-deleted recipes")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	cleanup, err := initLogging()
	if err != nil {
		return err
	}
	defer cleanup()

	db, err := openDB()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	recipes, err := db.RecipeRepository().List(domain.ListFilter{
		NameContains:   listName,
		Tag:            listTag,
		Limit:          listLimit,
		IncludeDeleted: listDeleted,
	})
	if err != nil {
		return err
	}

	formatter := presentation.NewFormatter(os.Stdout)
	dtos := presentation.FromDomainRecipes(recipes)
	if listJSON {
		return formatter.FormatRecipesJSON(dtos)
	}
	return formatter.FormatRecipeTable(dtos)
}
