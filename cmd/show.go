package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zjrosen/larder/internal/presentation"
)

var showCmd = &cobra.Command{
	Use:   "show <guid>",
	Short: "Show one recipe as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, args []string) error {
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

	recipe, err := db.RecipeRepository().FindByGUID(args[0])
	if err != nil {
		return err
	}

	formatter := presentation.NewFormatter(os.Stdout)
	return formatter.FormatRecipeJSON(presentation.FromDomainRecipe(recipe))
}
