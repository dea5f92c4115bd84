package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zjrosen/larder/internal/codec"
	"github.com/zjrosen/larder/internal/recipes/domain"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export [guid...]",
	Short: "Export recipes as a plain-text document",
	Long: `Export recipes as a plain-text recipe document, sorted by name. With no
arguments every recipe is exported; otherwise only the named GUIDs.

The output round-trips: importing an exported document reproduces the same
recipes.

Examples:
  larder export                  # All recipes to stdout
  larder export -o recipes.txt   # All recipes to a file
  larder export 4f2a... 9c1b...  # Just these two`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "",
		"write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, args []string) error {
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

	if exportOutput == "" {
		return exportDocument(db.RecipeRepository(), args, os.Stdout)
	}

	f, err := os.Create(exportOutput) //nolint:gosec // G304: path comes from the command line
	if err != nil {
		return fmt.Errorf("creating %s: %w", exportOutput, err)
	}
	if err := exportDocument(db.RecipeRepository(), args, f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// exportDocument encodes the selected recipes to out, or every live recipe
// when guids is empty.
func exportDocument(repo domain.RecipeRepository, guids []string, out io.Writer) error {
	var recipes []*domain.Recipe
	if len(guids) == 0 {
		all, err := repo.List(domain.ListFilter{})
		if err != nil {
			return fmt.Errorf("listing recipes: %w", err)
		}
		recipes = all
	} else {
		for _, guid := range guids {
			recipe, err := repo.FindByGUID(guid)
			if err != nil {
				return err
			}
			recipes = append(recipes, recipe)
		}
	}

	_, err := io.WriteString(out, codec.EncodeAll(recipes))
	return err
}
