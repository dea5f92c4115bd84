package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zjrosen/larder/internal/codec"
	"github.com/zjrosen/larder/internal/log"
	"github.com/zjrosen/larder/internal/recipes/domain"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import recipes from a plain-text recipe document",
	Long: `Import recipes from a plain-text recipe document.

Each block in the document is parsed independently and saved as a new recipe.
Blocks that fail to parse are reported and skipped; the remaining blocks still
import.

Example:
  larder import recipes.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
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

	data, err := os.ReadFile(args[0]) //nolint:gosec // G304: path comes from the command line
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	return importDocument(db.RecipeRepository(), string(data), os.Stdout)
}

// importDocument decodes a document and saves every valid recipe as a new
// record. Block errors are reported to out but do not abort the rest of the
// import.
func importDocument(repo domain.RecipeRepository, text string, out io.Writer) error {
	records, errs := codec.Decode(text)
	for _, msg := range errs {
		fmt.Fprintf(out, "skipped: %s\n", msg)
	}

	for _, record := range records {
		if err := repo.Save(record); err != nil {
			return fmt.Errorf("saving recipe %q: %w", record.Name(), err)
		}
		log.Debug(log.CatCLI, "imported recipe", "guid", record.GUID(), "name", record.Name())
	}

	fmt.Fprintf(out, "Imported %d recipe(s), skipped %d block(s)\n", len(records), len(errs))
	return nil
}
