package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <guid>",
	Short: "Soft-delete a recipe",
	Long: `Soft-delete a recipe. The record stays in the database but no longer
appears in listings, exports, or grocery lists.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(_ *cobra.Command, args []string) error {
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

	if err := db.RecipeRepository().Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted %s\n", args[0])
	return nil
}
