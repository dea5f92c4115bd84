package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/zjrosen/larder/internal/cachemanager"
	"github.com/zjrosen/larder/internal/grocery"
	"github.com/zjrosen/larder/internal/log"
	"github.com/zjrosen/larder/internal/presentation"
	"github.com/zjrosen/larder/internal/tracing"
	"github.com/zjrosen/larder/internal/watcher"
)

var (
	groceryWatch   bool
	groceryNoCache bool
	groceryJSON    bool
)

var groceryCmd = &cobra.Command{
	Use:   "grocery <guid>[=count] ...",
	Short: "Generate a grocery list from selected recipes",
	Long: `Generate a grocery list from selected recipes.

Each argument selects a recipe by GUID with an optional multiplier. Matching
ingredients are summed in compatible units; unknown GUIDs are skipped.

Examples:
  larder grocery 4f2a... 9c1b...=2     # One of the first, two of the second
  larder grocery 4f2a... --json        # Machine-readable output
  larder grocery 4f2a... --watch       # Regenerate when the database changes`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGrocery,
}

func init() {
	groceryCmd.Flags().BoolVarP(&groceryWatch, "watch", "w", false,
		"keep running and regenerate the list when the database changes")
	groceryCmd.Flags().BoolVar(&groceryNoCache, "no-cache", false,
		"bypass the in-memory recipe cache")
	groceryCmd.Flags().BoolVar(&groceryJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(groceryCmd)
}

func runGrocery(_ *cobra.Command, args []string) error {
	cleanup, err := initLogging()
	if err != nil {
		return err
	}
	defer cleanup()

	selections, err := parseSelections(args)
	if err != nil {
		return err
	}

	provider, err := tracing.NewProvider(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			log.ErrorErr(log.CatTrace, "shutting down tracing", err)
		}
	}()

	db, err := openDB()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	skipCache := groceryNoCache || cfg.Cache.Disabled
	cache := cachemanager.NewRecipeCache(db.RecipeRepository(), cfg.Cache.TTL(), skipCache)
	aggregator := grocery.NewAggregator(cache.Fetch)

	emit := func(ctx context.Context) error {
		if groceryJSON {
			list, err := aggregator.Build(ctx, selections)
			if err != nil {
				return err
			}
			formatter := presentation.NewFormatter(os.Stdout)
			return formatter.FormatGroceryJSON(presentation.FromGroceryList(list))
		}

		report, err := aggregator.Generate(ctx, selections)
		if err != nil {
			return err
		}
		fmt.Print(report)
		return nil
	}

	if err := emit(context.Background()); err != nil {
		return err
	}

	if !groceryWatch {
		return nil
	}
	return watchAndRegenerate(db.Path(), cache, emit)
}

// parseSelections parses guid=count arguments. A bare GUID counts once;
// repeated GUIDs accumulate.
func parseSelections(args []string) (map[string]int, error) {
	selections := make(map[string]int, len(args))
	for _, arg := range args {
		guid, countStr, hasCount := strings.Cut(arg, "=")
		if guid == "" {
			return nil, fmt.Errorf("invalid selection %q: missing guid", arg)
		}

		count := 1
		if hasCount {
			n, err := strconv.Atoi(countStr)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("invalid selection %q: count must be a positive integer", arg)
			}
			count = n
		}
		selections[guid] += count
	}
	return selections, nil
}

// watchAndRegenerate blocks until interrupted, flushing the cache and
// re-emitting the grocery list whenever the database file changes.
func watchAndRegenerate(dbPath string, cache *cachemanager.RecipeCache, emit func(context.Context) error) error {
	w, err := watcher.New(watcher.DefaultConfig(dbPath))
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	changes, err := w.Start()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer func() { _ = w.Stop() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	fmt.Println("\nWatching for database changes. Press Ctrl+C to stop.")
	for {
		select {
		case <-changes:
			if !cfg.AutoRefresh {
				log.Debug(log.CatWatcher, "change ignored, auto_refresh disabled")
				continue
			}
			ctx := context.Background()
			if err := cache.Flush(ctx); err != nil {
				log.ErrorErr(log.CatCache, "flushing recipe cache", err)
			}
			fmt.Println()
			if err := emit(ctx); err != nil {
				log.ErrorErr(log.CatGrocery, "regenerating grocery list", err)
			}

		case sig := <-sigCh:
			fmt.Printf("\nReceived %s, stopping watch\n", sig)
			return nil
		}
	}
}
