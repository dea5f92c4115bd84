package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/larder/internal/config"
	"github.com/zjrosen/larder/internal/infrastructure/sqlite"
	"github.com/zjrosen/larder/internal/log"
)

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:   "larder",
	Short: "A recipe manager with unit-aware grocery lists",
	Long: `Larder keeps recipes in a local SQLite database, moves them in and out as a
hand-editable plain-text format, and turns any selection of recipes into a
grocery list with unit-aware quantity summation.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/larder/larder.yaml)")
	rootCmd.PersistentFlags().StringP("db", "d", "",
		"path to the recipe database")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"write a debug log (also enabled by LARDER_DEBUG)")

	// Bind flags to viper
	_ = viper.BindPFlag("database_path", rootCmd.PersistentFlags().Lookup("db"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("database_path", defaults.DatabasePath)
	viper.SetDefault("log_path", defaults.LogPath)
	viper.SetDefault("auto_refresh", defaults.AutoRefresh)
	viper.SetDefault("cache.disabled", defaults.Cache.Disabled)
	viper.SetDefault("cache.ttl_minutes", defaults.Cache.TTLMinutes)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.file_path", defaults.Tracing.FilePath)
	viper.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)
	viper.SetDefault("tracing.service_name", defaults.Tracing.ServiceName)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .larder.yaml (current directory)
		// 2. ~/.config/larder/larder.yaml (user config)
		if _, err := os.Stat(".larder.yaml"); err == nil {
			viper.SetConfigFile(".larder.yaml")
		} else {
			viper.AddConfigPath(config.ConfigDir())
			viper.SetConfigName("larder")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// Missing config is fine, defaults apply. Anything else is worth a
		// warning but never fatal.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "warning: reading config: %v\n", err)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// initLogging enables the debug log when requested via --debug or the
// LARDER_DEBUG env var. The returned cleanup closes the log file.
func initLogging() (func(), error) {
	debug := debugFlag || os.Getenv("LARDER_DEBUG") != ""
	if !debug {
		return func() {}, nil
	}

	logPath := cfg.LogPath
	if logPath == "" {
		logPath = "debug.log"
	}
	if dir := filepath.Dir(logPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
	}

	cleanup, err := log.Init(logPath)
	if err != nil {
		return nil, fmt.Errorf("initializing logging: %w", err)
	}

	log.Info(log.CatCLI, "larder starting", "version", version, "logPath", logPath)
	return cleanup, nil
}

// openDB validates the configuration and opens the recipe database, running
// any pending migrations.
func openDB() (*sqlite.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	path := cfg.DatabasePath
	if path == "" {
		path = config.DefaultDatabasePath()
	}
	if path == "" {
		return nil, fmt.Errorf("no database path configured; set database_path or pass --db")
	}

	db, err := sqlite.NewDB(path)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}
	return db, nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
