package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zjrosen/larder/internal/config"
)

var configInitCmd = &cobra.Command{
	Use:   "config:init",
	Short: "Write a commented default config file",
	Long: `Write a commented default config file. Refuses to overwrite an existing
file.

The default location is ~/.config/larder/larder.yaml; pass --config to write
somewhere else.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		path := cfgFile
		if path == "" {
			dir := config.ConfigDir()
			if dir == "" {
				return fmt.Errorf("cannot determine config directory; pass --config")
			}
			path = filepath.Join(dir, "larder.yaml")
		}

		if err := config.WriteDefaultConfig(path); err != nil {
			return err
		}
		fmt.Printf("Wrote default config to %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configInitCmd)
}
