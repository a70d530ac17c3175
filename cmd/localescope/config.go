// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"localescope/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage localescope configuration",
	Long: `Manage localescope configuration.

Configuration is looked up in order: the --config flag, a
localescope.cue at the workspace root, then the platform config
directory:
  - Linux: ~/.config/localescope/localescope.cue
  - macOS: ~/Library/Application Support/localescope/localescope.cue
  - Windows: %APPDATA%\localescope\localescope.cue`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show [path]",
		Short: "Show the effective configuration as CUE",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveRoot(args)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(root)
			if err != nil {
				fmt.Println(ErrorStyle.Render("Error: ") + formatErrorForDisplay(err, verbose))
				return &ExitError{Code: 1, Err: err}
			}
			fmt.Print(config.GenerateCUE(cfg))
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the configuration file lookup paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgDir, err := config.ConfigDir()
			if err != nil {
				return err
			}
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			fmt.Println(SubtitleStyle.Render("Lookup order:"))
			fmt.Printf("  1. %s\n", PathStyle.Render(filepath.Join(wd, config.ConfigFileName)))
			fmt.Printf("  2. %s\n", PathStyle.Render(filepath.Join(cfgDir, config.ConfigFileName)))
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Create a default localescope.cue at the workspace root",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveRoot(args)
			if err != nil {
				return err
			}
			path := filepath.Join(root, config.ConfigFileName)
			if _, err := os.Stat(path); err == nil {
				fmt.Println(WarningStyle.Render("Config file already exists: ") + PathStyle.Render(path))
				return &ExitError{Code: 1}
			}
			content := config.GenerateCUE(config.DefaultConfig())
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			fmt.Println(SuccessStyle.Render("Created ") + PathStyle.Render(path))
			return nil
		},
	})
}
