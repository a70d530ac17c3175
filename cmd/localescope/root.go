// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"localescope/internal/config"
	"localescope/internal/issue"
	"localescope/pkg/fspath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug logging and full error chains
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "localescope",
		Short: "Workspace i18n framework detection and settings derivation",
		Long: TitleStyle.Render("localescope") + SubtitleStyle.Render(" - workspace i18n context engine") + `

localescope scans a workspace's package manifests (package.json,
composer.json, pubspec.yaml, Cargo.toml), resolves which i18n
frameworks are active via nearest-ancestor dependency matching, and
derives the effective locale settings: enabled parsers, key style,
locale directories, and usage-match patterns.

Configuration lives in 'localescope.cue' at the workspace root (CUE
format, schema-validated); explicit overrides always win over
framework-derived defaults.

` + SubtitleStyle.Render("Examples:") + `
  localescope detect            Resolve active frameworks for the cwd
  localescope deps              List declared dependencies per manifest
  localescope frameworks        List the built-in framework registry
  localescope config show       Show the effective configuration
  localescope watch             Watch the workspace and react to changes`,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is <workspace>/localescope.cue)")

	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(depsCmd)
	rootCmd.AddCommand(frameworksCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(watchCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command via fang for consistent styling and
// signal handling. Called by main.main exactly once.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// newLogger builds the process logger: charmbracelet/log as the slog
// handler, warn-and-up by default, debug in verbose mode.
func newLogger() *slog.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	handler := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "localescope",
		Level:  level,
	})
	return slog.New(handler)
}

// loadConfig loads configuration for the given workspace root,
// honouring the --config flag.
func loadConfig(root string) (*config.Config, error) {
	return config.Load(config.LoadOptions{
		ConfigFilePath: cfgFile,
		WorkspaceRoot:  root,
	})
}

// resolveRoot canonicalizes the optional positional workspace-root
// argument, defaulting to the current working directory.
func resolveRoot(args []string) (string, error) {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	root, err := fspath.Canonical(dir)
	if err != nil {
		return "", fmt.Errorf("resolving workspace root %q: %w", dir, err)
	}
	return root, nil
}

// formatErrorForDisplay formats an error for user display. Actionable
// errors render their suggestions; verbose mode shows the full chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
