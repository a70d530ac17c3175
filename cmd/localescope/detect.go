// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"localescope/internal/activation"
	"localescope/internal/config"
	"localescope/internal/issue"
	"localescope/internal/settings"
	"localescope/pkg/framework"
	"localescope/pkg/fspath"
	"localescope/pkg/manifest"

	"github.com/spf13/cobra"
)

var detectFile string

var detectCmd = &cobra.Command{
	Use:   "detect [path]",
	Short: "Resolve the active i18n frameworks and derived settings",
	Long: `Resolve which i18n frameworks are active for a workspace and print the
settings derived from them.

Activation walks from the active file's directory up to the workspace
root; the closest folder whose manifest declares a known i18n dependency
wins. Without --file the walk starts at the root itself.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDetect,
}

func init() {
	detectCmd.Flags().StringVarP(&detectFile, "file", "f", "",
		"resolve from the directory containing this file (monorepo sub-packages)")
}

func runDetect(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot(args)
	if err != nil {
		return err
	}

	logger := newLogger()
	cfg, err := loadConfig(root)
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		cfg = config.DefaultConfig()
	}
	if cfg.Disabled {
		fmt.Println(WarningStyle.Render("localescope is disabled by configuration."))
		return nil
	}

	dir := root
	if detectFile != "" {
		p, err := fspath.Canonical(detectFile)
		if err != nil {
			return fmt.Errorf("resolving --file %q: %w", detectFile, err)
		}
		dir = filepath.Dir(p)
	}

	registry := framework.Default()
	actx := resolveContext(cfg, registry, root, dir, logger)

	if actx.Empty() {
		printIssue(issue.NoFrameworkActiveId)
		return &ExitError{Code: 1}
	}

	cache, err := settings.New(cfg, newTerminalPrompter(), logger)
	if err != nil {
		return err
	}
	cache.SetContext(actx)

	fmt.Println(TitleStyle.Render("Active frameworks"))
	for _, f := range actx.Frameworks {
		fmt.Printf("  %s %s\n", SuccessStyle.Render(f.ID), SubtitleStyle.Render(f.DisplayName))
	}
	fmt.Println()
	fmt.Printf("%s %s\n", SubtitleStyle.Render("Activation folder:"), PathStyle.Render(actx.ActivationFolder))
	fmt.Printf("%s %s\n", SubtitleStyle.Render("Key style:        "), string(cache.KeyStyle(cmd.Context())))
	fmt.Printf("%s %s\n", SubtitleStyle.Render("Parsers:          "), strings.Join(cache.EnabledParsers(), ", "))
	fmt.Printf("%s %q\n", SubtitleStyle.Render("Namespace delim:  "), cache.NamespaceDelimiter())

	paths := cache.LocalePaths()
	if len(paths) == 0 {
		fmt.Printf("%s %s\n", SubtitleStyle.Render("Locale paths:     "),
			WarningStyle.Render("none resolvable (engine would stay disabled)"))
		return nil
	}
	fmt.Println(SubtitleStyle.Render("Locale paths:"))
	for _, p := range paths {
		fmt.Printf("  %s\n", PathStyle.Render(p))
	}
	return nil
}

// resolveContext computes the activation context for root, honouring an
// explicit framework list in config, which bypasses the dependency walk.
func resolveContext(cfg *config.Config, registry *framework.Registry, root, dir string, logger *slog.Logger) activation.Context {
	if len(cfg.Frameworks) > 0 {
		var fws []*framework.Framework
		for _, id := range cfg.Frameworks {
			f, ok := registry.Lookup(id)
			if !ok {
				logger.Warn("unknown framework id in config", "id", id)
				continue
			}
			fws = append(fws, f)
		}
		return activation.Context{
			WorkspaceRoot:    root,
			ActiveFileDir:    dir,
			ActivationFolder: root,
			Frameworks:       fws,
		}
	}

	deps := manifest.NewResolver(logger)
	act := activation.NewResolver(deps, registry, logger)
	return act.Resolve(root, dir)
}
