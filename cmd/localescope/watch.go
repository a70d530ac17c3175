// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"localescope/internal/activation"
	"localescope/internal/config"
	"localescope/internal/lifecycle"
	"localescope/internal/settings"
	"localescope/internal/watch"
	"localescope/pkg/framework"
	"localescope/pkg/manifest"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Watch the workspace and react to manifest, config, and locale changes",
	Long: `Run the full engine against a workspace and keep it running: manifest
changes re-resolve the active frameworks, localescope.cue changes are
triaged per key (reload, refresh, usage-refresh, or ignored), and locale
file changes reload the loader. Stop with Ctrl-C.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
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

	registry := framework.Default()
	deps := manifest.NewResolver(logger)
	resolver := activation.NewResolver(deps, registry, logger)

	cache, err := settings.New(cfg, newTerminalPrompter(), logger)
	if err != nil {
		return err
	}

	ctrl, err := lifecycle.New(lifecycle.Options{
		Config:   cfg,
		Provider: func() (*config.Config, error) { return loadConfig(root) },
		Resolver: resolver,
		Registry: registry,
		Settings: cache,
		NewLoader: func(loaderRoot string) lifecycle.Loader {
			return newLocaleLoader(loaderRoot, cache, logger)
		},
		Hooks: lifecycle.Hooks{
			RootChanged: func(r string) {
				fmt.Println(SubtitleStyle.Render("Workspace root: ") + PathStyle.Render(r))
			},
			EnabledChanged: func(on bool) {
				if on {
					fmt.Println(SuccessStyle.Render("Engine enabled."))
				} else {
					fmt.Println(WarningStyle.Render("Engine disabled."))
				}
			},
			LoaderChanged: func(r string) {
				fmt.Println(SubtitleStyle.Render("Loader active for: ") + PathStyle.Render(r))
			},
		},
		Logger: logger,
	})
	if err != nil {
		return err
	}
	defer ctrl.Dispose() //nolint:errcheck // best-effort teardown on exit

	ctx := cmd.Context()
	if err := ctrl.Update(ctx, lifecycle.Event{Kind: lifecycle.EventRootChanged, Root: root}); err != nil {
		return err
	}
	if !ctrl.Enabled() {
		fmt.Println(WarningStyle.Render("Nothing activates in this workspace; watching for changes anyway."))
	}

	d := &dispatcher{
		ctrl:   ctrl,
		cache:  cache,
		root:   root,
		last:   cfg,
		logger: logger,
	}
	w, err := watch.New(watch.Config{
		Root:             root,
		ManifestPatterns: manifestPatterns(),
		ConfigPatterns:   []string{config.ConfigFileName},
		LocalePatterns:   localePatterns(root, cache),
		Logger:           logger,
		OnChange:         d.dispatch,
	})
	if err != nil {
		return err
	}
	d.watcher = w

	fmt.Println(SubtitleStyle.Render("Watching ") + PathStyle.Render(root) + SubtitleStyle.Render(" (Ctrl-C to stop)"))
	return w.Run(ctx)
}

// dispatcher maps classified filesystem changes onto lifecycle events.
// last is the config the engine was last told about, kept only to
// compute key diffs against fresh loads.
type dispatcher struct {
	ctrl    *lifecycle.Controller
	cache   *settings.Cache
	watcher *watch.Watcher
	root    string
	last    *config.Config
	logger  *slog.Logger
}

// dispatch handles one debounced batch. A manifest change subsumes
// locale changes: the re-resolution it triggers already refreshes the
// loader. After the batch the locale watch globs are recomputed, since
// manifest and config changes can move the resolved locale directories.
func (d *dispatcher) dispatch(ctx context.Context, changes []watch.Change) error {
	var manifestHit, configHit, localeHit bool
	for _, change := range changes {
		d.logger.Debug("change observed", "path", change.Path, "kind", change.Kind.String())
		switch change.Kind {
		case watch.KindManifest:
			manifestHit = true
		case watch.KindConfig:
			configHit = true
		case watch.KindLocale:
			localeHit = true
		}
	}

	if configHit {
		updated, err := loadConfig(d.root)
		if err != nil {
			fmt.Fprintln(os.Stderr, ErrorStyle.Render("Config error: ")+formatErrorForDisplay(err, verbose))
		} else if keys := config.Diff(d.last, updated); len(keys) > 0 {
			d.logger.Debug("config keys changed", "keys", keys)
			if err := d.ctrl.Update(ctx, lifecycle.Event{Kind: lifecycle.EventConfigChanged, Keys: keys}); err != nil {
				return err
			}
			d.last = updated
		}
	}

	if manifestHit {
		if err := d.ctrl.Update(ctx, lifecycle.Event{Kind: lifecycle.EventManifestChanged}); err != nil {
			return err
		}
	} else if localeHit {
		if err := d.ctrl.ReloadLoader(ctx); err != nil {
			return err
		}
	}

	if err := d.watcher.SetLocalePatterns(localePatterns(d.root, d.cache)); err != nil {
		d.logger.Warn("locale watch globs not updated", "error", err)
	}
	return nil
}

// manifestPatterns builds watch globs for every supported manifest
// filename, at any depth.
func manifestPatterns() []string {
	formats := manifest.DefaultFormats()
	patterns := make([]string, 0, len(formats))
	for _, f := range formats {
		patterns = append(patterns, "**/"+f.Filename)
	}
	return patterns
}

// localePatterns converts the resolved locale directories into watch
// globs relative to the root. Empty when nothing resolved yet; manifest
// or config events will still arrive and flip the engine on.
func localePatterns(root string, cache *settings.Cache) []string {
	var patterns []string
	for _, p := range cache.LocalePaths() {
		rel, err := filepath.Rel(root, p)
		if err != nil || strings.HasPrefix(rel, "..") {
			continue
		}
		patterns = append(patterns, filepath.ToSlash(rel)+"/**")
	}
	return patterns
}

// localeLoader is the per-root loader resource: it walks the resolved
// locale directories and indexes the files the enabled parsers can
// read. Reload rebuilds the index; Dispose drops it.
type localeLoader struct {
	root   string
	cache  *settings.Cache
	logger *slog.Logger
	files  []string
}

func newLocaleLoader(root string, cache *settings.Cache, logger *slog.Logger) *localeLoader {
	return &localeLoader{root: root, cache: cache, logger: logger}
}

func (l *localeLoader) Root() string { return l.root }

func (l *localeLoader) Init(ctx context.Context) error {
	return l.Reload(ctx)
}

func (l *localeLoader) Reload(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	exts := make(map[string]struct{})
	for _, ext := range settings.ParserExtensions(l.cache.EnabledParsers()) {
		exts["."+ext] = struct{}{}
	}

	var files []string
	for _, dir := range l.cache.LocalePaths() {
		walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil //nolint:nilerr // skip unreadable entries
			}
			if _, ok := exts[strings.ToLower(filepath.Ext(path))]; ok {
				files = append(files, path)
			}
			return nil
		})
		if walkErr != nil {
			return fmt.Errorf("walking locale directory %q: %w", dir, walkErr)
		}
	}

	l.files = files
	l.logger.Info("locale files indexed", "root", l.root, "count", len(files))
	return nil
}

func (l *localeLoader) Dispose() error {
	l.files = nil
	l.logger.Debug("loader disposed", "root", l.root)
	return nil
}
