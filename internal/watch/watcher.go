// SPDX-License-Identifier: MPL-2.0

// Package watch monitors a workspace root for the file changes the
// lifecycle cares about: package manifests, the localescope config
// file, and locale files. Events are debounced and classified before
// they reach the callback, so rapid editor write/rename sequences
// coalesce into a single invocation.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// defaultDebounce is the quiet period after the last filesystem event
// before the callback fires.
const defaultDebounce = 500 * time.Millisecond

// defaultIgnores excludes VCS metadata, dependency caches, build
// output, and editor swap files. These directories generate
// high-frequency noise and never hold manifests or locale files we
// would act on.
var defaultIgnores = []string{
	"**/.git/**",
	"**/.hg/**",
	"**/.svn/**",
	"**/node_modules/**",
	"**/vendor/**",
	"**/.dart_tool/**",
	"**/target/**",
	"**/*.swp",
	"**/*.swo",
	"**/*~",
	"**/.DS_Store",
}

// Kind classifies a change by what part of the engine must react.
type Kind int

const (
	// KindManifest is a package-manifest change; the activation walk
	// must rerun.
	KindManifest Kind = iota
	// KindConfig is a change to the localescope config file.
	KindConfig
	// KindLocale is a change under a resolved locale directory; only
	// the loader needs to reload.
	KindLocale
)

func (k Kind) String() string {
	switch k {
	case KindManifest:
		return "manifest"
	case KindConfig:
		return "config"
	case KindLocale:
		return "locale"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

type (
	// Change is one classified file change, with Path relative to the
	// watched root.
	Change struct {
		Path string
		Kind Kind
	}

	// Config holds the parameters for a Watcher. All patterns are
	// doublestar globs matched against slash-separated paths relative
	// to Root. Events matching none of the three pattern sets are
	// dropped.
	Config struct {
		// Root is the workspace root to watch. Required.
		Root string

		// ManifestPatterns select package manifests, e.g.
		// "**/package.json".
		ManifestPatterns []string

		// ConfigPatterns select the engine's own config file.
		ConfigPatterns []string

		// LocalePatterns select locale files, e.g. "locales/**".
		LocalePatterns []string

		// Ignore patterns are merged with the built-in defaults.
		Ignore []string

		// Debounce overrides defaultDebounce when positive.
		Debounce time.Duration

		// OnChange receives the coalesced, classified changes after
		// the debounce window closes. A nil callback is a no-op.
		OnChange func(ctx context.Context, changes []Change) error

		// Logger receives skip and error diagnostics. Nil defaults to
		// slog.Default.
		Logger *slog.Logger
	}

	// Watcher monitors the workspace root and fires a debounced,
	// classified callback. Run must be called exactly once.
	Watcher struct {
		cfg      Config
		fsw      *fsnotify.Watcher
		ignores  []string
		logger   *slog.Logger
		debounce time.Duration
		root     string
		started  atomic.Bool

		// patMu guards localePatterns, the one pattern set that can
		// change while running: locale directories only become known
		// once the engine resolves them, and re-resolve after manifest
		// or config changes.
		patMu          sync.RWMutex
		localePatterns []string
	}
)

// New resolves the root, validates all patterns, and registers every
// non-ignored directory under the root with the underlying fsnotify
// watcher.
func New(cfg Config) (*Watcher, error) {
	if cfg.Root == "" {
		return nil, fmt.Errorf("watch: Config.Root is required")
	}
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve root: %w", err)
	}

	// Invalid globs fail at construction rather than silently never
	// matching at runtime.
	for label, patterns := range map[string][]string{
		"manifest": cfg.ManifestPatterns,
		"config":   cfg.ConfigPatterns,
		"locale":   cfg.LocalePatterns,
		"ignore":   cfg.Ignore,
	} {
		if err := validatePatterns(patterns, label); err != nil {
			return nil, err
		}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create fsnotify watcher: %w", err)
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ignores := make([]string, 0, len(defaultIgnores)+len(cfg.Ignore))
	ignores = append(ignores, defaultIgnores...)
	ignores = append(ignores, cfg.Ignore...)

	w := &Watcher{
		cfg:            cfg,
		fsw:            fsw,
		ignores:        ignores,
		logger:         logger,
		debounce:       debounce,
		root:           root,
		localePatterns: cfg.LocalePatterns,
	}

	if err := w.addDirectories(); err != nil {
		fsw.Close() //nolint:errcheck // best-effort cleanup
		return nil, err
	}
	return w, nil
}

// Run blocks until ctx is cancelled, processing filesystem events and
// dispatching debounced callbacks. It returns nil on clean context
// cancellation and propagates fatal watcher errors. A second call
// returns an error immediately.
func (w *Watcher) Run(ctx context.Context) error {
	if !w.started.CompareAndSwap(false, true) {
		return fmt.Errorf("watch: Run called more than once")
	}

	var (
		mu      sync.Mutex
		pending = make(map[string]Kind)
		timer   *time.Timer
		running atomic.Bool
	)

	// fire drains the pending set and invokes OnChange. The atomic
	// skip-if-busy guard prevents concurrent invocations when the
	// callback outlasts the debounce window; skipped firings reschedule
	// so the accumulated pending set is not lost.
	fire := func() {
		if ctx.Err() != nil {
			return
		}
		if !running.CompareAndSwap(false, true) {
			mu.Lock()
			if timer != nil {
				timer.Reset(w.debounce)
			}
			mu.Unlock()
			return
		}
		defer running.Store(false)

		mu.Lock()
		if len(pending) == 0 {
			mu.Unlock()
			return
		}
		changes := make([]Change, 0, len(pending))
		for path, kind := range pending {
			changes = append(changes, Change{Path: path, Kind: kind})
		}
		clear(pending)
		mu.Unlock()

		if w.cfg.OnChange != nil {
			if err := w.cfg.OnChange(ctx, changes); err != nil {
				w.logger.Error("watch callback failed", "error", err)
			}
		}
	}

	defer func() {
		mu.Lock()
		localTimer := timer
		mu.Unlock()
		if localTimer != nil && !localTimer.Stop() {
			select {
			case <-localTimer.C:
			default:
			}
		}
		if err := w.fsw.Close(); err != nil {
			w.logger.Warn("closing fsnotify watcher", "error", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-w.fsw.Events:
			if !ok {
				return fmt.Errorf("watch: fsnotify event channel closed unexpectedly")
			}

			rel, err := filepath.Rel(w.root, evt.Name)
			if err != nil {
				rel = evt.Name
			}
			if w.isIgnored(rel) {
				continue
			}

			// Recursive watches extend to directories created after
			// startup.
			if evt.Has(fsnotify.Create) {
				w.maybeAddDir(evt.Name)
			}

			kind, ok := w.classify(rel)
			if !ok {
				continue
			}

			mu.Lock()
			pending[rel] = maxKind(pending, rel, kind)
			if timer == nil {
				timer = time.AfterFunc(w.debounce, fire)
			} else {
				timer.Reset(w.debounce)
			}
			mu.Unlock()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return fmt.Errorf("watch: fsnotify error channel closed unexpectedly")
			}
			// Resource exhaustion (inotify watch limit, fd limits)
			// means the watcher is fundamentally broken; see
			// watcher_fatal_*.go.
			if isFatalFsnotifyError(err) {
				return fmt.Errorf("watch: fatal fsnotify error: %w", err)
			}
			w.logger.Warn("fsnotify error", "error", err)
		}
	}
}

// maxKind keeps the strongest classification when the same path churns
// within one debounce window. Manifest outranks config outranks locale.
func maxKind(pending map[string]Kind, rel string, kind Kind) Kind {
	if prev, ok := pending[rel]; ok && prev < kind {
		return prev
	}
	return kind
}

// classify matches rel against the three pattern sets, strongest class
// first. Paths matching nothing are dropped.
func (w *Watcher) classify(rel string) (Kind, bool) {
	normalized := filepath.ToSlash(rel)
	switch {
	case matchAny(w.cfg.ManifestPatterns, normalized):
		return KindManifest, true
	case matchAny(w.cfg.ConfigPatterns, normalized):
		return KindConfig, true
	}

	w.patMu.RLock()
	localeHit := matchAny(w.localePatterns, normalized)
	w.patMu.RUnlock()
	if localeHit {
		return KindLocale, true
	}
	return 0, false
}

// SetLocalePatterns replaces the locale watch globs. Called after the
// engine re-resolves its locale directories, so directories that only
// became resolvable after a manifest or config change get watched too.
func (w *Watcher) SetLocalePatterns(patterns []string) error {
	if err := validatePatterns(patterns, "locale"); err != nil {
		return err
	}
	w.patMu.Lock()
	w.localePatterns = patterns
	w.patMu.Unlock()
	return nil
}

// addDirectories walks the root and registers every non-ignored
// directory. Pattern filtering happens per-event, not here, so newly
// matching files in already-watched directories are always seen.
func (w *Watcher) addDirectories() error {
	walkErr := filepath.WalkDir(w.root, func(path string, d os.DirEntry, walkDirErr error) error {
		if walkDirErr != nil {
			// Permission errors on individual directories are common;
			// skip them instead of aborting the whole walk.
			w.logger.Warn("skipping inaccessible path", "path", path, "error", walkDirErr)
			return nil //nolint:nilerr // intentional skip
		}
		if !d.IsDir() {
			return nil
		}

		rel, relErr := filepath.Rel(w.root, path)
		if relErr != nil {
			return nil //nolint:nilerr // skip paths that cannot be made relative
		}
		if w.isIgnored(rel) || w.isIgnored(rel+"/") {
			return filepath.SkipDir
		}

		if addErr := w.fsw.Add(path); addErr != nil {
			return fmt.Errorf("watch: add directory %q: %w", path, addErr)
		}
		return nil
	})
	if walkErr != nil {
		return fmt.Errorf("watch: walk directory tree: %w", walkErr)
	}
	return nil
}

// maybeAddDir registers path if it is a non-ignored directory.
func (w *Watcher) maybeAddDir(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return
	}
	if w.isIgnored(rel) || w.isIgnored(rel+"/") {
		return
	}
	if err := w.fsw.Add(path); err != nil {
		w.logger.Warn("adding new directory", "path", path, "error", err)
	}
}

func (w *Watcher) isIgnored(rel string) bool {
	return matchAny(w.ignores, filepath.ToSlash(rel))
}

func matchAny(patterns []string, normalized string) bool {
	for _, pat := range patterns {
		if matched, err := doublestar.Match(pat, normalized); err == nil && matched {
			return true
		}
	}
	return false
}

func validatePatterns(patterns []string, label string) error {
	for _, pat := range patterns {
		if _, err := doublestar.Match(pat, ""); err != nil {
			return fmt.Errorf("watch: invalid %s pattern %q: %w", label, pat, err)
		}
	}
	return nil
}

// DefaultIgnores returns a copy of the built-in ignore patterns.
func DefaultIgnores() []string {
	out := make([]string, len(defaultIgnores))
	copy(out, defaultIgnores)
	return out
}
