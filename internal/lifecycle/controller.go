// SPDX-License-Identifier: MPL-2.0

package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"localescope/internal/activation"
	"localescope/internal/config"
	"localescope/pkg/framework"
)

var (
	// ErrDisposed is returned by Update after Dispose has run.
	ErrDisposed = errors.New("lifecycle: controller disposed")

	// ErrLoaderInit wraps a loader Init failure.
	ErrLoaderInit = errors.New("lifecycle: loader init failed")
)

type (
	// ContextResolver computes the activation context for a root and an
	// active-file directory. *activation.Resolver satisfies it.
	ContextResolver interface {
		Resolve(workspaceRoot, activeFileDir string) activation.Context
	}

	// Settings is the derived-settings surface the controller drives.
	// *settings.Cache satisfies it.
	Settings interface {
		SetContext(actx activation.Context)
		SetConfig(cfg *config.Config)
		SetUsageConfig(cfg *config.Config)
		Invalidate()
		InvalidateUsage()
		EnabledParsers() []string
		LocalePaths() []string
	}

	// ConfigProvider re-reads configuration from its source. Invoked on
	// reload- and refresh-class config changes when set; when nil the
	// controller keeps using the Config it was constructed with.
	ConfigProvider func() (*config.Config, error)

	// Options configures a Controller. Config, Resolver, Registry,
	// Settings and NewLoader are required.
	Options struct {
		Config    *config.Config
		Provider  ConfigProvider
		Resolver  ContextResolver
		Registry  *framework.Registry
		Settings  Settings
		NewLoader LoaderFactory
		Hooks     Hooks
		Logger    *slog.Logger
	}

	// Controller is the lifecycle state machine. Events flow in through
	// Update; loader creation, reuse and teardown plus the outbound
	// hooks flow out. All state is guarded by a single mutex, so
	// concurrent Update calls serialize.
	Controller struct {
		mu sync.Mutex

		cfg       *config.Config
		provider  ConfigProvider
		resolver  ContextResolver
		registry  *framework.Registry
		settings  Settings
		newLoader LoaderFactory
		hooks     Hooks
		logger    *slog.Logger

		root       string
		activeFile string
		actx       activation.Context
		enabled    bool

		// loaders caches one loader per root; liveRoot names the one
		// currently active. Cached loaders survive root switches while
		// enabled; disabling disposes them all and clears the cache,
		// and reload-class config changes recreate the live one.
		loaders  map[string]Loader
		liveRoot string

		disposed bool
	}
)

// New validates the options and returns an idle controller. No loader
// exists and the enabled state is false until the first Update.
func New(opts Options) (*Controller, error) {
	switch {
	case opts.Config == nil:
		return nil, errors.New("lifecycle: Options.Config is required")
	case opts.Resolver == nil:
		return nil, errors.New("lifecycle: Options.Resolver is required")
	case opts.Registry == nil:
		return nil, errors.New("lifecycle: Options.Registry is required")
	case opts.Settings == nil:
		return nil, errors.New("lifecycle: Options.Settings is required")
	case opts.NewLoader == nil:
		return nil, errors.New("lifecycle: Options.NewLoader is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Controller{
		cfg:       opts.Config,
		provider:  opts.Provider,
		resolver:  opts.Resolver,
		registry:  opts.Registry,
		settings:  opts.Settings,
		newLoader: opts.NewLoader,
		hooks:     opts.Hooks,
		logger:    logger,
		loaders:   map[string]Loader{},
	}, nil
}

// Update feeds one environment event through the state machine. It
// mutates state first and fires hooks after, so hook observers always
// see the post-transition state. Redundant events are no-ops and fire
// nothing.
func (c *Controller) Update(ctx context.Context, ev Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return ErrDisposed
	}

	forceReload := false

	switch ev.Kind {
	case EventRootChanged:
		if ev.Root == c.root {
			return nil
		}
		c.root = ev.Root
		c.activeFile = ""
		c.logger.Debug("workspace root changed", "root", ev.Root)
		if c.hooks.RootChanged != nil {
			c.hooks.RootChanged(ev.Root)
		}

	case EventActiveFileChanged, EventDocumentOpened:
		c.activeFile = ev.Path

	case EventDocumentClosed:
		if ev.Path != "" && ev.Path != c.activeFile {
			return nil
		}
		c.activeFile = ""

	case EventManifestChanged:
		// No controller state moves; the dependency surface on disk
		// did, so the walk below must rerun unconditionally.
		c.logger.Debug("manifest changed", "root", c.root)

	case EventConfigChanged:
		class := c.cfg.Classify(ev.Keys)
		if class == config.ChangeUnrelated {
			return nil
		}
		if err := c.reloadConfig(class); err != nil {
			return err
		}
		if class == config.ChangeUsageRefresh {
			return nil
		}
		forceReload = class == config.ChangeReload

	default:
		return fmt.Errorf("lifecycle: unknown event kind %d", ev.Kind)
	}

	return c.refresh(ctx, forceReload)
}

// reloadConfig swaps in a fresh Config via the provider when one is
// set, then pushes it into settings. Usage-refresh-class changes take
// the narrow path that keeps the non-usage memos; anything stronger
// goes through SetConfig, which invalidates every derived value.
func (c *Controller) reloadConfig(class config.ChangeClass) error {
	if c.provider != nil {
		cfg, err := c.provider()
		if err != nil {
			return fmt.Errorf("lifecycle: reloading config: %w", err)
		}
		c.cfg = cfg
	}
	if class == config.ChangeUsageRefresh {
		c.settings.SetUsageConfig(c.cfg)
		return nil
	}
	c.settings.SetConfig(c.cfg)
	return nil
}

// refresh recomputes the activation context and reconciles the enabled
// state and the live loader with it.
func (c *Controller) refresh(ctx context.Context, forceReload bool) error {
	actx := c.computeContext()
	c.actx = actx
	c.settings.SetContext(actx)

	enabled := c.computeEnabled(actx)
	c.logger.Debug("activation refreshed",
		"root", c.root,
		"frameworks", actx.FrameworkIDs(),
		"enabled", enabled)

	switch {
	case enabled && !c.enabled:
		changed, err := c.activateLoader(ctx, actx.WorkspaceRoot, forceReload)
		if err != nil {
			// A loader that cannot initialize leaves the engine
			// disabled rather than half-enabled.
			return err
		}
		c.enabled = true
		c.notifyLoader(changed, actx.WorkspaceRoot)
		if c.hooks.EnabledChanged != nil {
			c.hooks.EnabledChanged(true)
		}

	case !enabled && c.enabled:
		c.enabled = false
		err := c.disposeAll()
		if c.hooks.EnabledChanged != nil {
			c.hooks.EnabledChanged(false)
		}
		return err

	case enabled && forceReload:
		changed, err := c.activateLoader(ctx, actx.WorkspaceRoot, true)
		if err != nil {
			return err
		}
		c.notifyLoader(changed, actx.WorkspaceRoot)

	case enabled && c.liveRoot != actx.WorkspaceRoot:
		changed, err := c.activateLoader(ctx, actx.WorkspaceRoot, false)
		if err != nil {
			return err
		}
		c.notifyLoader(changed, actx.WorkspaceRoot)
	}
	return nil
}

func (c *Controller) notifyLoader(changed bool, root string) {
	if changed && c.hooks.LoaderChanged != nil {
		c.hooks.LoaderChanged(root)
	}
}

// computeContext resolves the activation context for the current root
// and active file. An explicit framework id list in config bypasses the
// dependency walk entirely: the listed frameworks activate at the root.
func (c *Controller) computeContext() activation.Context {
	if c.root == "" {
		return activation.Context{}
	}

	if len(c.cfg.Frameworks) > 0 {
		var fws []*framework.Framework
		for _, id := range c.cfg.Frameworks {
			f, ok := c.registry.Lookup(id)
			if !ok {
				c.logger.Warn("unknown framework id in config", "id", id)
				continue
			}
			fws = append(fws, f)
		}
		return activation.Context{
			WorkspaceRoot:    c.root,
			ActiveFileDir:    c.activeFileDir(),
			ActivationFolder: c.root,
			Frameworks:       fws,
		}
	}

	return c.resolver.Resolve(c.root, c.activeFileDir())
}

func (c *Controller) activeFileDir() string {
	if c.activeFile == "" {
		return c.root
	}
	return filepath.Dir(c.activeFile)
}

// computeEnabled applies the enablement invariant: not disabled by
// config, at least one framework active, at least one parser enabled,
// and at least one locale directory resolvable.
func (c *Controller) computeEnabled(actx activation.Context) bool {
	if c.cfg.Disabled || actx.Empty() {
		return false
	}
	if len(c.settings.EnabledParsers()) == 0 {
		return false
	}
	return len(c.settings.LocalePaths()) > 0
}

// activateLoader makes the loader for root the live one, creating it if
// the cache has none. force disposes and recreates an existing loader,
// which is how reload-class config changes propagate to loader state.
// The returned flag tells the caller whether a LoaderChanged
// notification is due; the caller fires it after all state mutation.
func (c *Controller) activateLoader(ctx context.Context, root string, force bool) (bool, error) {
	if force {
		if ld, ok := c.loaders[root]; ok {
			if err := ld.Dispose(); err != nil {
				c.logger.Warn("disposing stale loader", "root", root, "error", err)
			}
			delete(c.loaders, root)
		}
	}

	ld, ok := c.loaders[root]
	if !ok {
		ld = c.newLoader(root)
		if err := ld.Init(ctx); err != nil {
			return false, fmt.Errorf("%w: root %s: %w", ErrLoaderInit, root, err)
		}
		c.loaders[root] = ld
		c.logger.Debug("loader initialized", "root", root)
	}

	changed := c.liveRoot != root || force
	c.liveRoot = root
	return changed, nil
}

// disposeAll tears down every cached loader, for the current root and
// any previously visited ones.
func (c *Controller) disposeAll() error {
	var errs []error
	for root, ld := range c.loaders {
		if err := ld.Dispose(); err != nil {
			errs = append(errs, fmt.Errorf("disposing loader for %s: %w", root, err))
		}
		c.logger.Debug("loader disposed", "root", root)
	}
	c.loaders = map[string]Loader{}
	c.liveRoot = ""
	return errors.Join(errs...)
}

// Enabled reports the current enabled state.
func (c *Controller) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

// Context returns the most recently computed activation context.
func (c *Controller) Context() activation.Context {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.actx
}

// Root returns the current workspace root.
func (c *Controller) Root() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.root
}

// Loader returns the live loader, or nil when disabled.
func (c *Controller) Loader() Loader {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.enabled {
		return nil
	}
	return c.loaders[c.liveRoot]
}

// ReloadLoader asks the live loader to re-read its sources. No-op when
// disabled. Used when locale files change on disk without any config or
// context change.
func (c *Controller) ReloadLoader(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return ErrDisposed
	}
	if !c.enabled {
		return nil
	}
	ld, ok := c.loaders[c.liveRoot]
	if !ok {
		return nil
	}
	return ld.Reload(ctx)
}

// Dispose tears the controller down. Every loader is disposed and
// further Updates return ErrDisposed. Safe to call more than once.
func (c *Controller) Dispose() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return nil
	}
	c.disposed = true
	c.enabled = false
	return c.disposeAll()
}
