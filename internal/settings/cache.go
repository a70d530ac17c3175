// SPDX-License-Identifier: MPL-2.0

package settings

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"

	"localescope/internal/activation"
	"localescope/internal/config"
	"localescope/pkg/framework"
)

// usageCacheSize bounds the memoized usage-regex lists. Keys are
// (languageID, filepath) pairs, so editors with many open files stay
// bounded.
const usageCacheSize = 256

// Prompter supplies the interactive key-style choice when neither an
// override nor a framework preference resolves it. ok=false means the
// user dismissed the prompt.
type Prompter interface {
	ChooseKeyStyle(ctx context.Context) (style framework.KeyStyle, ok bool, err error)
}

// Cache memoizes every derivation of (active frameworks, overrides).
// It is not safe for concurrent use; like the rest of the engine it
// relies on the host's single-threaded event ordering.
type Cache struct {
	cfg      *config.Config
	prompter Prompter
	logger   *slog.Logger

	frameworks       []*framework.Framework
	workspaceRoot    string
	activationFolder string

	usage             *lru.Cache[string, []*regexp.Regexp]
	pathMatchers      []*regexp.Regexp
	pathMatchersBuilt bool
	keyStyle          framework.KeyStyle
	localePaths       []string
	localePathsBuilt  bool
}

// New creates an empty cache over the given configuration. A nil
// prompter behaves like a prompt the user always dismisses; a nil logger
// falls back to slog.Default().
func New(cfg *config.Config, prompter Prompter, logger *slog.Logger) (*Cache, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	usage, err := lru.New[string, []*regexp.Regexp](usageCacheSize)
	if err != nil {
		return nil, fmt.Errorf("settings: create usage cache: %w", err)
	}

	return &Cache{
		cfg:      cfg,
		prompter: prompter,
		logger:   logger,
		usage:    usage,
	}, nil
}

// SetContext installs a new activation context. If the active framework
// set (or the folders it was resolved against) changed, every memoized
// derivation is cleared before the next read.
func (c *Cache) SetContext(actx activation.Context) {
	same := c.workspaceRoot == actx.WorkspaceRoot &&
		c.activationFolder == actx.ActivationFolder &&
		slices.Equal(frameworkIDs(c.frameworks), actx.FrameworkIDs())
	if same {
		return
	}

	c.frameworks = actx.Frameworks
	c.workspaceRoot = actx.WorkspaceRoot
	c.activationFolder = actx.ActivationFolder
	c.Invalidate()
}

// SetConfig installs new overrides and clears every memoized derivation.
func (c *Cache) SetConfig(cfg *config.Config) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	c.cfg = cfg
	c.Invalidate()
}

// SetUsageConfig installs new overrides when only the usage-match keys
// changed, clearing just the usage memo. The other derivations are
// unaffected by usage keys, so their memos stay valid; any broader
// change must go through SetConfig.
func (c *Cache) SetUsageConfig(cfg *config.Config) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	c.cfg = cfg
	c.InvalidateUsage()
}

// Invalidate clears all cached derivations at once. Stale partial
// invalidation is a correctness bug, so there is no narrower variant
// apart from InvalidateUsage.
func (c *Cache) Invalidate() {
	c.usage.Purge()
	c.pathMatchers = nil
	c.pathMatchersBuilt = false
	c.keyStyle = ""
	c.localePaths = nil
	c.localePathsBuilt = false
}

// InvalidateUsage clears only the usage-analysis regex cache, for
// configuration changes on the usage-refresh allow-list.
func (c *Cache) InvalidateUsage() {
	c.usage.Purge()
}

// Frameworks returns the active frameworks the cache derives from.
func (c *Cache) Frameworks() []*framework.Framework {
	return c.frameworks
}

// EnabledParsers returns the enabled parser ids in order: the explicit
// override when present (unknown ids dropped), else the deduplicated
// union of the active frameworks' parsers in framework order.
func (c *Cache) EnabledParsers() []string {
	if len(c.cfg.Parsers) > 0 {
		var out []string
		for _, id := range c.cfg.Parsers {
			if KnownParser(id) {
				out = append(out, id)
			} else {
				c.logger.Warn("unknown parser id in override", "parser", id)
			}
		}
		return out
	}

	var out []string
	seen := make(map[string]struct{})
	for _, f := range c.frameworks {
		for _, id := range f.Parsers {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

// NamespaceDelimiter returns the first active framework's delimiter,
// falling back to ".".
func (c *Cache) NamespaceDelimiter() string {
	for _, f := range c.frameworks {
		if f.NamespaceDelimiter != "" {
			return f.NamespaceDelimiter
		}
	}
	return "."
}

func frameworkIDs(frameworks []*framework.Framework) []string {
	ids := make([]string, len(frameworks))
	for i, f := range frameworks {
		ids[i] = f.ID
	}
	return ids
}
