// SPDX-License-Identifier: MPL-2.0

package settings

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// LocalePaths resolves the locale directories for the current activation
// context, memoized until invalidation. Candidates come from the
// locales_paths override (folder-scoped first, then global) or, absent
// an override, from the active frameworks' conventional paths. Each
// candidate is resolved relative to the activation folder (the workspace
// root when there is none) and kept only if a matching directory exists.
// Candidates may be doublestar glob patterns.
//
// An empty result means locale paths are unresolvable, which disables
// the engine.
func (c *Cache) LocalePaths() []string {
	if c.localePathsBuilt {
		return c.localePaths
	}

	base := c.activationFolder
	if base == "" {
		base = c.workspaceRoot
	}

	var resolved []string
	if base != "" {
		seen := make(map[string]struct{})
		for _, candidate := range c.localeCandidates() {
			for _, dir := range resolveLocaleDir(base, candidate) {
				if _, dup := seen[dir]; dup {
					continue
				}
				seen[dir] = struct{}{}
				resolved = append(resolved, dir)
			}
		}
	}

	c.localePaths = resolved
	c.localePathsBuilt = true
	if len(resolved) == 0 {
		c.logger.Debug("no locale paths resolvable", "base", base)
	}
	return resolved
}

// localeCandidates returns the unresolved candidate paths in
// override-first order.
func (c *Cache) localeCandidates() []string {
	relFolder := ""
	if c.activationFolder != "" && c.workspaceRoot != "" {
		if rel, err := filepath.Rel(c.workspaceRoot, c.activationFolder); err == nil {
			relFolder = filepath.ToSlash(rel)
		}
	}

	if override := c.cfg.LocalesPathsFor(relFolder); len(override) > 0 {
		return override
	}

	var candidates []string
	seen := make(map[string]struct{})
	for _, f := range c.frameworks {
		for _, p := range f.LocalePaths {
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			candidates = append(candidates, p)
		}
	}
	return candidates
}

// resolveLocaleDir expands one candidate against base, returning the
// absolute paths of existing directories only.
func resolveLocaleDir(base, candidate string) []string {
	candidate = filepath.ToSlash(candidate)

	if !strings.ContainsAny(candidate, "*?[{") {
		full := filepath.Join(base, filepath.FromSlash(candidate))
		if info, err := os.Stat(full); err == nil && info.IsDir() {
			return []string{full}
		}
		return nil
	}

	matches, err := doublestar.Glob(os.DirFS(base), candidate)
	if err != nil {
		return nil
	}
	var dirs []string
	for _, m := range matches {
		full := filepath.Join(base, filepath.FromSlash(m))
		if info, err := os.Stat(full); err == nil && info.IsDir() {
			dirs = append(dirs, full)
		}
	}
	return dirs
}
