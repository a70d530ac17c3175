// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"slices"
)

const (
	// ChangeUnrelated means the key matches none of the allow-lists; the
	// change is ignored entirely.
	ChangeUnrelated ChangeClass = iota
	// ChangeUsageRefresh invalidates only usage-analysis caches.
	ChangeUsageRefresh
	// ChangeRefresh invalidates all derived-settings caches without
	// touching the loader resource.
	ChangeRefresh
	// ChangeReload additionally forces the loader resource to be
	// re-created.
	ChangeReload
)

var (
	// ErrInvalidKeyStyle is returned when a key_style value is not
	// recognized.
	ErrInvalidKeyStyle = errors.New("invalid key style")
	// ErrInvalidDirStructure is returned when a dir_structure value is
	// not recognized.
	ErrInvalidDirStructure = errors.New("invalid directory structure")
)

type (
	// ChangeClass says how the lifecycle controller must react to a
	// changed configuration key. Classes are ordered by strength so a
	// multi-key change can take the maximum.
	ChangeClass int

	// Config is the explicit user-override surface. Zero values mean "no
	// override"; the active framework set supplies the defaults.
	Config struct {
		// Disabled turns the whole engine off regardless of activation.
		Disabled bool `mapstructure:"disabled"`

		// Frameworks, when non-empty, is the explicit framework-id list:
		// the nearest-ancestor walk is bypassed and these ids are taken
		// as active for the current workspace root.
		Frameworks []string `mapstructure:"frameworks"`

		// Parsers overrides the enabled locale-file parser ids.
		Parsers []string `mapstructure:"parsers"`

		// KeyStyle overrides the key style ("auto", "nested", "flat").
		KeyStyle string `mapstructure:"key_style"`

		// DirStructure overrides the locale-file layout ("auto", "file",
		// "dir").
		DirStructure string `mapstructure:"dir_structure"`

		// UsageMatchRegex, when set, replaces the frameworks' usage
		// regexes outright.
		UsageMatchRegex string `mapstructure:"usage_match_regex"`

		// UsageMatchAppend is always appended to the derived usage
		// regexes, whether they come from frameworks or the override.
		UsageMatchAppend []string `mapstructure:"usage_match_append"`

		// PathMatcher, when set, is the sole locale-file path template.
		PathMatcher string `mapstructure:"path_matcher"`

		// LocalesPaths overrides the locale directories, relative to the
		// activation folder.
		LocalesPaths []string `mapstructure:"locales_paths"`

		// LocalesPathsByFolder scopes locale-directory overrides to a
		// specific folder (keyed by path relative to the workspace root).
		LocalesPathsByFolder map[string][]string `mapstructure:"locales_paths_by_folder"`

		// IgnoredLocales lists locale codes excluded from loading.
		IgnoredLocales []string `mapstructure:"ignored_locales"`

		// ReloadKeys, RefreshKeys, and UsageRefreshKeys are the three
		// configuration-key allow-lists driving ClassifyKey.
		ReloadKeys       []string `mapstructure:"reload_keys"`
		RefreshKeys      []string `mapstructure:"refresh_keys"`
		UsageRefreshKeys []string `mapstructure:"usage_refresh_keys"`
	}
)

// DefaultConfig returns the built-in defaults, including the three
// allow-lists.
func DefaultConfig() *Config {
	return &Config{
		KeyStyle:     "auto",
		DirStructure: "auto",
		ReloadKeys: []string{
			"locales_paths", "locales_paths_by_folder", "parsers", "dir_structure", "ignored_locales",
		},
		RefreshKeys: []string{
			"frameworks", "key_style", "path_matcher", "disabled",
		},
		UsageRefreshKeys: []string{
			"usage_match_regex", "usage_match_append",
		},
	}
}

// ClassifyKey maps a changed configuration key to its reaction class.
// Reload wins over refresh wins over usage-refresh when a key appears in
// several lists.
func (c *Config) ClassifyKey(key string) ChangeClass {
	switch {
	case slices.Contains(c.ReloadKeys, key):
		return ChangeReload
	case slices.Contains(c.RefreshKeys, key):
		return ChangeRefresh
	case slices.Contains(c.UsageRefreshKeys, key):
		return ChangeUsageRefresh
	default:
		return ChangeUnrelated
	}
}

// Classify returns the strongest reaction class across the given keys.
func (c *Config) Classify(keys []string) ChangeClass {
	class := ChangeUnrelated
	for _, key := range keys {
		if k := c.ClassifyKey(key); k > class {
			class = k
		}
	}
	return class
}

// Validate checks the constraints the CUE schema cannot express for
// values injected through the environment.
func (c *Config) Validate() error {
	switch c.KeyStyle {
	case "", "auto", "nested", "flat":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidKeyStyle, c.KeyStyle)
	}
	switch c.DirStructure {
	case "", "auto", "file", "dir":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidDirStructure, c.DirStructure)
	}
	return nil
}

// LocalesPathsFor returns the locale-directory override for the given
// folder (relative to the workspace root), falling back to the global
// override. Returns nil when neither is set.
func (c *Config) LocalesPathsFor(relFolder string) []string {
	if paths, ok := c.LocalesPathsByFolder[relFolder]; ok && len(paths) > 0 {
		return paths
	}
	return c.LocalesPaths
}
