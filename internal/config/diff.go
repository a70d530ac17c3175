// SPDX-License-Identifier: MPL-2.0

package config

import (
	"maps"
	"slices"
)

// Diff returns the configuration keys whose values differ between two
// configurations, named as they appear in the file. This is how config
// file rewrites on disk are translated into the per-key change events
// the lifecycle triages.
func Diff(old, updated *Config) []string {
	if old == nil {
		old = DefaultConfig()
	}
	if updated == nil {
		updated = DefaultConfig()
	}

	var keys []string
	add := func(key string, changed bool) {
		if changed {
			keys = append(keys, key)
		}
	}

	add("disabled", old.Disabled != updated.Disabled)
	add("frameworks", !slices.Equal(old.Frameworks, updated.Frameworks))
	add("parsers", !slices.Equal(old.Parsers, updated.Parsers))
	add("key_style", old.KeyStyle != updated.KeyStyle)
	add("dir_structure", old.DirStructure != updated.DirStructure)
	add("usage_match_regex", old.UsageMatchRegex != updated.UsageMatchRegex)
	add("usage_match_append", !slices.Equal(old.UsageMatchAppend, updated.UsageMatchAppend))
	add("path_matcher", old.PathMatcher != updated.PathMatcher)
	add("locales_paths", !slices.Equal(old.LocalesPaths, updated.LocalesPaths))
	add("locales_paths_by_folder", !maps.EqualFunc(old.LocalesPathsByFolder, updated.LocalesPathsByFolder, slices.Equal))
	add("ignored_locales", !slices.Equal(old.IgnoredLocales, updated.IgnoredLocales))
	add("reload_keys", !slices.Equal(old.ReloadKeys, updated.ReloadKeys))
	add("refresh_keys", !slices.Equal(old.RefreshKeys, updated.RefreshKeys))
	add("usage_refresh_keys", !slices.Equal(old.UsageRefreshKeys, updated.UsageRefreshKeys))

	return keys
}
