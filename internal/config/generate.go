// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"strings"
)

// GenerateCUE renders cfg as a localescope.cue file. Only the explicit
// override fields appear; the allow-lists are emitted solely when they
// differ from the defaults, so a freshly generated file stays minimal.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// localescope configuration file\n\n")

	sb.WriteString(fmt.Sprintf("disabled: %v\n", cfg.Disabled))
	sb.WriteString(fmt.Sprintf("key_style: %q\n", orAuto(cfg.KeyStyle)))
	sb.WriteString(fmt.Sprintf("dir_structure: %q\n", orAuto(cfg.DirStructure)))

	writeStringList(&sb, "frameworks", cfg.Frameworks)
	writeStringList(&sb, "parsers", cfg.Parsers)
	writeStringList(&sb, "locales_paths", cfg.LocalesPaths)
	writeStringList(&sb, "ignored_locales", cfg.IgnoredLocales)
	writeStringList(&sb, "usage_match_append", cfg.UsageMatchAppend)

	if cfg.UsageMatchRegex != "" {
		sb.WriteString(fmt.Sprintf("\nusage_match_regex: %q\n", cfg.UsageMatchRegex))
	}
	if cfg.PathMatcher != "" {
		sb.WriteString(fmt.Sprintf("\npath_matcher: %q\n", cfg.PathMatcher))
	}

	if len(cfg.LocalesPathsByFolder) > 0 {
		sb.WriteString("\nlocales_paths_by_folder: {\n")
		for folder, paths := range cfg.LocalesPathsByFolder {
			sb.WriteString(fmt.Sprintf("\t%q: [", folder))
			for i, p := range paths {
				if i > 0 {
					sb.WriteString(", ")
				}
				sb.WriteString(fmt.Sprintf("%q", p))
			}
			sb.WriteString("]\n")
		}
		sb.WriteString("}\n")
	}

	defaults := DefaultConfig()
	writeListIfChanged(&sb, "reload_keys", cfg.ReloadKeys, defaults.ReloadKeys)
	writeListIfChanged(&sb, "refresh_keys", cfg.RefreshKeys, defaults.RefreshKeys)
	writeListIfChanged(&sb, "usage_refresh_keys", cfg.UsageRefreshKeys, defaults.UsageRefreshKeys)

	return sb.String()
}

func orAuto(v string) string {
	if v == "" {
		return "auto"
	}
	return v
}

func writeStringList(sb *strings.Builder, key string, values []string) {
	if len(values) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("\n%s: [\n", key))
	for _, v := range values {
		sb.WriteString(fmt.Sprintf("\t%q,\n", v))
	}
	sb.WriteString("]\n")
}

func writeListIfChanged(sb *strings.Builder, key string, values, defaults []string) {
	if len(values) == len(defaults) {
		same := true
		for i := range values {
			if values[i] != defaults[i] {
				same = false
				break
			}
		}
		if same {
			return
		}
	}
	writeStringList(sb, key, values)
}
