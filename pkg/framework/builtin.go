// SPDX-License-Identifier: MPL-2.0

package framework

import "localescope/pkg/manifest"

// dependsOn builds the common activation predicate: the framework applies
// when any of the given dependency names is declared.
func dependsOn(names ...string) func(deps manifest.DependencySet, root string) bool {
	return func(deps manifest.DependencySet, _ string) bool {
		return deps.HasAny(names...)
	}
}

// BuiltIn returns the built-in framework catalog in registry order. The
// order is a tie-break: when several frameworks activate at the same
// folder, the earliest one's non-auto preferences win.
func BuiltIn() []*Framework {
	return []*Framework{
		{
			ID:                 "vue",
			DisplayName:        "Vue I18n",
			LanguageIDs:        []string{"vue", "javascript", "typescript"},
			Detect:             dependsOn("vue-i18n", "vue-i18n-next", "vuex-i18n", "@nuxtjs/i18n", "nuxt-i18n"),
			KeyStyle:           KeyStyleNested,
			DirStructure:       DirStructureAuto,
			LocalePaths:        []string{"locales", "src/locales", "lang"},
			NamespaceDelimiter: ".",
			UsageRegexes: []string{
				`\$t\s*\(\s*['"]({key})['"]`,
				`(?:\bt|\$tc)\s*\(\s*['"]({key})['"]`,
			},
			UsageRegexesByLanguage: map[string][]string{
				"vue": {`v-t\s*=\s*['"]({key})['"]`},
			},
			PathMatchers: []PathMatcherRule{
				{Structure: DirStructureFile, Pattern: "{locale}.{ext}"},
				{Structure: DirStructureDir, Pattern: "{locale}/{namespace}.{ext}"},
			},
			Parsers: []string{"json", "yaml", "json5"},
		},
		{
			ID:                 "react-i18next",
			DisplayName:        "react-i18next",
			LanguageIDs:        []string{"javascript", "typescript", "javascriptreact", "typescriptreact"},
			Detect:             dependsOn("react-i18next", "i18next", "next-i18next"),
			KeyStyle:           KeyStyleNested,
			DirStructure:       DirStructureDir,
			LocalePaths:        []string{"public/locales", "locales", "src/locales"},
			NamespaceDelimiter: ":",
			UsageRegexes: []string{
				`\bt\s*\(\s*['"]({key})['"]`,
				`i18nKey\s*=\s*['"]({key})['"]`,
			},
			PathMatchers: []PathMatcherRule{
				{Structure: DirStructureFile, Pattern: "{locale}.{ext}"},
				{Structure: DirStructureDir, Pattern: "{locale}/{namespace}.{ext}"},
			},
			Parsers:  []string{"json", "json5"},
			Features: []string{FeatureNamespace},
		},
		{
			ID:                 "ngx-translate",
			DisplayName:        "ngx-translate",
			LanguageIDs:        []string{"typescript", "html"},
			Detect:             dependsOn("@ngx-translate/core"),
			KeyStyle:           KeyStyleNested,
			DirStructure:       DirStructureFile,
			LocalePaths:        []string{"src/assets/i18n", "assets/i18n"},
			NamespaceDelimiter: ".",
			UsageRegexes: []string{
				`translate\.(?:get|instant|stream)\s*\(\s*['"]({key})['"]`,
				`['"]({key})['"]\s*\|\s*translate`,
			},
			PathMatchers: []PathMatcherRule{
				{Structure: DirStructureFile, Pattern: "{locale}.{ext}"},
			},
			Parsers: []string{"json"},
		},
		{
			ID:                 "svelte-i18n",
			DisplayName:        "svelte-i18n",
			LanguageIDs:        []string{"svelte", "javascript", "typescript"},
			Detect:             dependsOn("svelte-i18n", "@sveltejs/i18n"),
			KeyStyle:           KeyStyleNested,
			DirStructure:       DirStructureFile,
			LocalePaths:        []string{"src/locales", "locales", "src/lib/locales"},
			NamespaceDelimiter: ".",
			UsageRegexes: []string{
				`\$_\s*\(\s*['"]({key})['"]`,
				`\$format\s*\(\s*['"]({key})['"]`,
			},
			PathMatchers: []PathMatcherRule{
				{Structure: DirStructureFile, Pattern: "{locale}.{ext}"},
			},
			Parsers: []string{"json"},
		},
		{
			ID:                 "next-intl",
			DisplayName:        "next-intl",
			LanguageIDs:        []string{"javascript", "typescript", "javascriptreact", "typescriptreact"},
			Detect:             dependsOn("next-intl"),
			KeyStyle:           KeyStyleNested,
			DirStructure:       DirStructureFile,
			LocalePaths:        []string{"messages", "locales"},
			NamespaceDelimiter: ".",
			UsageRegexes: []string{
				`useTranslations\s*\(\s*['"]({key})['"]`,
				`getTranslations\s*\(\s*['"]({key})['"]`,
			},
			PathMatchers: []PathMatcherRule{
				{Structure: DirStructureFile, Pattern: "{locale}.{ext}"},
			},
			Parsers:  []string{"json"},
			Features: []string{FeatureNamespace},
		},
		{
			ID:                 "flutter",
			DisplayName:        "Flutter Intl",
			LanguageIDs:        []string{"dart"},
			Detect:             dependsOn("flutter_localizations", "easy_localization", "intl", "intl_utils"),
			KeyStyle:           KeyStyleFlat,
			DirStructure:       DirStructureFile,
			LocalePaths:        []string{"lib/l10n", "assets/translations"},
			NamespaceDelimiter: ".",
			UsageRegexes: []string{
				`S\.of\(context\)\.({key})\b`,
				`['"]({key})['"]\.tr\(\)`,
			},
			PathMatchers: []PathMatcherRule{
				{Structure: DirStructureFile, Pattern: "intl_{locale}.{ext}"},
				{Structure: DirStructureFile, Pattern: "{locale}.{ext}"},
			},
			Parsers: []string{"arb", "json"},
		},
		{
			ID:                 "laravel",
			DisplayName:        "Laravel",
			LanguageIDs:        []string{"php", "blade"},
			Detect:             dependsOn("laravel/framework", "laravel-lang/lang"),
			KeyStyle:           KeyStyleNested,
			DirStructure:       DirStructureDir,
			LocalePaths:        []string{"lang", "resources/lang"},
			NamespaceDelimiter: ".",
			UsageRegexes: []string{
				`__\s*\(\s*['"]({key})['"]`,
				`trans(?:_choice)?\s*\(\s*['"]({key})['"]`,
				`@lang\s*\(\s*['"]({key})['"]`,
			},
			PathMatchers: []PathMatcherRule{
				{Structure: DirStructureDir, Pattern: "{locale}/{namespace}.{ext}"},
				{Structure: DirStructureFile, Pattern: "{locale}.{ext}"},
			},
			Parsers:  []string{"php", "json"},
			Features: []string{FeatureNamespace},
		},
		{
			ID:                 "rust-i18n",
			DisplayName:        "rust-i18n",
			LanguageIDs:        []string{"rust"},
			Detect:             dependsOn("rust-i18n", "cargo-i18n"),
			KeyStyle:           KeyStyleFlat,
			DirStructure:       DirStructureFile,
			LocalePaths:        []string{"locales"},
			NamespaceDelimiter: ".",
			UsageRegexes: []string{
				`\bt!\s*\(\s*"({key})"`,
			},
			PathMatchers: []PathMatcherRule{
				{Structure: DirStructureFile, Pattern: "{locale}.{ext}"},
			},
			Parsers: []string{"yaml", "json"},
		},
	}
}
