// SPDX-License-Identifier: MPL-2.0

// Package framework defines the capability-module catalog: named bundles
// of activation rules and preferences for the i18n ecosystems localescope
// understands. A framework activates when a project's declared
// dependencies (and occasionally its on-disk layout) match its predicate;
// the active set then drives every derived setting downstream.
package framework

import (
	"slices"

	"localescope/pkg/manifest"
)

const (
	// KeyStyleAuto defers the key-style decision to other frameworks,
	// explicit configuration, or the interactive prompt.
	KeyStyleAuto KeyStyle = "auto"
	// KeyStyleNested addresses translations through nested objects
	// ("login.title").
	KeyStyleNested KeyStyle = "nested"
	// KeyStyleFlat addresses translations through literal dotted keys.
	KeyStyleFlat KeyStyle = "flat"

	// DirStructureAuto lets path matching try both layouts.
	DirStructureAuto DirStructure = "auto"
	// DirStructureFile expects one locale file per locale
	// (locales/en.json).
	DirStructureFile DirStructure = "file"
	// DirStructureDir expects one directory per locale
	// (locales/en/common.json).
	DirStructureDir DirStructure = "dir"

	// FeatureNamespace marks frameworks whose locale files are split
	// into namespaces.
	FeatureNamespace = "namespace"
)

type (
	// KeyStyle is how translation keys address entries in locale files.
	KeyStyle string

	// DirStructure is the on-disk layout of locale files.
	DirStructure string

	// PathMatcherRule is a locale-file path template scoped to one
	// directory structure. Patterns use the placeholders {locale},
	// {namespace}, and {ext}; compilation into a matching expression
	// happens downstream, parameterized by the enabled parsers'
	// file extensions.
	PathMatcherRule struct {
		Structure DirStructure
		Pattern   string
	}

	// Framework is one immutable capability module. All fields are data;
	// the only behavior is the activation predicate.
	Framework struct {
		// ID identifies the framework; registries reject duplicates.
		ID string

		// DisplayName is the human-readable name.
		DisplayName string

		// LanguageIDs are the editor language identifiers in which this
		// framework's usage regexes apply.
		LanguageIDs []string

		// Detect reports whether the dependency set (and root folder)
		// activate this framework.
		Detect func(deps manifest.DependencySet, root string) bool

		// KeyStyle is the preferred key style; KeyStyleAuto defers.
		KeyStyle KeyStyle

		// DirStructure is the preferred locale-file layout.
		DirStructure DirStructure

		// LocalePaths are locale directories, relative to the activation
		// folder, that this framework conventionally uses.
		LocalePaths []string

		// NamespaceDelimiter separates a namespace from the key
		// ("common:title"). Empty defers to the downstream default.
		NamespaceDelimiter string

		// UsageRegexes are regex fragments matching key usages in source
		// code. Fragments contain the literal placeholder {key}, replaced
		// at compile time with the key capture pattern.
		UsageRegexes []string

		// UsageRegexesByLanguage adds fragments that apply only in the
		// given editor language.
		UsageRegexesByLanguage map[string][]string

		// PathMatchers are the locale-file path templates per layout.
		PathMatchers []PathMatcherRule

		// Parsers are the ids of the locale-file parsers this framework
		// enables (e.g. "json", "yaml").
		Parsers []string

		// Features are optional capability flags (see FeatureNamespace).
		Features []string
	}
)

// Activates runs the activation predicate. A framework without a
// predicate never activates.
func (f *Framework) Activates(deps manifest.DependencySet, root string) bool {
	return f.Detect != nil && f.Detect(deps, root)
}

// HasFeature reports whether the framework declares the named feature.
func (f *Framework) HasFeature(name string) bool {
	return slices.Contains(f.Features, name)
}

// SupportsLanguage reports whether the framework's usage matching applies
// to the given editor language id. A framework without language ids
// applies everywhere.
func (f *Framework) SupportsLanguage(languageID string) bool {
	return len(f.LanguageIDs) == 0 || slices.Contains(f.LanguageIDs, languageID)
}
