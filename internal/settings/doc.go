// SPDX-License-Identifier: MPL-2.0

// Package settings derives editor-facing preferences from the active
// framework set and the user's explicit overrides: usage-match regexes,
// locale-file path matchers, key style, namespace delimiter, enabled
// parsers, and resolved locale directories.
//
// Every derivation is override-first: an explicit configuration value
// always beats whatever the active frameworks prefer. Derivations are
// memoized; changing the activation context or the configuration clears
// all of them at once. Partial invalidation is deliberately not offered
// (except for the usage-analysis cache, which narrower configuration
// changes may clear on its own).
package settings
