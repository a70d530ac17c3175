// SPDX-License-Identifier: MPL-2.0

// Package manifest discovers and parses package-manifest files across a
// project tree and reduces them to the flat set of declared dependency
// names.
//
// A manifest format is a (filename, ignore-dirs, parse function) triple
// registered as a Format value. The Scanner locates every instance of a
// format's filename under a root, honoring the format's ignore
// directories, and the Resolver unions the dependency names extracted
// from each discovered file.
//
// Versions are deliberately discarded: downstream activation predicates
// only care whether a dependency is declared at all.
package manifest
