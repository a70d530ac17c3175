// SPDX-License-Identifier: MPL-2.0

package settings

import "strings"

// parserExtensions maps a locale-file parser id to the file extensions it
// handles (without dots). The concrete parsers are external
// collaborators; the engine only needs their extension sets to build
// path-matching expressions.
var parserExtensions = map[string][]string{
	"json":  {"json"},
	"json5": {"json5"},
	"yaml":  {"yaml", "yml"},
	"arb":   {"arb"},
	"php":   {"php"},
	"po":    {"po", "pot"},
	"toml":  {"toml"},
}

// KnownParser reports whether id names a parser the engine knows about.
func KnownParser(id string) bool {
	_, ok := parserExtensions[id]
	return ok
}

// ParserExtensions returns the deduplicated extensions (without dots)
// handled by the given parser ids, in id order. Unknown ids contribute
// nothing.
func ParserExtensions(parserIDs []string) []string {
	var exts []string
	seen := make(map[string]struct{})
	for _, id := range parserIDs {
		for _, ext := range parserExtensions[id] {
			if _, dup := seen[ext]; dup {
				continue
			}
			seen[ext] = struct{}{}
			exts = append(exts, ext)
		}
	}
	return exts
}

// extAlternation builds the non-capturing alternation of all extensions
// handled by the given parser ids, for interpolation into path-matcher
// expressions. Unknown ids contribute nothing.
func extAlternation(parserIDs []string) string {
	exts := ParserExtensions(parserIDs)
	if len(exts) == 0 {
		return ""
	}
	return "(?:" + strings.Join(exts, "|") + ")"
}
