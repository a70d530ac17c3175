// SPDX-License-Identifier: MPL-2.0

package settings

import (
	"fmt"
	"regexp"
	"strings"
)

// keyPattern is the capture substituted for the {key} placeholder in
// usage regex fragments.
const keyPattern = `(?P<key>[\w\d. \-\[\]]*?)`

// UsageRegexes returns the compiled usage-match regexes for the given
// editor language and file, memoized per (languageID, filepath) key.
//
// Derivation is override-first: an explicit usage_match_regex replaces
// the frameworks' fragments outright, and usage_match_append entries are
// appended in either case. Fragments that fail to compile are logged and
// skipped rather than failing the whole derivation.
func (c *Cache) UsageRegexes(languageID, filePath string) []*regexp.Regexp {
	cacheKey := fmt.Sprintf("%s_%s", languageID, filePath)
	if cached, ok := c.usage.Get(cacheKey); ok {
		return cached
	}

	var fragments []string
	if c.cfg.UsageMatchRegex != "" {
		fragments = append(fragments, c.cfg.UsageMatchRegex)
	} else {
		for _, f := range c.frameworks {
			if !f.SupportsLanguage(languageID) {
				continue
			}
			fragments = append(fragments, f.UsageRegexes...)
			fragments = append(fragments, f.UsageRegexesByLanguage[languageID]...)
		}
	}
	fragments = append(fragments, c.cfg.UsageMatchAppend...)

	compiled := make([]*regexp.Regexp, 0, len(fragments))
	for _, fragment := range fragments {
		re, err := regexp.Compile(strings.ReplaceAll(fragment, "{key}", keyPattern))
		if err != nil {
			c.logger.Warn("invalid usage regex fragment", "fragment", fragment, "error", err)
			continue
		}
		compiled = append(compiled, re)
	}

	c.usage.Add(cacheKey, compiled)
	return compiled
}
