// SPDX-License-Identifier: MPL-2.0

package settings

import (
	"regexp"
	"strings"

	"localescope/pkg/framework"
)

// placeholder captures for path-matcher templates. {ext} is interpolated
// separately because it depends on the enabled parser set.
var pathPlaceholders = map[string]string{
	"{locale}":    `(?P<locale>[\w-]+)`,
	"{namespace}": `(?P<namespace>[^/\\]+)`,
}

// PathMatchers returns the compiled locale-file path matchers for the
// current directory-structure mode, memoized until invalidation.
//
// An explicit path_matcher override is the sole template; otherwise the
// active frameworks' rules for the mode are unioned with duplicates
// dropped. Each template compiles into an anchored expression whose
// {ext} placeholder is parameterized by the enabled parsers' extensions.
// Matching is against slash-separated paths relative to a locale
// directory.
func (c *Cache) PathMatchers() []*regexp.Regexp {
	if c.pathMatchersBuilt {
		return c.pathMatchers
	}

	var templates []string
	if c.cfg.PathMatcher != "" {
		templates = []string{c.cfg.PathMatcher}
	} else {
		mode := c.dirStructure()
		seen := make(map[string]struct{})
		for _, f := range c.frameworks {
			for _, rule := range f.PathMatchers {
				if mode != framework.DirStructureAuto && rule.Structure != mode {
					continue
				}
				if _, dup := seen[rule.Pattern]; dup {
					continue
				}
				seen[rule.Pattern] = struct{}{}
				templates = append(templates, rule.Pattern)
			}
		}
	}

	ext := extAlternation(c.EnabledParsers())
	matchers := make([]*regexp.Regexp, 0, len(templates))
	for _, template := range templates {
		re, err := compilePathTemplate(template, ext)
		if err != nil {
			c.logger.Warn("invalid path matcher template", "template", template, "error", err)
			continue
		}
		matchers = append(matchers, re)
	}

	c.pathMatchers = matchers
	c.pathMatchersBuilt = true
	return matchers
}

// dirStructure resolves the layout mode: explicit override first, then
// the first active framework with a non-auto preference.
func (c *Cache) dirStructure() framework.DirStructure {
	if c.cfg.DirStructure != "" && c.cfg.DirStructure != string(framework.DirStructureAuto) {
		return framework.DirStructure(c.cfg.DirStructure)
	}
	for _, f := range c.frameworks {
		if f.DirStructure != "" && f.DirStructure != framework.DirStructureAuto {
			return f.DirStructure
		}
	}
	return framework.DirStructureAuto
}

// compilePathTemplate turns a path template into an anchored regexp.
// Literal template text is quoted; placeholders become named captures.
func compilePathTemplate(template, extAlt string) (*regexp.Regexp, error) {
	if extAlt == "" {
		// No enabled parsers means no extensions to match; accept any.
		extAlt = `(?:\w+)`
	}

	expr := regexp.QuoteMeta(template)
	for placeholder, capture := range pathPlaceholders {
		expr = strings.ReplaceAll(expr, regexp.QuoteMeta(placeholder), capture)
	}
	expr = strings.ReplaceAll(expr, regexp.QuoteMeta("{ext}"), `(?P<ext>`+extAlt+`)`)

	return regexp.Compile("^" + expr + "$")
}
