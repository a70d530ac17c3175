// SPDX-License-Identifier: MPL-2.0

package settings

import (
	"context"
	"log/slog"
	"testing"

	"localescope/internal/activation"
	"localescope/internal/config"
	"localescope/pkg/framework"
)

func newCache(t *testing.T, cfg *config.Config, prompter Prompter) *Cache {
	t.Helper()
	c, err := New(cfg, prompter, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return c
}

func vueLike() *framework.Framework {
	return &framework.Framework{
		ID:                 "vue",
		LanguageIDs:        []string{"vue", "typescript"},
		KeyStyle:           framework.KeyStyleNested,
		DirStructure:       framework.DirStructureFile,
		NamespaceDelimiter: ".",
		UsageRegexes:       []string{`\$t\(\s*['"]({key})['"]`},
		UsageRegexesByLanguage: map[string][]string{
			"vue": {`v-t=['"]({key})['"]`},
		},
		PathMatchers: []framework.PathMatcherRule{
			{Structure: framework.DirStructureFile, Pattern: "{locale}.{ext}"},
		},
		Parsers: []string{"json", "yaml"},
	}
}

func reactLike() *framework.Framework {
	return &framework.Framework{
		ID:                 "react-i18next",
		LanguageIDs:        []string{"typescript"},
		KeyStyle:           framework.KeyStyleFlat,
		DirStructure:       framework.DirStructureDir,
		NamespaceDelimiter: ":",
		UsageRegexes:       []string{`\bt\(\s*['"]({key})['"]`},
		PathMatchers: []framework.PathMatcherRule{
			{Structure: framework.DirStructureDir, Pattern: "{locale}/{namespace}.{ext}"},
		},
		Parsers: []string{"json"},
	}
}

func contextWith(frameworks ...*framework.Framework) activation.Context {
	return activation.Context{
		WorkspaceRoot:    "/work",
		ActiveFileDir:    "/work/src",
		ActivationFolder: "/work",
		Frameworks:       frameworks,
	}
}

func TestUsageRegexes_UnionAcrossFrameworks(t *testing.T) {
	c := newCache(t, config.DefaultConfig(), nil)
	c.SetContext(contextWith(vueLike(), reactLike()))

	regexes := c.UsageRegexes("typescript", "/work/src/app.ts")
	if len(regexes) != 2 {
		t.Fatalf("UsageRegexes() returned %d regexes, want 2", len(regexes))
	}

	if !regexes[0].MatchString(`$t('login.title')`) {
		t.Error("vue fragment does not match $t('login.title')")
	}
	if !regexes[1].MatchString(`t("common.ok")`) {
		t.Error("react fragment does not match t(\"common.ok\")")
	}
}

func TestUsageRegexes_LanguageScoping(t *testing.T) {
	c := newCache(t, config.DefaultConfig(), nil)
	c.SetContext(contextWith(vueLike(), reactLike()))

	// react-i18next does not support "vue"; vue contributes its base
	// fragment plus the vue-only fragment.
	regexes := c.UsageRegexes("vue", "/work/src/App.vue")
	if len(regexes) != 2 {
		t.Fatalf("UsageRegexes(vue) returned %d regexes, want 2", len(regexes))
	}
}

func TestUsageRegexes_OverrideReplacesAndAppendApplies(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UsageMatchRegex = `translate\(['"]({key})['"]\)`
	cfg.UsageMatchAppend = []string{`data-i18n=['"]({key})['"]`}

	c := newCache(t, cfg, nil)
	c.SetContext(contextWith(vueLike()))

	regexes := c.UsageRegexes("typescript", "/work/src/app.ts")
	if len(regexes) != 2 {
		t.Fatalf("UsageRegexes() returned %d regexes, want 2 (override + append)", len(regexes))
	}
	if !regexes[0].MatchString(`translate("a.b")`) {
		t.Error("override fragment not first")
	}
	if !regexes[1].MatchString(`data-i18n="a.b"`) {
		t.Error("append fragment missing")
	}
}

// After a module-set change, a previously cached usage-regex list for
// the same key must not be served from the stale cache.
func TestUsageRegexes_InvalidatedOnContextChange(t *testing.T) {
	c := newCache(t, config.DefaultConfig(), nil)
	c.SetContext(contextWith(vueLike(), reactLike()))

	before := c.UsageRegexes("typescript", "/work/src/app.ts")
	if len(before) != 2 {
		t.Fatalf("before: %d regexes, want 2", len(before))
	}

	c.SetContext(activation.Context{
		WorkspaceRoot:    "/work",
		ActiveFileDir:    "/work/src",
		ActivationFolder: "/work/app",
		Frameworks:       []*framework.Framework{reactLike()},
	})

	after := c.UsageRegexes("typescript", "/work/src/app.ts")
	if len(after) != 1 {
		t.Fatalf("after: %d regexes, want 1 (react only)", len(after))
	}
}

func TestSetContext_SameContextKeepsCache(t *testing.T) {
	c := newCache(t, config.DefaultConfig(), nil)
	c.SetContext(contextWith(vueLike()))
	_ = c.UsageRegexes("typescript", "/work/src/app.ts")

	c.SetContext(contextWith(vueLike()))
	if c.usage.Len() != 1 {
		t.Errorf("usage cache length = %d after identical SetContext, want 1", c.usage.Len())
	}
}

func TestInvalidateUsage_LeavesOtherDerivations(t *testing.T) {
	c := newCache(t, config.DefaultConfig(), nil)
	c.SetContext(contextWith(vueLike()))

	_ = c.PathMatchers()
	_ = c.UsageRegexes("typescript", "/work/src/app.ts")

	c.InvalidateUsage()

	if c.usage.Len() != 0 {
		t.Error("usage cache not purged")
	}
	if !c.pathMatchersBuilt {
		t.Error("path matchers were invalidated by InvalidateUsage")
	}
}

func TestEnabledParsers(t *testing.T) {
	t.Parallel()

	t.Run("union in framework order", func(t *testing.T) {
		c := newCache(t, config.DefaultConfig(), nil)
		c.SetContext(contextWith(vueLike(), reactLike()))

		got := c.EnabledParsers()
		want := []string{"json", "yaml"}
		if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
			t.Errorf("EnabledParsers() = %v, want %v", got, want)
		}
	})

	t.Run("override filters unknown ids", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Parsers = []string{"yaml", "made-up"}
		c := newCache(t, cfg, nil)
		c.SetContext(contextWith(vueLike()))

		got := c.EnabledParsers()
		if len(got) != 1 || got[0] != "yaml" {
			t.Errorf("EnabledParsers() = %v, want [yaml]", got)
		}
	})
}

func TestNamespaceDelimiter(t *testing.T) {
	t.Parallel()

	c := newCache(t, config.DefaultConfig(), nil)
	if got := c.NamespaceDelimiter(); got != "." {
		t.Errorf("NamespaceDelimiter() with no frameworks = %q, want .", got)
	}

	c.SetContext(contextWith(reactLike(), vueLike()))
	if got := c.NamespaceDelimiter(); got != ":" {
		t.Errorf("NamespaceDelimiter() = %q, want : (first framework wins)", got)
	}
}

func TestSetUsageConfigRefreshesOnlyUsage(t *testing.T) {
	auto := &framework.Framework{
		ID:           "auto-style",
		LanguageIDs:  []string{"typescript"},
		KeyStyle:     framework.KeyStyleAuto,
		UsageRegexes: []string{`\bt\(\s*['"]({key})['"]`},
	}
	prompter := &fixedPrompter{style: framework.KeyStyleFlat, ok: true}
	c := newCache(t, config.DefaultConfig(), prompter)
	c.SetContext(contextWith(auto))

	// Settle the key style via the prompt, then derive the default usage
	// regexes once so both memos are populated.
	if got := c.KeyStyle(context.Background()); got != framework.KeyStyleFlat {
		t.Fatalf("KeyStyle() = %s, want flat", got)
	}
	regexes := c.UsageRegexes("typescript", "/work/src/app.ts")
	if len(regexes) != 1 || !regexes[0].MatchString(`t('login.title')`) {
		t.Fatalf("UsageRegexes() = %v, want the framework fragment", regexes)
	}

	// An override arriving through the usage-narrow path must be visible
	// on the next derivation.
	updated := config.DefaultConfig()
	updated.UsageMatchRegex = `customT\(['"]({key})['"]\)`
	c.SetUsageConfig(updated)

	regexes = c.UsageRegexes("typescript", "/work/src/app.ts")
	if len(regexes) != 1 || !regexes[0].MatchString(`customT('login.title')`) {
		t.Fatalf("UsageRegexes() after SetUsageConfig = %v, want the override", regexes)
	}

	// The non-usage memos survive: the key style is answered once.
	if got := c.KeyStyle(context.Background()); got != framework.KeyStyleFlat {
		t.Errorf("KeyStyle() = %s, want memoized flat", got)
	}
	if prompter.calls != 1 {
		t.Errorf("prompter called %d times, want 1", prompter.calls)
	}
}

type fixedPrompter struct {
	style framework.KeyStyle
	ok    bool
	calls int
}

func (p *fixedPrompter) ChooseKeyStyle(context.Context) (framework.KeyStyle, bool, error) {
	p.calls++
	return p.style, p.ok, nil
}

func TestKeyStyle_OverrideWins(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.KeyStyle = "flat"
	prompter := &fixedPrompter{style: framework.KeyStyleNested, ok: true}

	c := newCache(t, cfg, prompter)
	c.SetContext(contextWith(vueLike()))

	if got := c.KeyStyle(context.Background()); got != framework.KeyStyleFlat {
		t.Errorf("KeyStyle() = %s, want flat", got)
	}
	if prompter.calls != 0 {
		t.Errorf("prompter called %d times, want 0", prompter.calls)
	}
}

func TestKeyStyle_FirstFrameworkPreferenceWins(t *testing.T) {
	c := newCache(t, config.DefaultConfig(), &fixedPrompter{})
	c.SetContext(contextWith(reactLike(), vueLike()))

	if got := c.KeyStyle(context.Background()); got != framework.KeyStyleFlat {
		t.Errorf("KeyStyle() = %s, want flat (react is first)", got)
	}
}

func TestKeyStyle_PromptAndDismissal(t *testing.T) {
	auto := &framework.Framework{ID: "auto-style", KeyStyle: framework.KeyStyleAuto}

	t.Run("answer is used", func(t *testing.T) {
		prompter := &fixedPrompter{style: framework.KeyStyleFlat, ok: true}
		c := newCache(t, config.DefaultConfig(), prompter)
		c.SetContext(contextWith(auto))

		if got := c.KeyStyle(context.Background()); got != framework.KeyStyleFlat {
			t.Errorf("KeyStyle() = %s, want flat", got)
		}
	})

	t.Run("dismissal persists nested", func(t *testing.T) {
		prompter := &fixedPrompter{ok: false}
		cfg := config.DefaultConfig()
		c := newCache(t, cfg, prompter)
		c.SetContext(contextWith(auto))

		if got := c.KeyStyle(context.Background()); got != framework.KeyStyleNested {
			t.Errorf("KeyStyle() = %s, want nested default", got)
		}
		if cfg.KeyStyle != "nested" {
			t.Errorf("cfg.KeyStyle = %s, want persisted nested", cfg.KeyStyle)
		}

		// The persisted override short-circuits even after invalidation.
		c.Invalidate()
		if got := c.KeyStyle(context.Background()); got != framework.KeyStyleNested {
			t.Errorf("KeyStyle() after invalidation = %s, want nested", got)
		}
		if prompter.calls != 1 {
			t.Errorf("prompter called %d times, want 1", prompter.calls)
		}
	})
}
