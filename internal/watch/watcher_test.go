// SPDX-License-Identifier: MPL-2.0

package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	w := &Watcher{
		cfg: Config{
			ManifestPatterns: []string{"**/package.json", "**/pubspec.yaml"},
			ConfigPatterns:   []string{"localescope.cue"},
		},
		localePatterns: []string{"locales/**", "packages/*/locales/**"},
	}

	tests := []struct {
		rel  string
		kind Kind
		ok   bool
	}{
		{"package.json", KindManifest, true},
		{"packages/web/package.json", KindManifest, true},
		{"app/pubspec.yaml", KindManifest, true},
		{"localescope.cue", KindConfig, true},
		{"locales/en.json", KindLocale, true},
		{"packages/web/locales/de/common.json", KindLocale, true},
		{"src/App.vue", 0, false},
		{"README.md", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			t.Parallel()
			kind, ok := w.classify(tt.rel)
			if ok != tt.ok {
				t.Fatalf("classify(%q) ok = %v, want %v", tt.rel, ok, tt.ok)
			}
			if ok && kind != tt.kind {
				t.Fatalf("classify(%q) = %v, want %v", tt.rel, kind, tt.kind)
			}
		})
	}
}

func TestSetLocalePatternsReclassifies(t *testing.T) {
	t.Parallel()

	w := &Watcher{localePatterns: []string{"locales/**"}}

	if _, ok := w.classify("i18n/en.json"); ok {
		t.Fatal("i18n/** should not match before the swap")
	}

	// Locale directories move after a config or manifest change; the
	// watcher picks up the new globs without a restart.
	if err := w.SetLocalePatterns([]string{"i18n/**"}); err != nil {
		t.Fatalf("SetLocalePatterns: %v", err)
	}

	if kind, ok := w.classify("i18n/en.json"); !ok || kind != KindLocale {
		t.Fatalf("classify(i18n/en.json) = %v, %v, want locale match", kind, ok)
	}
	if _, ok := w.classify("locales/en.json"); ok {
		t.Fatal("the old globs should no longer match")
	}

	if err := w.SetLocalePatterns([]string{"[invalid"}); err == nil {
		t.Fatal("SetLocalePatterns should reject an unclosed character class")
	}
	if kind, ok := w.classify("i18n/en.json"); !ok || kind != KindLocale {
		t.Fatalf("classify after rejected swap = %v, %v, want previous globs kept", kind, ok)
	}
}

func TestMaxKindKeepsStrongest(t *testing.T) {
	t.Parallel()

	pending := map[string]Kind{"pkg/package.json": KindManifest}
	if got := maxKind(pending, "pkg/package.json", KindLocale); got != KindManifest {
		t.Fatalf("maxKind = %v, want manifest to win over locale", got)
	}
	if got := maxKind(pending, "locales/en.json", KindLocale); got != KindLocale {
		t.Fatalf("maxKind for unseen path = %v, want the new kind", got)
	}
}

func TestDefaultIgnores(t *testing.T) {
	t.Parallel()

	w := &Watcher{ignores: DefaultIgnores()}

	ignored := []string{
		".git/HEAD",
		"node_modules/react/package.json",
		"app/.dart_tool/version",
		"crates/core/target/debug/build.log",
		"src/main.rs.swp",
	}
	for _, rel := range ignored {
		if !w.isIgnored(rel) {
			t.Errorf("isIgnored(%q) = false, want true", rel)
		}
	}

	kept := []string{"package.json", "locales/en.json", "src/i18n.ts"}
	for _, rel := range kept {
		if w.isIgnored(rel) {
			t.Errorf("isIgnored(%q) = true, want false", rel)
		}
	}
}

func TestNewRejectsInvalidPatterns(t *testing.T) {
	t.Parallel()

	_, err := New(Config{
		Root:             t.TempDir(),
		ManifestPatterns: []string{"[invalid"},
	})
	if err == nil {
		t.Fatal("New should reject an unclosed character class")
	}
}

func TestNewRequiresRoot(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{}); err == nil {
		t.Fatal("New should reject an empty root")
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "locales"), 0o755); err != nil {
		t.Fatal(err)
	}

	w, err := New(Config{
		Root:           root,
		LocalePatterns: []string{"locales/**"},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := w.Run(ctx); err != nil {
		t.Fatalf("Run with cancelled context: %v", err)
	}
	if err := w.Run(ctx); err == nil {
		t.Fatal("second Run should fail")
	}
}
