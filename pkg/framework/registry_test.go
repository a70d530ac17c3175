// SPDX-License-Identifier: MPL-2.0

package framework

import (
	"testing"

	"localescope/pkg/manifest"
)

func TestRegistry_Register_DuplicateID(t *testing.T) {
	t.Parallel()

	r, err := NewRegistry(&Framework{ID: "vue"})
	if err != nil {
		t.Fatalf("NewRegistry() error: %v", err)
	}
	if err := r.Register(&Framework{ID: "vue"}); err == nil {
		t.Error("Register() with duplicate id succeeded, want error")
	}
	if err := r.Register(&Framework{}); err == nil {
		t.Error("Register() without id succeeded, want error")
	}
}

func TestRegistry_Active_PreservesOrder(t *testing.T) {
	t.Parallel()

	always := func(manifest.DependencySet, string) bool { return true }
	never := func(manifest.DependencySet, string) bool { return false }

	r, err := NewRegistry(
		&Framework{ID: "first", Detect: always},
		&Framework{ID: "skipped", Detect: never},
		&Framework{ID: "second", Detect: always},
		&Framework{ID: "no-predicate"},
	)
	if err != nil {
		t.Fatalf("NewRegistry() error: %v", err)
	}

	active := r.Active(manifest.NewDependencySet(), "/work")
	if len(active) != 2 {
		t.Fatalf("Active() returned %d frameworks, want 2", len(active))
	}
	if active[0].ID != "first" || active[1].ID != "second" {
		t.Errorf("Active() order = [%s %s], want [first second]", active[0].ID, active[1].ID)
	}
}

func TestBuiltIn_Activation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		deps []string
		want []string
	}{
		{name: "vue-i18n", deps: []string{"vue", "vue-i18n"}, want: []string{"vue"}},
		{name: "nuxt module", deps: []string{"@nuxtjs/i18n"}, want: []string{"vue"}},
		{name: "react stack", deps: []string{"react", "i18next", "react-i18next"}, want: []string{"react-i18next"}},
		{name: "laravel", deps: []string{"laravel/framework", "php"}, want: []string{"laravel"}},
		{name: "flutter", deps: []string{"flutter_localizations", "intl"}, want: []string{"flutter"}},
		{name: "rust", deps: []string{"rust-i18n", "serde"}, want: []string{"rust-i18n"}},
		{name: "nothing matches", deps: []string{"express", "lodash"}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			active := Default().Active(manifest.NewDependencySet(tt.deps...), "/work")

			var ids []string
			for _, f := range active {
				ids = append(ids, f.ID)
			}
			if len(ids) != len(tt.want) {
				t.Fatalf("Active() = %v, want %v", ids, tt.want)
			}
			for i := range ids {
				if ids[i] != tt.want[i] {
					t.Errorf("Active()[%d] = %s, want %s", i, ids[i], tt.want[i])
				}
			}
		})
	}
}

func TestFramework_SupportsLanguage(t *testing.T) {
	t.Parallel()

	f := &Framework{ID: "x", LanguageIDs: []string{"vue", "typescript"}}
	if !f.SupportsLanguage("vue") {
		t.Error("SupportsLanguage(vue) = false, want true")
	}
	if f.SupportsLanguage("rust") {
		t.Error("SupportsLanguage(rust) = true, want false")
	}

	unrestricted := &Framework{ID: "y"}
	if !unrestricted.SupportsLanguage("anything") {
		t.Error("SupportsLanguage() without LanguageIDs = false, want true")
	}
}
