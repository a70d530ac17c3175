// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"sort"
	"testing"
)

func TestParseNPM(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		want    []string
		wantErr bool
	}{
		{
			name: "all three blocks unioned",
			data: `{
				"name": "demo",
				"dependencies": {"vue-i18n": "^9.0.0"},
				"devDependencies": {"typescript": "^5.0.0"},
				"peerDependencies": {"vue": "^3.0.0"}
			}`,
			want: []string{"typescript", "vue", "vue-i18n"},
		},
		{
			name: "absent blocks are not an error",
			data: `{"name": "empty"}`,
			want: []string{},
		},
		{
			name: "empty blocks are not an error",
			data: `{"dependencies": {}, "devDependencies": {}}`,
			want: []string{},
		},
		{
			name:    "malformed json",
			data:    `{"dependencies": `,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseNPM([]byte(tt.data))
			assertParse(t, got, err, tt.want, tt.wantErr)
		})
	}
}

func TestParseComposer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		want    []string
		wantErr bool
	}{
		{
			name: "require block only",
			data: `{"require": {"laravel/framework": "^10.0", "php": ">=8.1"}}`,
			want: []string{"laravel/framework", "php"},
		},
		{
			name: "require-dev is not read",
			data: `{"require-dev": {"phpunit/phpunit": "^10"}}`,
			want: []string{},
		},
		{
			name:    "malformed json",
			data:    `not json`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseComposer([]byte(tt.data))
			assertParse(t, got, err, tt.want, tt.wantErr)
		})
	}
}

func TestParsePubspec(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		want    []string
		wantErr bool
	}{
		{
			name: "mixed value shapes",
			data: "dependencies:\n  flutter:\n    sdk: flutter\n  intl: ^0.18.0\ndev_dependencies:\n  flutter_test:\n    sdk: flutter\n",
			want: []string{"flutter", "flutter_test", "intl"},
		},
		{
			name: "no dependency blocks",
			data: "name: demo\nversion: 1.0.0\n",
			want: []string{},
		},
		{
			name:    "malformed yaml",
			data:    "dependencies:\n\t- bad tab",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parsePubspec([]byte(tt.data))
			assertParse(t, got, err, tt.want, tt.wantErr)
		})
	}
}

func TestParseCargo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		want    []string
		wantErr bool
	}{
		{
			name: "version strings and inline tables",
			data: "[dependencies]\nrust-i18n = \"3\"\nserde = { version = \"1\", features = [\"derive\"] }\n\n[dev-dependencies]\ncriterion = \"0.5\"\n",
			want: []string{"criterion", "rust-i18n", "serde"},
		},
		{
			name: "no dependency tables",
			data: "[package]\nname = \"demo\"\n",
			want: []string{},
		},
		{
			name:    "malformed toml",
			data:    "[dependencies\nbroken",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseCargo([]byte(tt.data))
			assertParse(t, got, err, tt.want, tt.wantErr)
		})
	}
}

func assertParse(t *testing.T, got DependencySet, err error, want []string, wantErr bool) {
	t.Helper()

	if wantErr {
		if err == nil {
			t.Fatal("parse succeeded, want error")
		}
		return
	}
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	names := got.Names()
	sort.Strings(want)
	if len(names) != len(want) {
		t.Fatalf("parsed names = %v, want %v", names, want)
	}
	for i := range names {
		if names[i] != want[i] {
			t.Errorf("parsed names[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}

func TestDependencySet(t *testing.T) {
	t.Parallel()

	s := NewDependencySet("vue-i18n", "vue")
	if !s.Has("vue-i18n") {
		t.Error("Has(vue-i18n) = false, want true")
	}
	if s.Has("react") {
		t.Error("Has(react) = true, want false")
	}
	if !s.HasAny("react", "vue") {
		t.Error("HasAny(react, vue) = false, want true")
	}

	s.Merge(NewDependencySet("vue", "react"))
	if got := len(s); got != 3 {
		t.Errorf("merged set size = %d, want 3", got)
	}
}
