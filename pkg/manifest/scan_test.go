// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// writeTree creates the given relative file paths (with trivial content)
// under root, making parent directories as needed.
func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, rel := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("MkdirAll(%s): %v", path, err)
		}
		if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
			t.Fatalf("WriteFile(%s): %v", path, err)
		}
	}
}

func sortedRel(t *testing.T, root string, paths []string) []string {
	t.Helper()
	rels := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(root, p)
		if err != nil {
			t.Fatalf("Rel(%s, %s): %v", root, p, err)
		}
		rels = append(rels, filepath.ToSlash(rel))
	}
	sort.Strings(rels)
	return rels
}

func TestScan(t *testing.T) {
	tests := []struct {
		name       string
		files      []string
		ignoreDirs []string
		want       []string
	}{
		{
			name:  "root manifest only",
			files: []string{"package.json"},
			want:  []string{"package.json"},
		},
		{
			name:  "nested manifests",
			files: []string{"package.json", "app/package.json", "app/sub/package.json"},
			want:  []string{"app/package.json", "app/sub/package.json", "package.json"},
		},
		{
			name:  "no manifest at root",
			files: []string{"app/package.json", "README/keep"},
			want:  []string{"app/package.json"},
		},
		{
			name:       "ignored directory is skipped",
			files:      []string{"package.json", "node_modules/dep/package.json"},
			ignoreDirs: []string{"node_modules"},
			want:       []string{"package.json"},
		},
		{
			name:       "ignore is transitive",
			files:      []string{"vendor/a/deep/nested/package.json", "app/package.json"},
			ignoreDirs: []string{"vendor"},
			want:       []string{"app/package.json"},
		},
		{
			name:       "ignored name only prunes directories being entered",
			files:      []string{"app/vendor.json", "app/package.json"},
			ignoreDirs: []string{"vendor"},
			want:       []string{"app/package.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeTree(t, root, tt.files...)

			got := sortedRel(t, root, Scan(root, "package.json", tt.ignoreDirs))

			if len(got) != len(tt.want) {
				t.Fatalf("Scan() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Scan()[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestScan_MissingRoot(t *testing.T) {
	got := Scan(filepath.Join(t.TempDir(), "does-not-exist"), "package.json", nil)
	if len(got) != 0 {
		t.Errorf("Scan() on missing root = %v, want empty", got)
	}
}

func TestScan_NoDuplicates(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "package.json", "a/package.json")

	got := Scan(root, "package.json", nil)
	seen := make(map[string]struct{}, len(got))
	for _, p := range got {
		if _, dup := seen[p]; dup {
			t.Errorf("Scan() returned duplicate path %s", p)
		}
		seen[p] = struct{}{}
	}
}

func TestScan_SymlinkCycleTerminates(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "app/package.json")

	// app/loop -> root creates a cycle through the tree.
	if err := os.Symlink(root, filepath.Join(root, "app", "loop")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	got := Scan(root, "package.json", nil)
	if len(got) == 0 {
		t.Fatal("Scan() found nothing in a tree with a manifest")
	}
}
