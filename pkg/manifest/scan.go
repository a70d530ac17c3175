// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"os"
	"path/filepath"
)

// Scan walks the directory tree rooted at root and returns the absolute
// paths of every file named filename, deduplicated. The file directly
// under root is checked first. Directories whose name appears in
// ignoreDirs are never entered, which also excludes their entire subtree.
//
// Symlinked directories are followed, with a visited set keyed on the
// symlink-resolved path so cycles terminate instead of recursing forever.
// An unreadable or missing root yields an empty result, not an error.
func Scan(root, filename string, ignoreDirs []string) []string {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil
	}

	ignore := make(map[string]struct{}, len(ignoreDirs))
	for _, d := range ignoreDirs {
		ignore[d] = struct{}{}
	}

	s := &scanner{
		filename: filename,
		ignore:   ignore,
		found:    make(map[string]struct{}),
		visited:  make(map[string]struct{}),
	}
	s.walk(absRoot)

	paths := make([]string, 0, len(s.found))
	for p := range s.found {
		paths = append(paths, p)
	}
	return paths
}

type scanner struct {
	filename string
	ignore   map[string]struct{}
	found    map[string]struct{}
	visited  map[string]struct{}
}

func (s *scanner) walk(dir string) {
	// Key the visited set on the symlink-resolved path so a loop through a
	// symlink is detected on re-entry.
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return
	}
	if _, seen := s.visited[resolved]; seen {
		return
	}
	s.visited[resolved] = struct{}{}

	// The directory's own manifest first, then its children.
	candidate := filepath.Join(dir, s.filename)
	if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
		s.found[candidate] = struct{}{}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if !isDir(dir, entry) {
			continue
		}
		if _, skip := s.ignore[entry.Name()]; skip {
			continue
		}
		s.walk(filepath.Join(dir, entry.Name()))
	}
}

// isDir reports whether entry is a directory, following symlinks so that
// symlinked project folders are scanned like real ones.
func isDir(parent string, entry os.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(parent, entry.Name()))
	return err == nil && info.IsDir()
}
