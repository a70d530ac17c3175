// SPDX-License-Identifier: MPL-2.0

// Package fspath provides small path helpers shared by the manifest engine
// and the activation resolver. All functions operate on cleaned, absolute
// paths; callers are expected to resolve relative inputs first.
package fspath

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Canonical cleans p and resolves it to an absolute path. Returns an error
// if the underlying OS call fails.
func Canonical(p string) (string, error) {
	abs, err := filepath.Abs(filepath.Clean(p))
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}
	return abs, nil
}

// Contains reports whether path equals root or lies underneath it.
// Both arguments must already be cleaned absolute paths.
func Contains(root, path string) bool {
	root = filepath.Clean(root)
	path = filepath.Clean(path)
	if root == path {
		return true
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// AncestorsWithin returns the chain of directories from dir up to and
// including root, closest first. Both endpoints are included. Returns nil
// when dir is not root or a descendant of root.
func AncestorsWithin(dir, root string) []string {
	dir = filepath.Clean(dir)
	root = filepath.Clean(root)
	if !Contains(root, dir) {
		return nil
	}

	var chain []string
	for {
		chain = append(chain, dir)
		if dir == root {
			return chain
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// Hit the filesystem root without passing through root; Contains
			// above should make this unreachable, but guard against it.
			return chain
		}
		dir = parent
	}
}
