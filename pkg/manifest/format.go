// SPDX-License-Identifier: MPL-2.0

package manifest

// Format describes one manifest format: the filename the scanner looks
// for, the directories that bound the scan, and the function that extracts
// dependency names from raw file content.
//
// New formats register a (filename, ignore dirs, parse function) triple;
// there is no format interface to implement.
type Format struct {
	// ID identifies the format in log lines and errors (e.g. "npm").
	ID string

	// Filename is the manifest file name the scanner searches for.
	Filename string

	// IgnoreDirs lists directory names that are never entered during the
	// scan. Exclusion is transitive: a skipped directory's whole subtree
	// is skipped.
	IgnoreDirs []string

	// Parse extracts the declared dependency names from raw manifest
	// content. It returns a MalformedManifestError (via the caller) when
	// the content is not valid structured data; it never attempts partial
	// recovery. Absent-but-well-formed dependency blocks yield an empty
	// set, not an error.
	Parse func(data []byte) (DependencySet, error)
}

// vcsAndCacheDirs are the ignore directories shared by every built-in
// format: version-control metadata plus each ecosystem's dependency cache.
var vcsAndCacheDirs = []string{".git", ".hg", ".svn", "node_modules", "vendor", "build", "dist", ".dart_tool", "target"}

// DefaultFormats returns the built-in manifest formats in evaluation
// order: npm package.json, composer.json, pubspec.yaml, Cargo.toml.
func DefaultFormats() []Format {
	return []Format{
		{ID: "npm", Filename: "package.json", IgnoreDirs: vcsAndCacheDirs, Parse: parseNPM},
		{ID: "composer", Filename: "composer.json", IgnoreDirs: vcsAndCacheDirs, Parse: parseComposer},
		{ID: "pubspec", Filename: "pubspec.yaml", IgnoreDirs: vcsAndCacheDirs, Parse: parsePubspec},
		{ID: "cargo", Filename: "Cargo.toml", IgnoreDirs: vcsAndCacheDirs, Parse: parseCargo},
	}
}
