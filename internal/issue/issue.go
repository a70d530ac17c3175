// SPDX-License-Identifier: MPL-2.0

package issue

import "github.com/charmbracelet/glamour"

// Id identifies a guidance page.
type Id int

const (
	NoManifestFoundId Id = iota + 1
	NoFrameworkActiveId
	MalformedManifestId
	ConfigLoadFailedId
)

// Issue is a markdown guidance page for a recurring situation.
type Issue struct {
	id    Id
	mdMsg string
}

// ById returns the guidance page for the given id, or nil when none is
// registered.
func ById(id Id) *Issue {
	return catalog[id]
}

// Id returns the page's identifier.
func (i *Issue) Id() Id {
	return i.id
}

// Render returns the page rendered for terminal display.
func (i *Issue) Render() (string, error) {
	return render(i.mdMsg)
}

// render is swappable in tests to avoid terminal detection.
var render = func(in string) (string, error) {
	return glamour.Render(in, "auto")
}

var catalog = map[Id]*Issue{
	NoManifestFoundId: {
		id: NoManifestFoundId,
		mdMsg: `
# No package manifest found

localescope looked for package manifests (package.json, composer.json,
pubspec.yaml, Cargo.toml) under the workspace root and found none.

## Things you can try
- Check that you opened the right folder
- If your manifests live under an ignored directory (node_modules,
  vendor, target), move the workspace root
- Declare frameworks explicitly in localescope.cue:
~~~cue
frameworks: ["vue"]
~~~`,
	},
	NoFrameworkActiveId: {
		id: NoFrameworkActiveId,
		mdMsg: `
# No i18n framework detected

Manifests were found, but none of their declared dependencies activate a
known i18n framework.

## Things you can try
- List the known frameworks:
~~~
$ localescope frameworks
~~~
- Check that the i18n library is declared in the manifest closest to the
  files you are editing
- Force the framework list in localescope.cue:
~~~cue
frameworks: ["react-i18next"]
~~~`,
	},
	MalformedManifestId: {
		id: MalformedManifestId,
		mdMsg: `
# Malformed package manifest

A manifest file was found but could not be parsed, so dependency
resolution for its root was aborted. Nothing was partially extracted.

## Things you can try
- Check the log line above for the file and the parse error
- Validate the file with its ecosystem tooling (npm, composer, dart,
  cargo)`,
	},
	ConfigLoadFailedId: {
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration

Your localescope.cue contains syntax errors or values outside the schema.

## Common issues
- Invalid CUE syntax (missing quotes, braces)
- Unknown field names
- key_style outside "auto" | "nested" | "flat"
- dir_structure outside "auto" | "file" | "dir"

## Things you can try
- Check the error message for the specific field
- Validate the file with the cue command-line tool`,
	},
}
