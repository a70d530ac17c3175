// SPDX-License-Identifier: MPL-2.0

package manifest

import "github.com/pelletier/go-toml/v2"

// cargoManifest reads the dependency tables of a Cargo.toml. Entries may
// be version strings or inline tables, so only table keys are kept.
type cargoManifest struct {
	Dependencies    map[string]any `toml:"dependencies"`
	DevDependencies map[string]any `toml:"dev-dependencies"`
}

func parseCargo(data []byte) (DependencySet, error) {
	var m cargoManifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	deps := make(DependencySet)
	for name := range m.Dependencies {
		deps.Add(name)
	}
	for name := range m.DevDependencies {
		deps.Add(name)
	}
	return deps, nil
}
