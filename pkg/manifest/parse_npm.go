// SPDX-License-Identifier: MPL-2.0

package manifest

import "encoding/json"

// npmManifest mirrors the three optional dependency blocks of a
// package.json file. Versions are decoded and discarded.
type npmManifest struct {
	Dependencies     map[string]string `json:"dependencies"`
	DevDependencies  map[string]string `json:"devDependencies"`
	PeerDependencies map[string]string `json:"peerDependencies"`
}

// parseNPM extracts the union of the runtime, development, and peer
// dependency block keys from package.json content.
func parseNPM(data []byte) (DependencySet, error) {
	var m npmManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	deps := make(DependencySet)
	for _, block := range []map[string]string{m.Dependencies, m.DevDependencies, m.PeerDependencies} {
		for name := range block {
			deps.Add(name)
		}
	}
	return deps, nil
}
