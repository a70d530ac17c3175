// SPDX-License-Identifier: MPL-2.0

package manifest

import "encoding/json"

// composerManifest reads the single require block of a composer.json
// file. Unlike npm manifests there is only one dependency block.
type composerManifest struct {
	Require map[string]string `json:"require"`
}

func parseComposer(data []byte) (DependencySet, error) {
	var m composerManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	deps := make(DependencySet, len(m.Require))
	for name := range m.Require {
		deps.Add(name)
	}
	return deps, nil
}
