// SPDX-License-Identifier: MPL-2.0

package manifest

import "gopkg.in/yaml.v3"

// pubspecManifest reads the dependency blocks of a Dart/Flutter
// pubspec.yaml. Values may be strings, maps (git/path/sdk deps), or null,
// so blocks decode to map[string]any and only the keys are kept.
type pubspecManifest struct {
	Dependencies    map[string]any `yaml:"dependencies"`
	DevDependencies map[string]any `yaml:"dev_dependencies"`
}

func parsePubspec(data []byte) (DependencySet, error) {
	var m pubspecManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
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
