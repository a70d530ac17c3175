// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride redirects ConfigDir for tests.
var configDirOverride string

// SetConfigDirOverride overrides the platform config directory. Pass an
// empty string to restore the default lookup. Intended for tests.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}
