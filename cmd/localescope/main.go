// SPDX-License-Identifier: MPL-2.0

// localescope inspects a workspace the way an i18n-aware editor
// extension would: it scans package manifests, resolves which i18n
// frameworks are active, derives the effective locale settings, and can
// keep watching the workspace for changes.
package main

func main() {
	Execute()
}
