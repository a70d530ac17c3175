// SPDX-License-Identifier: MPL-2.0

// Package config loads and validates localescope configuration.
//
// Configuration lives in a CUE file (localescope.cue), looked up in the
// workspace root first and then in the platform configuration directory.
// The file is validated against an embedded schema before being merged
// into Viper on top of the defaults and LOCALESCOPE_* environment
// variables. Every value is an explicit user override: absence means the
// active frameworks decide.
package config
