// SPDX-License-Identifier: MPL-2.0

// Package lifecycle owns the enabled/disabled state machine and the
// per-root loader-resource registry.
//
// Host environments feed the controller inbound events (root changed,
// active file changed, configuration changed, document opened/closed,
// manifest changed) through Update, decoupling it from any particular
// editor event API.
// Each Update recomputes the activation context, refreshes derived
// settings, decides the enabled state, and creates, reuses, reloads, or
// disposes loader resources accordingly. The controller itself never
// fails outright: unresolved situations degrade to the disabled state.
package lifecycle
