// SPDX-License-Identifier: MPL-2.0

package lifecycle

import "context"

// Loader is the per-workspace-root stateful resource whose lifecycle the
// controller manages. The concrete locale-file loading behind it is an
// external collaborator; the controller only drives create, reload, and
// dispose.
//
// Init may suspend (reading locale files, watching directories); the
// controller awaits it. Dispose must release every subscription and
// handle the loader acquired before it returns.
type Loader interface {
	Root() string
	Init(ctx context.Context) error
	Reload(ctx context.Context) error
	Dispose() error
}

// LoaderFactory creates the loader for a workspace root. Called lazily
// on the first enable for a root; the result is reused across toggles
// until a reload or a dispose-all.
type LoaderFactory func(root string) Loader

// Hooks are the outbound notifications. Each fires after the state
// mutation that triggered it, so subscribers always observe the
// post-mutation state. Nil hooks are skipped.
type Hooks struct {
	// RootChanged fires when the workspace root changes.
	RootChanged func(root string)

	// EnabledChanged fires on enabled-state transitions. Redundant
	// transitions do not fire.
	EnabledChanged func(enabled bool)

	// LoaderChanged fires when the live loader for the current root is
	// created, replaced, or becomes a different root's loader.
	LoaderChanged func(root string)
}
