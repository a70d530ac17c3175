// SPDX-License-Identifier: MPL-2.0

// Package activation decides which frameworks apply to an active file
// inside a workspace. It walks the ancestor folders between the file and
// the workspace root, closest first, and stops at the first folder whose
// declared dependencies activate at least one framework.
package activation

import (
	"log/slog"

	"localescope/pkg/framework"
	"localescope/pkg/fspath"
	"localescope/pkg/manifest"
)

type (
	// DependencyResolver resolves the dependency names declared under a
	// root. *manifest.Resolver satisfies it; tests substitute fakes.
	DependencyResolver interface {
		Resolve(root string) (manifest.DependencySet, error)
	}

	// Context is the result of an activation walk. A zero Context means
	// nothing activated; that is a defined empty result, never an error.
	Context struct {
		// WorkspaceRoot is the root the walk was bounded by.
		WorkspaceRoot string

		// ActiveFileDir is the directory the walk started from.
		ActiveFileDir string

		// ActivationFolder is the closest ancestor (inclusive of both
		// endpoints) whose dependencies activated at least one framework.
		// Empty when no folder activated anything.
		ActivationFolder string

		// Frameworks are the activated frameworks at ActivationFolder, in
		// registry order. All frameworks matching at that folder are
		// included.
		Frameworks []*framework.Framework
	}

	// Resolver performs activation walks against a dependency resolver
	// and a framework registry.
	Resolver struct {
		deps     DependencyResolver
		registry *framework.Registry
		logger   *slog.Logger
	}
)

// Empty reports whether the walk activated nothing.
func (c Context) Empty() bool {
	return len(c.Frameworks) == 0
}

// FrameworkIDs returns the activated framework ids in order.
func (c Context) FrameworkIDs() []string {
	ids := make([]string, len(c.Frameworks))
	for i, f := range c.Frameworks {
		ids[i] = f.ID
	}
	return ids
}

// NewResolver creates an activation resolver. A nil logger falls back to
// slog.Default().
func NewResolver(deps DependencyResolver, registry *framework.Registry, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{deps: deps, registry: registry, logger: logger}
}

// Resolve walks from activeFileDir up to workspaceRoot, closest first,
// and returns the context of the first folder that activates one or more
// frameworks. Closer folders always win over the root, even when the
// root would also activate.
//
// An activeFileDir outside workspaceRoot returns an empty context
// immediately; that is a defined result, not an error. Dependency
// resolution failures at a folder (no manifest, malformed manifest) make
// that folder activate nothing and the walk continues upward.
func (r *Resolver) Resolve(workspaceRoot, activeFileDir string) Context {
	ctx := Context{WorkspaceRoot: workspaceRoot, ActiveFileDir: activeFileDir}

	chain := fspath.AncestorsWithin(activeFileDir, workspaceRoot)
	if chain == nil {
		r.logger.Debug("active file outside workspace root", "root", workspaceRoot, "dir", activeFileDir)
		return ctx
	}

	for _, folder := range chain {
		deps, err := r.deps.Resolve(folder)
		if err != nil {
			// ErrNoManifest and malformed manifests both degrade to "no
			// dependencies here"; the resolver already logged the detail.
			continue
		}

		active := r.registry.Active(deps, folder)
		if len(active) == 0 {
			continue
		}

		ctx.ActivationFolder = folder
		ctx.Frameworks = active
		r.logger.Debug("frameworks activated", "folder", folder, "frameworks", ctx.FrameworkIDs())
		return ctx
	}

	return ctx
}
