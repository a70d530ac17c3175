// SPDX-License-Identifier: MPL-2.0

package framework

import (
	"fmt"

	"localescope/pkg/manifest"
)

// Registry is the ordered catalog of frameworks. Order is significant:
// activation results and first-preference derivations (key style,
// namespace delimiter) follow registration order.
type Registry struct {
	frameworks []*Framework
	byID       map[string]*Framework
}

// NewRegistry creates a registry over the given frameworks, in order.
func NewRegistry(frameworks ...*Framework) (*Registry, error) {
	r := &Registry{byID: make(map[string]*Framework, len(frameworks))}
	for _, f := range frameworks {
		if err := r.Register(f); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Default returns a registry over the built-in catalog.
func Default() *Registry {
	r, err := NewRegistry(BuiltIn()...)
	if err != nil {
		// The built-in catalog has unique ids; reaching this is a
		// programming error.
		panic(fmt.Sprintf("framework: invalid built-in catalog: %v", err))
	}
	return r
}

// Register appends a framework to the catalog. Duplicate ids are
// rejected.
func (r *Registry) Register(f *Framework) error {
	if f == nil || f.ID == "" {
		return fmt.Errorf("framework: cannot register framework without an id")
	}
	if _, exists := r.byID[f.ID]; exists {
		return fmt.Errorf("framework: duplicate framework id %q", f.ID)
	}
	r.frameworks = append(r.frameworks, f)
	r.byID[f.ID] = f
	return nil
}

// All returns the frameworks in registration order.
func (r *Registry) All() []*Framework {
	out := make([]*Framework, len(r.frameworks))
	copy(out, r.frameworks)
	return out
}

// Lookup returns the framework with the given id.
func (r *Registry) Lookup(id string) (*Framework, bool) {
	f, ok := r.byID[id]
	return f, ok
}

// Active returns every framework whose predicate matches the dependency
// set and root, in registration order.
func (r *Registry) Active(deps manifest.DependencySet, root string) []*Framework {
	var active []*Framework
	for _, f := range r.frameworks {
		if f.Activates(deps, root) {
			active = append(active, f)
		}
	}
	return active
}
