package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Registry indexes the targets of one build session by name, keeping
// declaration order.
type Registry struct {
	targets map[InternedString]*Target
	order   []InternedString
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		targets: make(map[InternedString]*Target),
	}
}

// Add registers a target.
// It returns an error if a target with the same name already exists.
func (r *Registry) Add(t *Target) error {
	if _, exists := r.targets[t.Name]; exists {
		return zerr.With(zerr.Wrap(ErrTargetAlreadyExists, "cannot register target"), "target", t.Name.String())
	}
	r.targets[t.Name] = t
	r.order = append(r.order, t.Name)
	return nil
}

// Lookup returns the target registered under name.
func (r *Registry) Lookup(name InternedString) (*Target, bool) {
	t, ok := r.targets[name]
	return t, ok
}

// Len returns the number of registered targets.
func (r *Registry) Len() int {
	return len(r.order)
}

// Names returns the target names in declaration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	for i, n := range r.order {
		names[i] = n.String()
	}
	return names
}

// NewCycleError builds an ErrCycleDetected error whose metadata spells out the
// cycle, starting from the first occurrence of dep on path.
func NewCycleError(path []InternedString, dep InternedString) error {
	startIdx := 0
	for i, node := range path {
		if node == dep {
			startIdx = i
			break
		}
	}
	parts := make([]string, 0, len(path)-startIdx+1)
	for _, node := range path[startIdx:] {
		parts = append(parts, node.String())
	}
	parts = append(parts, dep.String())
	return zerr.With(zerr.Wrap(ErrCycleDetected, "dependency graph is not acyclic"), "cycle", strings.Join(parts, " -> "))
}
