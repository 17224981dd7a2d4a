package domain

import (
	"fmt"
	"maps"
	"slices"

	"go.trai.ch/zerr"
)

// Environment is a scoped variable store. Each scope holds an ordered table of
// its own variables and an optional parent scope that lookups fall back to.
//
// Environments are not safe for concurrent use.
type Environment struct {
	vars   map[string]string
	order  []string
	parent *Environment
}

// NewEnvironment creates a scope seeded with table and chained to parent.
// A nil table starts the scope empty and a nil parent makes it a root scope.
// Seeded keys are ordered by name so verbose dumps stay stable.
func NewEnvironment(table map[string]string, parent *Environment) *Environment {
	env := &Environment{
		vars:   make(map[string]string, len(table)),
		parent: parent,
	}
	for _, k := range sortedKeys(table) {
		env.vars[k] = table[k]
		env.order = append(env.order, k)
	}
	return env
}

// EnvironmentFrom builds a scope from dynamically typed values. The table must
// be nil, a map[string]string or a map[string]any, whose values are formatted
// as strings, and the parent must be nil or an *Environment. Callers that
// already hold typed values use NewEnvironment.
func EnvironmentFrom(table, parent any) (*Environment, error) {
	var p *Environment
	switch v := parent.(type) {
	case nil:
	case *Environment:
		p = v
	default:
		return nil, zerr.With(zerr.Wrap(ErrInvalidEnvironmentParent, "cannot create variable scope"), "parent_type", fmt.Sprintf("%T", parent))
	}

	switch t := table.(type) {
	case nil:
		return NewEnvironment(nil, p), nil
	case map[string]string:
		return NewEnvironment(t, p), nil
	case map[string]any:
		converted := make(map[string]string, len(t))
		for k, v := range t {
			converted[k] = stringify(v)
		}
		return NewEnvironment(converted, p), nil
	default:
		return nil, zerr.With(zerr.Wrap(ErrInvalidEnvironmentTable, "cannot create variable scope"), "table_type", fmt.Sprintf("%T", table))
	}
}

// Parent returns the enclosing scope, or nil for a root scope.
func (e *Environment) Parent() *Environment {
	return e.parent
}

// Has reports whether key is defined in this scope or any ancestor.
func (e *Environment) Has(key string) bool {
	_, ok := e.Get(key)
	return ok
}

// Get returns the value of key from the nearest scope defining it.
func (e *Environment) Get(key string) (string, bool) {
	for scope := e; scope != nil; scope = scope.parent {
		if v, ok := scope.vars[key]; ok {
			return v, true
		}
	}
	return "", false
}

// Fetch returns the value of key, or def when no scope defines it.
func (e *Environment) Fetch(key, def string) string {
	if v, ok := e.Get(key); ok {
		return v
	}
	return def
}

// Set assigns key. A key already defined locally is overwritten here; a key
// defined only by an ancestor is updated in that ancestor, so every scope sharing
// it observes the change; otherwise the key is created locally.
func (e *Environment) Set(key, value string) {
	if owner := e.owner(key); owner != nil {
		owner.vars[key] = value
		return
	}
	e.vars[key] = value
	e.order = append(e.order, key)
}

// Delete removes key from the first scope, walking outward, that defines it and
// returns the removed value.
func (e *Environment) Delete(key string) (string, bool) {
	owner := e.owner(key)
	if owner == nil {
		return "", false
	}
	v := owner.vars[key]
	delete(owner.vars, key)
	for i, k := range owner.order {
		if k == key {
			owner.order = append(owner.order[:i], owner.order[i+1:]...)
			break
		}
	}
	return v, true
}

// Keys returns the keys defined directly in this scope, in insertion order.
func (e *Environment) Keys() []string {
	keys := make([]string, len(e.order))
	copy(keys, e.order)
	return keys
}

// owner returns the nearest scope that defines key.
func (e *Environment) owner(key string) *Environment {
	for scope := e; scope != nil; scope = scope.parent {
		if _, ok := scope.vars[key]; ok {
			return scope
		}
	}
	return nil
}

func sortedKeys(table map[string]string) []string {
	return slices.Sorted(maps.Keys(table))
}

func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}
