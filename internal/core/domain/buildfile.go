package domain

import "go.trai.ch/zerr"

// BuildFile is the parsed form of a build description: rules in declaration
// order with their dependency names and raw command templates. Variable
// assignments are applied to an Environment while parsing and are not kept here.
type BuildFile struct {
	// Path is the file the rules were read from.
	Path string
	// FirstTarget names the first declared rule, the default build target.
	FirstTarget string
	// Order lists target names in the order they were first declared.
	Order []string
	// Dependencies maps each target to its dependency names.
	Dependencies map[string][]string
	// Commands maps each target to its command templates.
	Commands map[string][]string
}

// NewBuildFile creates an empty BuildFile for path.
func NewBuildFile(path string) *BuildFile {
	return &BuildFile{
		Path:         path,
		Dependencies: make(map[string][]string),
		Commands:     make(map[string][]string),
	}
}

// AddRule declares target with deps. Repeated rules for one target append their
// dependencies.
func (b *BuildFile) AddRule(target string, deps []string) error {
	if target == "" {
		return ErrInvalidRule
	}
	if b.FirstTarget == "" {
		b.FirstTarget = target
	}
	existing, ok := b.Dependencies[target]
	if !ok {
		b.Order = append(b.Order, target)
		existing = []string{}
	}
	b.Dependencies[target] = append(existing, deps...)
	return nil
}

// AddCommand appends a command template to a declared target.
func (b *BuildFile) AddCommand(target, command string) error {
	if _, ok := b.Dependencies[target]; !ok {
		return zerr.With(zerr.Wrap(ErrTargetNotFound, "cannot add command"), "target", target)
	}
	b.Commands[target] = append(b.Commands[target], command)
	return nil
}

// Registry creates one Target per declared rule.
func (b *BuildFile) Registry() (*Registry, error) {
	r := NewRegistry()
	for _, name := range b.Order {
		if err := r.Add(NewTarget(name, b.Dependencies[name], b.Commands[name])); err != nil {
			return nil, err
		}
	}
	return r, nil
}
