package domain

// Staleness is the memoized rebuild decision of a target.
type Staleness uint8

const (
	// StalenessUnknown means the decision has not been computed in this session.
	StalenessUnknown Staleness = iota
	// StalenessNeedsRebuild means the target is out of date.
	StalenessNeedsRebuild
	// StalenessUpToDate means the target is current, either on disk or after a build.
	StalenessUpToDate
)

// String returns a human-readable name for the staleness state.
func (s Staleness) String() string {
	switch s {
	case StalenessNeedsRebuild:
		return "needs-rebuild"
	case StalenessUpToDate:
		return "up-to-date"
	default:
		return "unknown"
	}
}

// Target is a node of the build graph: either a file produced by its commands
// or a phony label with no file behind it.
// Dependencies are names resolved through the Registry, never direct references.
type Target struct {
	Name         InternedString
	Dependencies []InternedString
	Commands     []*Command

	staleness Staleness
}

// NewTarget creates a target with its dependency names and command templates.
func NewTarget(name string, dependencies, commands []string) *Target {
	cmds := make([]*Command, len(commands))
	for i, c := range commands {
		cmds[i] = NewCommand(c)
	}
	return &Target{
		Name:         NewInternedString(name),
		Dependencies: NewInternedStrings(dependencies),
		Commands:     cmds,
	}
}

// Staleness returns the memoized rebuild decision.
func (t *Target) Staleness() Staleness {
	return t.staleness
}

// Resolve memoizes the rebuild decision and returns it.
func (t *Target) Resolve(needsRebuild bool) bool {
	if needsRebuild {
		t.staleness = StalenessNeedsRebuild
	} else {
		t.staleness = StalenessUpToDate
	}
	return needsRebuild
}

// MarkBuilt records that the target's commands have run, making later builds
// in the same session no-ops.
func (t *Target) MarkBuilt() {
	t.staleness = StalenessUpToDate
}
