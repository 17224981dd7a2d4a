package ports

import "go.trai.ch/rmake/internal/core/domain"

// Reporter prints build progress for the user. Depth is the nesting level of
// the target being built, starting at zero for a requested target.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Separator prints the rule shown before a verbose build.
	Separator()
	// TargetStarted announces that a stale target is being built.
	TargetStarted(depth int, name string)
	// CommandStarted echoes a command line before it is dispatched.
	CommandStarted(depth int, line string)
	// CommandFailed reports a command that exited with a non-zero status.
	CommandFailed(depth int, line string, exitCode int)
	// Summary prints the outcome of a build session.
	Summary(summary domain.BuildSummary)
	// SetColor enables or disables colored output.
	SetColor(enabled bool)
}
