package builder

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.trai.ch/rmake/internal/core/domain"
	"go.trai.ch/rmake/internal/core/ports"
	"go.trai.ch/zerr"
)

// Engine owns the targets of one build session. Staleness decisions are
// memoized on the targets, so an Engine must not be reused across sessions.
//
// Engines are not safe for concurrent use.
type Engine struct {
	registry *domain.Registry
	env      *domain.Environment
	first    string
	session  string
	opts     Options

	fs        ports.FileSystem
	executor  ports.Executor
	reporter  ports.Reporter
	logger    ports.Logger
	telemetry ports.Telemetry
	store     ports.BuildInfoStore
	hasher    ports.Hasher
}

// Session returns the identifier recorded in the build journal for this session.
func (e *Engine) Session() string {
	return e.session
}

// Environment returns the variable scope shared by every command of the session.
func (e *Engine) Environment() *domain.Environment {
	return e.env
}

// TargetNames returns every declared target in declaration order.
func (e *Engine) TargetNames() []string {
	return e.registry.Names()
}

// Verbosity returns the verbosity level the session was created with.
func (e *Engine) Verbosity() int {
	return e.opts.Verbosity
}

// Summary returns the outcome of every target visited since the previous call.
func (e *Engine) Summary() domain.BuildSummary {
	return e.telemetry.Summary()
}

// Build brings the named target up to date. An empty name selects the first
// declared target; with no targets declared it does nothing.
func (e *Engine) Build(ctx context.Context, name string) error {
	if name == "" {
		if e.registry.Len() == 0 {
			return nil
		}
		name = e.first
	}

	target, ok := e.registry.Lookup(domain.NewInternedString(name))
	if !ok {
		return e.unknownTarget(name)
	}

	if e.opts.Verbosity >= 1 {
		e.reporter.Separator()
	}
	return e.build(ctx, target, 0, nil)
}

// NeedsRebuild reports whether the named target is stale. The decision is
// computed once per session.
func (e *Engine) NeedsRebuild(name string) (bool, error) {
	target, ok := e.registry.Lookup(domain.NewInternedString(name))
	if !ok {
		return false, e.unknownTarget(name)
	}
	return e.needsRebuild(target, nil)
}

func (e *Engine) build(ctx context.Context, t *domain.Target, depth int, path []domain.InternedString) error {
	if slices.Contains(path, t.Name) {
		return domain.NewCycleError(path, t.Name)
	}

	stale, err := e.needsRebuild(t, nil)
	if err != nil {
		return err
	}

	ctx, vertex := e.telemetry.Record(ctx, t.Name.String())
	if !stale {
		vertex.Cached()
		vertex.Complete(nil)
		return nil
	}

	if e.opts.Verbosity >= 1 {
		e.reporter.TargetStarted(depth, t.Name.String())
	}

	path = append(slices.Clip(path), t.Name)
	for _, dep := range t.Dependencies {
		depTarget, registered := e.registry.Lookup(dep)
		if !registered {
			continue
		}
		if err := e.build(ctx, depTarget, depth+1, path); err != nil {
			vertex.Complete(err)
			return err
		}
	}

	lines, failures, err := e.runCommands(ctx, t, depth)
	if err == nil || errors.Is(err, domain.ErrCommandFailed) {
		e.record(t, lines, failures)
	}
	switch {
	case err != nil:
		vertex.Complete(err)
	case failures > 0:
		vertex.Complete(zerr.With(zerr.Wrap(domain.ErrCommandFailed, "commands failed"), "failures", failures))
	default:
		vertex.Complete(nil)
	}
	if err != nil {
		return err
	}

	t.MarkBuilt()
	return nil
}

func (e *Engine) needsRebuild(t *domain.Target, path []domain.InternedString) (bool, error) {
	switch t.Staleness() {
	case domain.StalenessNeedsRebuild:
		return true, nil
	case domain.StalenessUpToDate:
		return false, nil
	case domain.StalenessUnknown:
	}

	if slices.Contains(path, t.Name) {
		return false, domain.NewCycleError(path, t.Name)
	}

	stale, err := e.evaluate(t, append(slices.Clip(path), t.Name))
	if err != nil {
		return false, err
	}
	if e.opts.Verbosity >= 2 {
		e.logger.Debug(fmt.Sprintf("target %s: %s", t.Name, staleLabel(stale)))
	}
	return t.Resolve(stale), nil
}

// evaluate scans the dependencies in declared order and stops at the first one
// that makes t stale.
func (e *Engine) evaluate(t *domain.Target, path []domain.InternedString) (bool, error) {
	own, exists, err := e.fs.ModTime(t.Name.String())
	if err != nil {
		return false, err
	}
	if !exists {
		return true, nil
	}

	for _, dep := range t.Dependencies {
		stale, err := e.dependencyForcesRebuild(own, dep, path)
		if err != nil || stale {
			return stale, err
		}
	}
	return false, nil
}

func (e *Engine) dependencyForcesRebuild(own time.Time, dep domain.InternedString, path []domain.InternedString) (bool, error) {
	if depTarget, registered := e.registry.Lookup(dep); registered {
		stale, err := e.needsRebuild(depTarget, path)
		if err != nil || stale {
			return stale, err
		}
	}

	mtime, exists, err := e.fs.ModTime(dep.String())
	if err != nil {
		return false, err
	}
	if !exists {
		return true, nil
	}
	return own.Before(mtime), nil
}

func (e *Engine) runCommands(ctx context.Context, t *domain.Target, depth int) ([]string, int, error) {
	lines := make([]string, 0, len(t.Commands))
	failures := 0
	for _, cmd := range t.Commands {
		outcome, err := e.runCommand(ctx, cmd, depth)
		if err != nil {
			return lines, failures, err
		}
		lines = append(lines, outcome.Line)
		if outcome.Succeeded() {
			continue
		}

		failures++
		e.reporter.CommandFailed(depth, outcome.Line, outcome.ExitCode)
		if vertex, ok := ports.VertexFromContext(ctx); ok {
			vertex.Log(domain.LogLevelWarn, fmt.Sprintf("%s exited with status %d", outcome.Line, outcome.ExitCode))
		}
		if e.opts.Strict {
			err := zerr.Wrap(domain.ErrCommandFailed, "build stopped")
			err = zerr.With(err, "target", t.Name.String())
			err = zerr.With(err, "command", outcome.Line)
			return lines, failures, zerr.With(err, "exit_code", outcome.ExitCode)
		}
	}
	return lines, failures, nil
}

func (e *Engine) runCommand(ctx context.Context, cmd *domain.Command, depth int) (domain.CommandOutcome, error) {
	line := cmd.Render(e.env)
	outcome := domain.CommandOutcome{Line: line}
	if domain.IsComment(line) {
		return outcome, nil
	}

	if cmd.Echo() || e.opts.DryRun {
		e.reporter.CommandStarted(depth, line)
	}
	if e.opts.DryRun {
		return outcome, nil
	}

	code, err := e.executor.Execute(ctx, line)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return outcome, zerr.Wrap(ctxErr, "build interrupted")
	}
	if err != nil {
		e.logger.Warn(fmt.Sprintf("could not dispatch %q: %v", line, err))
	}
	outcome.Dispatched = true
	outcome.ExitCode = code
	return outcome, nil
}

func (e *Engine) record(t *domain.Target, lines []string, failures int) {
	if e.opts.DryRun || e.store == nil {
		return
	}

	status := domain.VertexStatusCompleted
	if failures > 0 {
		status = domain.VertexStatusFailed
	}

	info := domain.BuildInfo{
		Target:      t.Name.String(),
		Session:     e.session,
		Status:      status,
		CommandHash: e.hasher.Fingerprint(lines),
		Commands:    len(lines),
		Failures:    failures,
		Timestamp:   time.Now(),
	}
	if err := e.store.Put(info); err != nil {
		e.logger.Warn(fmt.Sprintf("could not update build journal: %v", err))
	}
}

func staleLabel(stale bool) string {
	if stale {
		return domain.StalenessNeedsRebuild.String()
	}
	return domain.StalenessUpToDate.String()
}
