// Package app implements the application layer for rmake.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/joho/godotenv"
	"go.trai.ch/rmake/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/rmake/internal/core/domain"
	"go.trai.ch/rmake/internal/core/ports"
	"go.trai.ch/rmake/internal/engine/builder"
	"go.trai.ch/zerr"
)

// VerboseVariable raises the verbosity of a session like -v does.
const VerboseVariable = "VERBOSE"

// Override is a NAME=value assignment given on the command line.
type Override struct {
	Name  string
	Value string
}

// RunOptions configures a build.
type RunOptions struct {
	// File is the build file to load; empty means discover one in the working directory.
	File string
	// Verbosity 1 announces targets, 2 also logs staleness decisions and dumps the session.
	Verbosity int
	// Strict stops at the first failing command.
	Strict bool
	// DryRun reports commands without dispatching them.
	DryRun bool
	// NoColor disables colored progress output.
	NoColor bool
	// Watch rebuilds whenever files below the build file's directory change.
	Watch bool
	// Overrides are applied after the build file has been read.
	Overrides []Override
}

// App represents the main application logic.
type App struct {
	loader   ports.BuildFileLoader
	factory  *builder.Factory
	logger   ports.Logger
	reporter ports.Reporter
	store    ports.BuildInfoStore
	watcher  ports.Watcher
	contents *watcher.ContentCache
	out      io.Writer
	environ  func() []string
	debounce time.Duration
}

// New creates a new App instance.
func New(
	loader ports.BuildFileLoader,
	factory *builder.Factory,
	logger ports.Logger,
	reporter ports.Reporter,
	store ports.BuildInfoStore,
) *App {
	return &App{
		loader:   loader,
		factory:  factory,
		logger:   logger,
		reporter: reporter,
		store:    store,
		out:      os.Stdout,
		environ:  os.Environ,
		debounce: watcher.DefaultDebounceWindow,
	}
}

// WithWatcher enables watch mode.
func (a *App) WithWatcher(w ports.Watcher, contents *watcher.ContentCache) *App {
	a.watcher = w
	a.contents = contents
	return a
}

// WithOutput sets the writer used for listings and history.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithEnviron replaces the source of the process environment.
func (a *App) WithEnviron(environ func() []string) *App {
	a.environ = environ
	return a
}

// WithDebounceWindow sets how long watch mode waits for changes to settle.
func (a *App) WithDebounceWindow(window time.Duration) *App {
	a.debounce = window
	return a
}

// ParseArgs splits positional arguments into target names and NAME=value overrides.
func ParseArgs(args []string) ([]string, []Override) {
	var targets []string
	var overrides []Override
	for _, arg := range args {
		name, value, found := strings.Cut(arg, "=")
		if found && name != "" {
			overrides = append(overrides, Override{Name: name, Value: value})
			continue
		}
		targets = append(targets, arg)
	}
	return targets, overrides
}

// Run builds the named targets in order, or the default target when none are
// named. In watch mode it keeps rebuilding until ctx is done.
func (a *App) Run(ctx context.Context, targets []string, opts RunOptions) error {
	a.reporter.SetColor(!opts.NoColor)

	engine, path, err := a.session(opts)
	if err != nil {
		return errors.Join(domain.ErrBuildFailed, err)
	}

	err = a.build(ctx, engine, targets)
	a.report(engine)
	if !opts.Watch {
		if err != nil {
			return errors.Join(domain.ErrBuildFailed, err)
		}
		return nil
	}

	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		a.logger.Error(err)
	}
	return a.watch(ctx, filepath.Dir(path), targets, opts)
}

// List writes the declared target names matching pattern, in declaration order.
// An empty pattern matches every target.
func (a *App) List(file, pattern string) error {
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return zerr.With(zerr.Wrap(domain.ErrInvalidPattern, "cannot list targets"), "pattern", pattern)
	}

	_, _, bf, err := a.load(file, nil)
	if err != nil {
		return err
	}

	for _, name := range bf.Order {
		if pattern != "" {
			if ok, _ := doublestar.Match(pattern, name); !ok {
				continue
			}
		}
		if _, err := fmt.Fprintln(a.out, name); err != nil {
			return zerr.Wrap(err, "failed to write target list")
		}
	}
	return nil
}

// History writes the journal records for target, or for every target when it is empty.
func (a *App) History(target string) error {
	var infos []domain.BuildInfo
	if target == "" {
		all, err := a.store.List()
		if err != nil {
			return err
		}
		infos = all
	} else {
		info, err := a.store.Get(target)
		if err != nil {
			return err
		}
		if info == nil {
			return zerr.With(zerr.Wrap(domain.ErrTargetNotFound, "no journal record"), "target", target)
		}
		infos = []domain.BuildInfo{*info}
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "TARGET\tSTATUS\tCOMMANDS\tFAILURES\tBUILT\tSESSION")
	for _, info := range infos {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%s\n",
			info.Target,
			info.Status,
			info.Commands,
			info.Failures,
			info.Timestamp.Format(time.DateTime),
			info.Session,
		)
	}
	if err := tw.Flush(); err != nil {
		return zerr.Wrap(err, "failed to write history")
	}
	return nil
}

func (a *App) build(ctx context.Context, engine *builder.Engine, targets []string) error {
	if len(targets) == 0 {
		return engine.Build(ctx, "")
	}
	for _, target := range targets {
		if err := engine.Build(ctx, target); err != nil {
			return err
		}
	}
	return nil
}

// report prints the session's outcome when it is verbose or a target failed.
func (a *App) report(engine *builder.Engine) {
	summary := engine.Summary()
	if engine.Verbosity() >= 1 || summary.Count(domain.VertexStatusFailed) > 0 {
		a.reporter.Summary(summary)
	}
}

// session loads the build file into a fresh Engine.
func (a *App) session(opts RunOptions) (*builder.Engine, string, error) {
	a.applyVerbosity(opts.Verbosity)

	path, env, bf, err := a.load(opts.File, opts.Overrides)
	if err != nil {
		return nil, "", err
	}

	verbosity := max(opts.Verbosity, verbosityFrom(env))
	a.applyVerbosity(verbosity)
	if verbosity >= 2 {
		a.dump(bf, env)
	}

	engine, err := a.factory.New(bf, env, builder.Options{
		Verbosity: verbosity,
		Strict:    opts.Strict,
		DryRun:    opts.DryRun,
	})
	if err != nil {
		return nil, "", err
	}
	return engine, path, nil
}

// load discovers and parses the build file. The returned scope holds the build
// file's variables and the overrides; its parent holds the process environment
// and the .env file next to the build file.
func (a *App) load(file string, overrides []Override) (string, *domain.Environment, *domain.BuildFile, error) {
	path := file
	if path == "" {
		discovered, err := a.loader.Discover(".")
		if err != nil {
			return "", nil, nil, err
		}
		path = discovered
	}

	root, err := a.rootScope(path)
	if err != nil {
		return "", nil, nil, err
	}

	env := domain.NewEnvironment(nil, root)
	bf, err := a.loader.Load(path, env)
	if err != nil {
		return "", nil, nil, err
	}

	for _, o := range overrides {
		env.Set(o.Name, o.Value)
	}
	return path, env, bf, nil
}

func (a *App) rootScope(path string) (*domain.Environment, error) {
	vars := make(map[string]string)
	for _, kv := range a.environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			vars[k] = v
		}
	}

	dotenv := filepath.Join(filepath.Dir(path), ".env")
	if _, err := os.Stat(dotenv); err == nil {
		values, err := godotenv.Read(dotenv)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to read .env file"), "path", dotenv)
		}
		for k, v := range values {
			vars[k] = v
		}
	} else if !errors.Is(err, iofs.ErrNotExist) {
		return nil, zerr.With(zerr.Wrap(err, "failed to stat .env file"), "path", dotenv)
	}

	return domain.NewEnvironment(vars, nil), nil
}

func (a *App) applyVerbosity(verbosity int) {
	if verbosity >= 2 {
		a.logger.SetLevel(domain.LogLevelDebug)
		return
	}
	a.logger.SetLevel(domain.LogLevelInfo)
}

// dump logs the parsed build file and the build file's variable scope.
func (a *App) dump(bf *domain.BuildFile, env *domain.Environment) {
	a.logger.Debug("default target: " + bf.FirstTarget)
	for _, name := range bf.Order {
		a.logger.Debug(fmt.Sprintf("target %s: deps=%v commands=%q", name, bf.Dependencies[name], bf.Commands[name]))
	}
	for _, key := range env.Keys() {
		a.logger.Debug(fmt.Sprintf("variable %s = %s", key, env.Fetch(key, "")))
	}
	if parent := env.Parent(); parent != nil {
		a.logger.Debug(fmt.Sprintf("inherited variables: %d", len(parent.Keys())))
	}
}

// verbosityFrom reads VERBOSE as a leading integer, treating anything else as zero.
func verbosityFrom(env *domain.Environment) int {
	raw := strings.TrimSpace(env.Fetch(VerboseVariable, ""))
	end := 0
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(raw[:end])
	if err != nil {
		return 0
	}
	return n
}
