package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rmake/cmd/rmake/commands"
	"go.trai.ch/rmake/internal/app"
	"go.trai.ch/rmake/internal/build"
)

type mockApp struct {
	runFunc     func(ctx context.Context, targets []string, opts app.RunOptions) error
	listFunc    func(file, pattern string) error
	historyFunc func(target string) error
}

func (m *mockApp) Run(ctx context.Context, targets []string, opts app.RunOptions) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, targets, opts)
	}
	return nil
}

func (m *mockApp) List(file, pattern string) error {
	if m.listFunc != nil {
		return m.listFunc(file, pattern)
	}
	return nil
}

func (m *mockApp) History(target string) error {
	if m.historyFunc != nil {
		return m.historyFunc(target)
	}
	return nil
}

type runCall struct {
	called  bool
	targets []string
	opts    app.RunOptions
}

func recordRun(call *runCall) *mockApp {
	return &mockApp{
		runFunc: func(_ context.Context, targets []string, opts app.RunOptions) error {
			call.called = true
			call.targets = targets
			call.opts = opts
			return nil
		},
	}
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	if args == nil {
		args = []string{}
	}
	cli := commands.New(a)
	cli.SetArgs(args)
	out := new(bytes.Buffer)
	cli.SetOutput(out, out)
	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestCommands_Root(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	t.Run("builds default target without arguments", func(t *testing.T) {
		var call runCall
		_, err := execute(t, recordRun(&call))
		require.NoError(t, err)
		assert.True(t, call.called)
		assert.Empty(t, call.targets)
		assert.Equal(t, app.RunOptions{}, call.opts)
	})

	t.Run("wires flags and arguments", func(t *testing.T) {
		var call runCall
		_, err := execute(t, recordRun(&call),
			"-f", "build/RMakefile", "-vv", "--no-color", "-n", "--strict", "-w",
			"app", "CC=clang", "test",
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"app", "test"}, call.targets)
		assert.Equal(t, app.RunOptions{
			File:      "build/RMakefile",
			Verbosity: 2,
			Strict:    true,
			DryRun:    true,
			NoColor:   true,
			Watch:     true,
			Overrides: []app.Override{{Name: "CC", Value: "clang"}},
		}, call.opts)
	})

	t.Run("lists targets with the list flag", func(t *testing.T) {
		var file string
		listed := false
		a := &mockApp{
			runFunc: func(context.Context, []string, app.RunOptions) error {
				panic("should not be called")
			},
			listFunc: func(f, pattern string) error {
				listed = true
				file = f
				assert.Empty(t, pattern)
				return nil
			},
		}
		_, err := execute(t, a, "-l", "-f", "other.yaml")
		require.NoError(t, err)
		assert.True(t, listed)
		assert.Equal(t, "other.yaml", file)
	})

	t.Run("honors NO_COLOR", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		var call runCall
		_, err := execute(t, recordRun(&call), "app")
		require.NoError(t, err)
		assert.True(t, call.opts.NoColor)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		a := &mockApp{
			runFunc: func(context.Context, []string, app.RunOptions) error {
				return errors.New("simulated error")
			},
		}
		_, err := execute(t, a, "target")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Build(t *testing.T) {
	var call runCall
	_, err := execute(t, recordRun(&call), "build", "-f", "x.yml", "-v", "--strict", "lib", "DEBUG=1")
	require.NoError(t, err)
	assert.Equal(t, []string{"lib"}, call.targets)
	assert.Equal(t, "x.yml", call.opts.File)
	assert.Equal(t, 1, call.opts.Verbosity)
	assert.True(t, call.opts.Strict)
	assert.False(t, call.opts.DryRun)
	assert.Equal(t, []app.Override{{Name: "DEBUG", Value: "1"}}, call.opts.Overrides)
}

func TestCommands_List(t *testing.T) {
	t.Run("passes pattern", func(t *testing.T) {
		var got string
		a := &mockApp{listFunc: func(_, pattern string) error {
			got = pattern
			return nil
		}}
		_, err := execute(t, a, "list", "test-*")
		require.NoError(t, err)
		assert.Equal(t, "test-*", got)
	})

	t.Run("rejects extra arguments", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "list", "a", "b")
		require.Error(t, err)
	})
}

func TestCommands_History(t *testing.T) {
	var got string
	calls := 0
	a := &mockApp{historyFunc: func(target string) error {
		calls++
		got = target
		return nil
	}}

	_, err := execute(t, a, "history")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = execute(t, a, "history", "app")
	require.NoError(t, err)
	assert.Equal(t, "app", got)
	assert.Equal(t, 2, calls)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Equal(t, "rmake version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n", out)

	out, err = execute(t, &mockApp{}, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "version "+build.Version)
	assert.Contains(t, out, "commit: "+build.Commit)
}
