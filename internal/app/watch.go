package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.trai.ch/rmake/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/rmake/internal/core/domain"
	"go.trai.ch/zerr"
)

const watchBatchBuffer = 16

// watch rebuilds targets in a fresh session after every debounced batch of
// content changes below root, until ctx is done. Changes seen while a build
// runs, and for one debounce window after it, are recorded but do not trigger
// another build, so files written by the build itself never loop.
func (a *App) watch(ctx context.Context, root string, targets []string, opts RunOptions) error {
	if a.watcher == nil || a.contents == nil {
		return errors.Join(domain.ErrBuildFailed, zerr.New("watch mode is not available"))
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.watcher.Start(ctx, root); err != nil {
		return errors.Join(domain.ErrBuildFailed, err)
	}
	defer func() {
		if err := a.watcher.Stop(); err != nil {
			a.logger.Warn(fmt.Sprintf("could not stop watcher: %v", err))
		}
	}()

	batches := make(chan []string, watchBatchBuffer)
	debouncer := watcher.NewDebouncer(a.debounce, func(paths []string) {
		select {
		case batches <- paths:
		case <-ctx.Done():
		}
	})
	defer debouncer.Stop()

	gate := &quietGate{}
	go func() {
		for event := range a.watcher.Events() {
			if !gate.open() {
				a.contents.Changed([]string{event.Path})
				continue
			}
			debouncer.Add(event.Path)
		}
	}()

	a.logger.Info(fmt.Sprintf("watching %s, rebuilding %s on change", root, describeTargets(targets)))
	for {
		select {
		case <-ctx.Done():
			return nil
		case paths := <-batches:
			changed := a.contents.Changed(paths)
			if len(changed) == 0 || !gate.open() {
				continue
			}
			a.logger.Info(fmt.Sprintf("%d file(s) changed, rebuilding", len(changed)))

			gate.close()
			err := a.rebuild(ctx, targets, opts)
			gate.reopenAfter(a.debounce)
			debouncer.Reset()
			a.discardPending(batches)

			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				a.logger.Error(err)
			}
		}
	}
}

func (a *App) rebuild(ctx context.Context, targets []string, opts RunOptions) error {
	engine, _, err := a.session(opts)
	if err != nil {
		return err
	}
	err = a.build(ctx, engine, targets)
	a.report(engine)
	return err
}

// quietGate is closed while a build runs and until its quiet period ends.
type quietGate struct {
	mu       sync.Mutex
	building bool
	until    time.Time
}

func (g *quietGate) close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.building = true
}

// reopenAfter ends the build and keeps the gate closed for d.
func (g *quietGate) reopenAfter(d time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.building = false
	g.until = time.Now().Add(d)
}

func (g *quietGate) open() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return !g.building && !time.Now().Before(g.until)
}

// discardPending records the content of changes made during a build without
// acting on them.
func (a *App) discardPending(batches <-chan []string) {
	for {
		select {
		case paths := <-batches:
			a.contents.Changed(paths)
		default:
			return
		}
	}
}

func describeTargets(targets []string) string {
	if len(targets) == 0 {
		return "the default target"
	}
	return strings.Join(targets, ", ")
}
