package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rmake/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/rmake/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/rmake/internal/adapters/console"            //nolint:depguard // Wired in app layer
	"go.trai.ch/rmake/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/rmake/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/rmake/internal/adapters/watcher"            //nolint:depguard // Wired in app layer
	"go.trai.ch/rmake/internal/core/ports"
	"go.trai.ch/rmake/internal/engine/builder"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			builder.NodeID,
			logger.NodeID,
			console.NodeID,
			cas.NodeID,
			watcher.WatcherNodeID,
			watcher.ContentCacheNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.BuildFileLoader](ctx)
	if err != nil {
		return nil, err
	}

	factory, err := graft.Dep[*builder.Factory](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.BuildInfoStore](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	contents, err := graft.Dep[*watcher.ContentCache](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, factory, log, reporter, store).WithWatcher(w, contents), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       app,
		Logger:    log,
		Telemetry: tel,
	}, nil
}
