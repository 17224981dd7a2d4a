// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/rmake/internal/adapters/cas"
	_ "go.trai.ch/rmake/internal/adapters/config"
	_ "go.trai.ch/rmake/internal/adapters/console"
	_ "go.trai.ch/rmake/internal/adapters/fs"
	_ "go.trai.ch/rmake/internal/adapters/logger"
	_ "go.trai.ch/rmake/internal/adapters/shell"
	_ "go.trai.ch/rmake/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/rmake/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/rmake/internal/app"
	_ "go.trai.ch/rmake/internal/engine/builder"
)
