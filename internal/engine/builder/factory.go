// Package builder implements the dependency-graph build engine.
package builder

import (
	"github.com/google/uuid"
	"go.trai.ch/rmake/internal/adapters/telemetry"
	"go.trai.ch/rmake/internal/core/domain"
	"go.trai.ch/rmake/internal/core/ports"
)

// Options tunes a single build session.
type Options struct {
	// Verbosity 1 announces targets as they are built; 2 also logs staleness decisions.
	Verbosity int
	// Strict stops the build at the first command that exits with a non-zero status.
	Strict bool
	// DryRun reports commands without dispatching them.
	DryRun bool
}

// Factory creates one Engine per build session from the shared adapters.
type Factory struct {
	fs        ports.FileSystem
	executor  ports.Executor
	reporter  ports.Reporter
	logger    ports.Logger
	telemetry ports.Telemetry
	store     ports.BuildInfoStore
	hasher    ports.Hasher
}

// NewFactory creates a new Factory. A nil telemetry records nothing and a nil
// store disables the build journal.
func NewFactory(
	fs ports.FileSystem,
	executor ports.Executor,
	reporter ports.Reporter,
	logger ports.Logger,
	tel ports.Telemetry,
	store ports.BuildInfoStore,
	hasher ports.Hasher,
) *Factory {
	if tel == nil {
		tel = telemetry.NewNoOp()
	}
	return &Factory{
		fs:        fs,
		executor:  executor,
		reporter:  reporter,
		logger:    logger,
		telemetry: tel,
		store:     store,
		hasher:    hasher,
	}
}

// New instantiates one Target per rule of bf, all sharing env, and returns the
// Engine owning them.
func (f *Factory) New(bf *domain.BuildFile, env *domain.Environment, opts Options) (*Engine, error) {
	registry, err := bf.Registry()
	if err != nil {
		return nil, err
	}
	return &Engine{
		registry:  registry,
		env:       env,
		first:     bf.FirstTarget,
		session:   uuid.NewString(),
		opts:      opts,
		fs:        f.fs,
		executor:  f.executor,
		reporter:  f.reporter,
		logger:    f.logger,
		telemetry: f.telemetry,
		store:     f.store,
		hasher:    f.hasher,
	}, nil
}
