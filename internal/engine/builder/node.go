package builder

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rmake/internal/adapters/cas"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rmake/internal/adapters/console"            //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rmake/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rmake/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rmake/internal/adapters/shell"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rmake/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rmake/internal/core/ports"
)

// NodeID is the unique identifier for the builder factory Graft node.
const NodeID graft.ID = "engine.builder"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.FileSystemNodeID,
			shell.NodeID,
			console.NodeID,
			logger.NodeID,
			progrock.NodeID,
			cas.NodeID,
			fs.HasherNodeID,
		},
		Run: func(ctx context.Context) (*Factory, error) {
			fileSystem, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}

			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			reporter, err := graft.Dep[ports.Reporter](ctx)
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

			store, err := graft.Dep[ports.BuildInfoStore](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			return NewFactory(fileSystem, executor, reporter, log, tel, store, hasher), nil
		},
	})
}
