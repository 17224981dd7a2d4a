package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rmake/internal/core/ports"
)

// NodeID is the unique identifier for the build journal Graft node.
const NodeID graft.ID = "adapter.build_info_store"

func init() {
	graft.Register(graft.Node[ports.BuildInfoStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BuildInfoStore, error) {
			return NewStore(DefaultPath), nil
		},
	})
}
