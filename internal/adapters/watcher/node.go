package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rmake/internal/adapters/fs"
	"go.trai.ch/rmake/internal/adapters/logger"
	"go.trai.ch/rmake/internal/core/ports"
)

const (
	// WatcherNodeID is the unique identifier for the file watcher Graft node.
	WatcherNodeID graft.ID = "adapter.watcher"
	// ContentCacheNodeID is the unique identifier for the content cache Graft node.
	ContentCacheNodeID graft.ID = "adapter.content_cache"
)

func init() {
	graft.Register(graft.Node[ports.Watcher]{
		ID:        WatcherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.WalkerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Watcher, error) {
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWatcher(walker, log), nil
		},
	})

	graft.Register(graft.Node[*ContentCache]{
		ID:        ContentCacheNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID},
		Run: func(ctx context.Context) (*ContentCache, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewContentCache(hasher), nil
		},
	})
}
