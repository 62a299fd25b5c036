package loot

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/loadstone/loadstone/internal/adapters/logger"
	"github.com/loadstone/loadstone/internal/core/ports"
)

const NodeID graft.ID = "adapter.masterlist_source"

func init() {
	graft.Register(graft.Node[ports.MasterlistSource]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.MasterlistSource, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(log), nil
		},
	})
}
