package catalog

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/loadstone/loadstone/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"github.com/loadstone/loadstone/internal/adapters/loot"     //nolint:depguard // Wired in engine wiring
	"github.com/loadstone/loadstone/internal/adapters/snapshot" //nolint:depguard // Wired in engine wiring
	"github.com/loadstone/loadstone/internal/core/ports"
)

// NodeID is the unique identifier for the catalog Graft node.
const NodeID graft.ID = "engine.catalog"

func init() {
	graft.Register(graft.Node[*Catalog]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			loot.NodeID,
			snapshot.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Catalog, error) {
			source, err := graft.Dep[ports.MasterlistSource](ctx)
			if err != nil {
				return nil, err
			}
			snapshots, err := graft.Dep[ports.SnapshotStore](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(source, snapshots, log, DefaultCapacity)
		},
	})
}
