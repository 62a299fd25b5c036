package snapshot

import (
	"context"
	"os"
	"path/filepath"

	"github.com/grindlemire/graft"
	"github.com/loadstone/loadstone/internal/core/ports"
)

const NodeID graft.ID = "adapter.snapshot_store"

// cacheDir resolves the snapshot directory: LOADSTONE_CACHE_DIR wins, then
// the OS user cache dir, then a dotdir fallback for odd environments.
func cacheDir() string {
	if dir := os.Getenv("LOADSTONE_CACHE_DIR"); dir != "" {
		return dir
	}
	if base, err := os.UserCacheDir(); err == nil {
		return filepath.Join(base, "loadstone")
	}
	return ".loadstone-cache"
}

func init() {
	graft.Register(graft.Node[ports.SnapshotStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.SnapshotStore, error) {
			return NewStore(cacheDir())
		},
	})
}
