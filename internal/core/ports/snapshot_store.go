package ports

import "github.com/loadstone/loadstone/internal/core/domain"

// SnapshotStore persists parsed mod databases between process runs. It is a
// best-effort performance cache, never a source of truth: a missing or
// corrupt snapshot is reported as a miss, not an error.
//
//go:generate go run go.uber.org/mock/mockgen -source=snapshot_store.go -destination=mocks/mock_snapshot_store.go -package=mocks
type SnapshotStore interface {
	// Load returns the snapshot for a (game, version) pair, or ok=false on
	// a cache miss.
	Load(game domain.Game, version string) (db *domain.Database, ok bool, err error)

	// Store writes a snapshot for the database's (game, version) pair.
	Store(db *domain.Database) error

	// Delete removes the snapshot for a (game, version) pair, if present.
	Delete(game domain.Game, version string) error
}
