package ports

import (
	"context"

	"github.com/loadstone/loadstone/internal/core/domain"
)

// MasterlistSource fetches raw masterlist documents and lists the versions
// available upstream. Implementations own retry/backoff; callers treat a
// returned error as total unavailability.
//
//go:generate go run go.uber.org/mock/mockgen -source=masterlist_source.go -destination=mocks/mock_masterlist_source.go -package=mocks
type MasterlistSource interface {
	// Fetch downloads the raw masterlist document for a game at an explicit
	// version tag.
	Fetch(ctx context.Context, game domain.Game, version string) ([]byte, error)

	// Versions lists the masterlist versions published for a game, sorted
	// descending so the first element is the latest.
	Versions(ctx context.Context, game domain.Game) ([]string, error)
}
