// Package catalog owns the process-wide cache of parsed mod databases and
// the cold path that builds them: snapshot first, upstream fetch and parse
// on a miss.
package catalog

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/loadstone/loadstone/internal/adapters/masterlist"
	"github.com/loadstone/loadstone/internal/core/domain"
	"github.com/loadstone/loadstone/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// DefaultCapacity bounds how many (game, version) databases stay resident.
const DefaultCapacity = 8

// Latest selects the newest published masterlist version.
const Latest = "latest"

// Catalog hands out read-only mod databases keyed by (game, version),
// evicting the least recently used when capacity is exceeded. Concurrent
// requests for the same key share one build via singleflight.
type Catalog struct {
	source    ports.MasterlistSource
	snapshots ports.SnapshotStore
	log       ports.Logger

	cache *lru.Cache[string, *domain.Database]
	group singleflight.Group
}

// New creates a Catalog with the given cache capacity.
func New(source ports.MasterlistSource, snapshots ports.SnapshotStore, log ports.Logger, capacity int) (*Catalog, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	cache, err := lru.New[string, *domain.Database](capacity)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create database cache")
	}
	return &Catalog{
		source:    source,
		snapshots: snapshots,
		log:       log,
		cache:     cache,
	}, nil
}

// Get returns the database for a game and version selector ("latest" or an
// explicit tag). It never returns a partial database: any failure on the
// cold path surfaces as ErrMasterlistUnavailable.
func (c *Catalog) Get(ctx context.Context, game domain.Game, versionSel string) (*domain.Database, error) {
	version, err := c.resolveVersion(ctx, game, versionSel)
	if err != nil {
		return nil, err
	}

	key := cacheKey(game, version)
	if db, ok := c.cache.Get(key); ok {
		return db, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// Re-check under the flight: another caller may have just built it.
		if db, ok := c.cache.Get(key); ok {
			return db, nil
		}
		db, err := c.build(ctx, game, version)
		if err != nil {
			return nil, err
		}
		c.cache.Add(key, db)
		return db, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Database), nil
}

// Refresh discards the cached database and snapshot for a key and rebuilds
// from upstream.
func (c *Catalog) Refresh(ctx context.Context, game domain.Game, versionSel string) (*domain.Database, error) {
	version, err := c.resolveVersion(ctx, game, versionSel)
	if err != nil {
		return nil, err
	}
	c.cache.Remove(cacheKey(game, version))
	if err := c.snapshots.Delete(game, version); err != nil {
		c.log.Warn("failed to delete snapshot", "game", game.String(), "version", version)
	}
	return c.Get(ctx, game, version)
}

// Warm prefetches the latest database for each game concurrently. Intended
// for startup or a background task; never call it on a latency-sensitive
// path.
func (c *Catalog) Warm(ctx context.Context, gamesToWarm []domain.Game) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, game := range gamesToWarm {
		g.Go(func() error {
			_, err := c.Get(ctx, game, Latest)
			return err
		})
	}
	return g.Wait()
}

// Versions lists the published masterlist versions for a game, newest first.
func (c *Catalog) Versions(ctx context.Context, game domain.Game) ([]string, error) {
	return c.source.Versions(ctx, game)
}

func (c *Catalog) resolveVersion(ctx context.Context, game domain.Game, versionSel string) (string, error) {
	if versionSel != "" && versionSel != Latest {
		return versionSel, nil
	}
	versions, err := c.source.Versions(ctx, game)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve latest masterlist version")
	}
	if len(versions) == 0 {
		return "", zerr.With(zerr.Wrap(domain.ErrNoVersions, "failed to resolve latest masterlist version"), "game", game.String())
	}
	return versions[0], nil
}

// build is the cold path: snapshot, then fetch and parse, then a
// best-effort snapshot write.
func (c *Catalog) build(ctx context.Context, game domain.Game, version string) (*domain.Database, error) {
	db, ok, err := c.snapshots.Load(game, version)
	if err != nil {
		return nil, err
	}
	if ok {
		c.log.Debug("loaded database from snapshot", "game", game.String(), "version", version)
		return db, nil
	}

	raw, err := c.source.Fetch(ctx, game, version)
	if err != nil {
		return nil, unavailable(game, version, err)
	}
	db, err = masterlist.Parse(game, version, raw)
	if err != nil {
		return nil, unavailable(game, version, err)
	}
	c.log.Info("built mod database", "game", game.String(), "version", version, "mods", db.Len())

	if err := c.snapshots.Store(db); err != nil {
		// The snapshot is an optimization; losing it costs a re-download,
		// not correctness.
		c.log.Warn("failed to write snapshot", "game", game.String(), "version", version)
	}
	return db, nil
}

func cacheKey(game domain.Game, version string) string {
	return fmt.Sprintf("%s@%s", game, version)
}

// unavailable tags a cold-path failure with the ErrMasterlistUnavailable
// sentinel so callers can errors.Is it and fall back to a default
// game/version. The sentinel stays in the unwrap chain; the cause is
// carried as metadata.
func unavailable(game domain.Game, version string, cause error) error {
	err := zerr.With(zerr.Wrap(domain.ErrMasterlistUnavailable, "failed to build mod database"), "game", game.String())
	err = zerr.With(err, "version", version)
	return zerr.With(err, "cause", cause.Error())
}
