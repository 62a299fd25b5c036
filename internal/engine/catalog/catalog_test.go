package catalog_test

import (
	"context"
	"sync"
	"testing"

	"github.com/loadstone/loadstone/internal/core/domain"
	"github.com/loadstone/loadstone/internal/core/ports/mocks"
	"github.com/loadstone/loadstone/internal/engine/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const sampleMasterlist = `
plugins:
  - name: 'Alpha.esp'
    url: 'https://www.nexusmods.com/skyrimspecialedition/mods/1234'
  - name: 'Beta.esp'
    after: [ 'Alpha.esp' ]
`

type fixture struct {
	source    *mocks.MockMasterlistSource
	snapshots *mocks.MockSnapshotStore
	catalog   *catalog.Catalog
}

func newFixture(t *testing.T, capacity int) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	source := mocks.NewMockMasterlistSource(ctrl)
	snapshots := mocks.NewMockSnapshotStore(ctrl)

	c, err := catalog.New(source, snapshots, log, capacity)
	require.NoError(t, err)
	return &fixture{source: source, snapshots: snapshots, catalog: c}
}

func TestCatalog_GetPrefersSnapshot(t *testing.T) {
	f := newFixture(t, 0)

	db := domain.NewDatabase(domain.GameSkyrimSE, "v0.26")
	f.snapshots.EXPECT().Load(domain.GameSkyrimSE, "v0.26").Return(db, true, nil)
	// No Fetch expectation: hitting upstream on a snapshot hit fails the test.

	got, err := f.catalog.Get(context.Background(), domain.GameSkyrimSE, "v0.26")
	require.NoError(t, err)
	assert.Same(t, db, got)
}

func TestCatalog_GetFetchesOnSnapshotMiss(t *testing.T) {
	f := newFixture(t, 0)

	f.snapshots.EXPECT().Load(domain.GameSkyrimSE, "v0.26").Return(nil, false, nil)
	f.source.EXPECT().Fetch(gomock.Any(), domain.GameSkyrimSE, "v0.26").
		Return([]byte(sampleMasterlist), nil)
	f.snapshots.EXPECT().Store(gomock.Any()).Return(nil)

	got, err := f.catalog.Get(context.Background(), domain.GameSkyrimSE, "v0.26")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Len())

	// Second call is served from the in-memory cache: no further mock calls.
	again, err := f.catalog.Get(context.Background(), domain.GameSkyrimSE, "v0.26")
	require.NoError(t, err)
	assert.Same(t, got, again)
}

func TestCatalog_GetResolvesLatest(t *testing.T) {
	f := newFixture(t, 0)

	f.source.EXPECT().Versions(gomock.Any(), domain.GameSkyrimSE).
		Return([]string{"v0.26", "v0.21"}, nil)
	db := domain.NewDatabase(domain.GameSkyrimSE, "v0.26")
	f.snapshots.EXPECT().Load(domain.GameSkyrimSE, "v0.26").Return(db, true, nil)

	got, err := f.catalog.Get(context.Background(), domain.GameSkyrimSE, catalog.Latest)
	require.NoError(t, err)
	assert.Same(t, db, got)
}

func TestCatalog_GetLatestWithNoVersions(t *testing.T) {
	f := newFixture(t, 0)

	// A source that lists no versions (without erroring) must not panic the
	// latest-resolution path.
	f.source.EXPECT().Versions(gomock.Any(), domain.GameSkyrimSE).
		Return([]string{}, nil)

	_, err := f.catalog.Get(context.Background(), domain.GameSkyrimSE, catalog.Latest)
	assert.ErrorIs(t, err, domain.ErrNoVersions)
}

func TestCatalog_GetFetchFailureIsUnavailable(t *testing.T) {
	f := newFixture(t, 0)

	f.snapshots.EXPECT().Load(domain.GameSkyrimSE, "v0.26").Return(nil, false, nil)
	f.source.EXPECT().Fetch(gomock.Any(), domain.GameSkyrimSE, "v0.26").
		Return(nil, assert.AnError)

	_, err := f.catalog.Get(context.Background(), domain.GameSkyrimSE, "v0.26")
	assert.ErrorIs(t, err, domain.ErrMasterlistUnavailable)
}

func TestCatalog_GetSnapshotWriteFailureIsNonFatal(t *testing.T) {
	f := newFixture(t, 0)

	f.snapshots.EXPECT().Load(domain.GameSkyrimSE, "v0.26").Return(nil, false, nil)
	f.source.EXPECT().Fetch(gomock.Any(), domain.GameSkyrimSE, "v0.26").
		Return([]byte(sampleMasterlist), nil)
	f.snapshots.EXPECT().Store(gomock.Any()).Return(assert.AnError)

	got, err := f.catalog.Get(context.Background(), domain.GameSkyrimSE, "v0.26")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Len())
}

func TestCatalog_RefreshDiscardsCachedState(t *testing.T) {
	f := newFixture(t, 0)

	f.snapshots.EXPECT().Load(domain.GameSkyrimSE, "v0.26").Return(nil, false, nil)
	f.source.EXPECT().Fetch(gomock.Any(), domain.GameSkyrimSE, "v0.26").
		Return([]byte(sampleMasterlist), nil).Times(2)
	f.snapshots.EXPECT().Store(gomock.Any()).Return(nil).Times(2)

	first, err := f.catalog.Get(context.Background(), domain.GameSkyrimSE, "v0.26")
	require.NoError(t, err)

	f.snapshots.EXPECT().Delete(domain.GameSkyrimSE, "v0.26").Return(nil)
	f.snapshots.EXPECT().Load(domain.GameSkyrimSE, "v0.26").Return(nil, false, nil)

	second, err := f.catalog.Refresh(context.Background(), domain.GameSkyrimSE, "v0.26")
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}

func TestCatalog_ConcurrentGetsShareOneBuild(t *testing.T) {
	f := newFixture(t, 0)

	// Exactly one cold-path build regardless of caller count.
	f.snapshots.EXPECT().Load(domain.GameSkyrimSE, "v0.26").Return(nil, false, nil).Times(1)
	f.source.EXPECT().Fetch(gomock.Any(), domain.GameSkyrimSE, "v0.26").
		Return([]byte(sampleMasterlist), nil).Times(1)
	f.snapshots.EXPECT().Store(gomock.Any()).Return(nil).Times(1)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.catalog.Get(context.Background(), domain.GameSkyrimSE, "v0.26")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}

func TestCatalog_EvictsLeastRecentlyUsed(t *testing.T) {
	f := newFixture(t, 1)

	f.snapshots.EXPECT().Load(domain.GameSkyrimSE, "v0.26").
		Return(domain.NewDatabase(domain.GameSkyrimSE, "v0.26"), true, nil).Times(2)
	f.snapshots.EXPECT().Load(domain.GameOblivion, "v0.26").
		Return(domain.NewDatabase(domain.GameOblivion, "v0.26"), true, nil)

	_, err := f.catalog.Get(context.Background(), domain.GameSkyrimSE, "v0.26")
	require.NoError(t, err)
	_, err = f.catalog.Get(context.Background(), domain.GameOblivion, "v0.26")
	require.NoError(t, err)

	// Capacity 1: the skyrimse entry was evicted and must be rebuilt.
	_, err = f.catalog.Get(context.Background(), domain.GameSkyrimSE, "v0.26")
	require.NoError(t, err)
}
