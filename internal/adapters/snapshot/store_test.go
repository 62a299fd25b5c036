package snapshot_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/loadstone/loadstone/internal/adapters/snapshot"
	"github.com/loadstone/loadstone/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotTestDB() *domain.Database {
	db := domain.NewDatabase(domain.GameSkyrimSE, "v0.26")
	db.Upsert(&domain.ModRecord{
		Name:         "Alpha.esp",
		CleanName:    "alpha",
		Requirements: []string{"beta"},
		LoadAfter:    []string{"skyrim"},
		DirtyEdits:   true,
		Messages:     []string{"Clean with SSEEdit."},
		Tags:         []string{"Relev"},
		Patches:      []domain.Patch{{For: "gamma", Name: "Alpha-Gamma Patch.esp"}},
		NexusModID:   "12345",
	})
	db.Upsert(&domain.ModRecord{Name: "Gamma.esp", CleanName: "gamma"})
	_ = db.AddAlias("alpha start", "alpha")
	return db
}

func TestStore_RoundTrip(t *testing.T) {
	store, err := snapshot.NewStore(t.TempDir())
	require.NoError(t, err)

	db := snapshotTestDB()
	require.NoError(t, store.Store(db))

	loaded, ok, err := store.Load(domain.GameSkyrimSE, "v0.26")
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, db.Game(), loaded.Game())
	assert.Equal(t, db.Version(), loaded.Version())
	assert.Equal(t, db.CanonicalKeys(), loaded.CanonicalKeys())
	assert.Equal(t, db.Aliases(), loaded.Aliases())

	for _, key := range db.CanonicalKeys() {
		want, _ := db.Get(key)
		got, found := loaded.Get(key)
		require.True(t, found, key)
		assert.Equal(t, want, got, key)
	}

	// The aliasing group survives: the alias still points at the same
	// record object as the canonical key.
	canonical, _ := loaded.Get("alpha")
	viaAlias, found := loaded.Get("alpha start")
	require.True(t, found)
	assert.Same(t, canonical, viaAlias)
}

func TestStore_FreshWriteIsAHit(t *testing.T) {
	store, err := snapshot.NewStore(t.TempDir())
	require.NoError(t, err)

	// The checksum must verify against the bytes exactly as the envelope
	// stores them, so a write followed by an immediate read is always a hit.
	db := domain.NewDatabase(domain.GameSkyrim, "v0.21")
	db.Upsert(&domain.ModRecord{Name: "Solo.esp", CleanName: "solo"})
	require.NoError(t, store.Store(db))

	loaded, ok, err := store.Load(domain.GameSkyrim, "v0.21")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, loaded.Len())
}

func TestStore_MissingIsAMiss(t *testing.T) {
	store, err := snapshot.NewStore(t.TempDir())
	require.NoError(t, err)

	_, ok, err := store.Load(domain.GameSkyrim, "v0.21")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_CorruptChecksumIsAMiss(t *testing.T) {
	dir := t.TempDir()
	store, err := snapshot.NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Store(snapshotTestDB()))

	path := filepath.Join(dir, "skyrimse-v0.26.json")
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var env map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &env))
	env["checksum"] = json.RawMessage(`"0000000000000000"`)
	tampered, err := json.Marshal(env)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, tampered, 0o644))

	_, ok, err := store.Load(domain.GameSkyrimSE, "v0.26")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_Delete(t *testing.T) {
	store, err := snapshot.NewStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Store(snapshotTestDB()))
	require.NoError(t, store.Delete(domain.GameSkyrimSE, "v0.26"))

	_, ok, err := store.Load(domain.GameSkyrimSE, "v0.26")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent snapshot is not an error.
	assert.NoError(t, store.Delete(domain.GameSkyrimSE, "v0.26"))
}
