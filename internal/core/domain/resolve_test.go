package domain_test

import (
	"testing"

	"github.com/loadstone/loadstone/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveTestDB() *domain.Database {
	db := domain.NewDatabase(domain.GameSkyrimSE, "v0.26")
	db.Upsert(&domain.ModRecord{Name: "Unofficial Skyrim Special Edition Patch.esp", CleanName: "unofficial skyrim special edition patch"})
	db.Upsert(&domain.ModRecord{Name: "Skyrim - Utilities.esp", CleanName: "skyrim - utilities"})
	db.Upsert(&domain.ModRecord{Name: "Ordinator.esp", CleanName: "ordinator"})
	return db
}

func TestResolve_Exact(t *testing.T) {
	db := resolveTestDB()
	key, rec, ok := db.Resolve("Ordinator.esp")
	require.True(t, ok)
	assert.Equal(t, "ordinator", key)
	assert.Equal(t, "Ordinator.esp", rec.Name)
}

func TestResolve_Compact(t *testing.T) {
	db := resolveTestDB()
	// Punctuation and spacing differences collapse in compact comparison.
	key, rec, ok := db.Resolve("SkyrimUtilities.esp")
	require.True(t, ok)
	assert.Equal(t, "skyrim - utilities", key)
	require.NotNil(t, rec)
}

func TestResolve_Fuzzy(t *testing.T) {
	db := resolveTestDB()
	key, _, ok := db.Resolve("Ordinatr.esp")
	require.True(t, ok)
	assert.Equal(t, "ordinator", key)
}

func TestResolve_MissIsNotAnError(t *testing.T) {
	db := resolveTestDB()
	_, _, ok := db.Resolve("Completely Different Plugin.esp")
	assert.False(t, ok)
}

func TestResolve_Idempotent(t *testing.T) {
	db := resolveTestDB()
	for _, name := range []string{"Ordinator.esp", "SkyrimUtilities.esp", "Ordinatr.esp"} {
		key, _, ok := db.Resolve(name)
		require.True(t, ok, name)
		again, _, ok := db.Resolve(key)
		require.True(t, ok, key)
		assert.Equal(t, key, again, "resolve(resolve(%q)) changed identity", name)
	}
}

func TestSuggest_LooserThanResolve(t *testing.T) {
	db := domain.NewDatabase(domain.GameSkyrimSE, "v0.26")
	db.Upsert(&domain.ModRecord{Name: "Ordinator.esp", CleanName: "ordinator"})

	// "ordntr" vs "ordinator" is edit distance 3 over length 9, similarity
	// ~0.667: above the suggest cutoff of 0.65 but below the resolve
	// cutoff of 0.70.
	_, _, ok := db.Resolve("ordntr")
	require.False(t, ok)

	hint, found := db.Suggest("ordntr")
	require.True(t, found)
	assert.Equal(t, "ordinator", hint)
}
