package conflict_test

import (
	"strings"
	"testing"

	"github.com/loadstone/loadstone/internal/core/domain"
	"github.com/loadstone/loadstone/internal/engine/conflict"
	"github.com/stretchr/testify/assert"
)

func TestRenderDense(t *testing.T) {
	report := &conflict.Report{
		Game:    domain.GameSkyrimSE,
		Version: "v0.26",
		Conflicts: []domain.Conflict{
			{
				Kind:            domain.ConflictMissingRequirement,
				Severity:        domain.SeverityError,
				AffectedMod:     "Wyrmstooth.esp",
				RelatedMod:      "skse",
				Message:         `"Wyrmstooth.esp" requires "skse"`,
				SuggestedAction: `install and enable "skse"`,
			},
			{
				Kind:        domain.ConflictDirtyEdits,
				Severity:    domain.SeverityWarning,
				AffectedMod: "Dawnguard.esm",
				Message:     "dirty edits",
			},
		},
		SuggestedOrder: []string{"Skyrim.esm", "Wyrmstooth.esp"},
	}

	got := conflict.RenderDense(report)
	want := `[missing_requirement] error [Wyrmstooth.esp <-> skse]: "Wyrmstooth.esp" requires "skse"
  -> install and enable "skse"
[dirty_edits] warning [Dawnguard.esm]: dirty edits
order: Skyrim.esm|Wyrmstooth.esp
`
	assert.Equal(t, want, got)
}

func TestRenderText(t *testing.T) {
	report := &conflict.Report{
		Game:    domain.GameSkyrimSE,
		Version: "v0.26",
		Conflicts: []domain.Conflict{
			{Kind: domain.ConflictIncompatible, Severity: domain.SeverityError, AffectedMod: "A.esp", Message: "A clashes with B"},
			{Kind: domain.ConflictInfo, Severity: domain.SeverityInfo, AffectedMod: "A.esp", Message: "a note"},
		},
		SuggestedOrder: []string{"A.esp", "B.esp"},
	}

	got := conflict.RenderText(report)
	assert.Contains(t, got, "Load order analysis for skyrimse (masterlist v0.26)")
	assert.Contains(t, got, "Errors (1)")
	assert.Contains(t, got, "A clashes with B")
	assert.Contains(t, got, "Notes (1)")
	assert.Contains(t, got, "  1. A.esp")
	assert.Contains(t, got, "  2. B.esp")
}

func TestRenderText_NoConflicts(t *testing.T) {
	report := &conflict.Report{Game: domain.GameSkyrimSE, Version: "v0.26"}
	got := conflict.RenderText(report)
	assert.Contains(t, got, "No conflicts found.")
	assert.False(t, strings.Contains(got, "Suggested load order"))
}

func TestRenderText_CapsInfoPreview(t *testing.T) {
	report := &conflict.Report{Game: domain.GameSkyrimSE, Version: "v0.26"}
	for range 14 {
		report.Conflicts = append(report.Conflicts, domain.Conflict{
			Kind:        domain.ConflictInfo,
			Severity:    domain.SeverityInfo,
			AffectedMod: "A.esp",
			Message:     "a note",
		})
	}

	got := conflict.RenderText(report)
	assert.Contains(t, got, "Notes (14)")
	assert.Contains(t, got, "... and 4 more")
}
