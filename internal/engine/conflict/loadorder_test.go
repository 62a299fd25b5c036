package conflict_test

import (
	"testing"

	"github.com/loadstone/loadstone/internal/core/domain"
	"github.com/loadstone/loadstone/internal/engine/conflict"
	"github.com/stretchr/testify/assert"
)

func TestParseLoadOrder(t *testing.T) {
	input := `# plugins.txt exported 2026-08-01
*Skyrim.esm
*Unofficial Skyrim Special Edition Patch.esp
+Ordinator - Perks of Skyrim.esp
-Disabled Thing.esp

C:\Games\Skyrim\Data\Pathed Mod.esp
Ghosted Mod.esp.ghost
loose-entry.esp
`

	got := conflict.ParseLoadOrder(input)
	want := []domain.LoadOrderEntry{
		{Name: "Skyrim.esm", Position: 0, Enabled: true},
		{Name: "Unofficial Skyrim Special Edition Patch.esp", Position: 1, Enabled: true},
		{Name: "Ordinator - Perks of Skyrim.esp", Position: 2, Enabled: true},
		{Name: "Disabled Thing.esp", Position: 3, Enabled: false},
		{Name: "Pathed Mod.esp", Position: 4, Enabled: true},
		{Name: "Ghosted Mod.esp", Position: 5, Enabled: false},
		{Name: "loose-entry.esp", Position: 6, Enabled: true},
	}
	assert.Equal(t, want, got)
}

func TestParseLoadOrder_EmptyAndCommentsOnly(t *testing.T) {
	assert.Empty(t, conflict.ParseLoadOrder(""))
	assert.Empty(t, conflict.ParseLoadOrder("# just a comment\n\n  \n"))
	// A bare marker with no name is dropped, not recorded as an empty entry.
	assert.Empty(t, conflict.ParseLoadOrder("*\n-\n"))
}
