package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		input string
		want  []string
	}{
		{"Unofficial Skyrim Special Edition Patch.esp", []string{"unofficial", "skyrim", "special", "edition", "patch", "esp"}},
		{"Ordinator - Perks of Skyrim", []string{"ordinator", "perks", "of", "skyrim"}},
		{"a b c word", []string{"word"}},
		{"  ", nil},
		{"", nil},
		{"FO4 weapons-overhaul_v2", []string{"fo4", "weapons", "overhaul", "v2"}},
	}
	for _, tc := range cases {
		got := tokenize(tc.input)
		if tc.want == nil {
			assert.Empty(t, got, "input %q", tc.input)
			continue
		}
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}
}

func TestExpand_AbbreviationAddsFullPhraseTokens(t *testing.T) {
	got := expand([]string{"ussep"})
	assert.Equal(t, []string{"ussep", "unofficial", "skyrim", "special", "edition", "patch"}, got)
}

func TestExpand_MisspellingAddsCorrection(t *testing.T) {
	got := expand([]string{"skyrm", "weather"})
	assert.Contains(t, got, "skyrm")
	assert.Contains(t, got, "skyrim")
	assert.Contains(t, got, "weather")
}

func TestExpand_KeepsOriginalsAndDeduplicates(t *testing.T) {
	got := expand([]string{"skyrim", "skyrm"})
	// The correction collides with the literal token and is kept once.
	assert.Equal(t, []string{"skyrim", "skyrm"}, got)
}
