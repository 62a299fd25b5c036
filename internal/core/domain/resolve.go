package domain

import "github.com/agnivade/levenshtein"

const (
	// ResolveCutoff is the similarity floor for treating a fuzzy match as
	// the queried mod's identity.
	ResolveCutoff = 0.70

	// SuggestCutoff is the looser floor used only to produce a
	// "did you mean" hint after resolution has already failed. The two
	// thresholds are intentionally distinct; their differing behavior is a
	// tested property.
	SuggestCutoff = 0.65
)

// Resolve maps an arbitrary user-supplied plugin name to a record. Lookup
// stages: exact clean-name key, compact comparison, then the single best
// fuzzy match at or above ResolveCutoff. Returns the resolved lookup key,
// the record, and whether anything matched. A miss is not an error.
func (d *Database) Resolve(name string) (string, *ModRecord, bool) {
	clean := CleanName(name)
	if rec, ok := d.Get(clean); ok {
		return clean, rec, true
	}

	d.buildCompactIndex()
	if key, ok := d.compact[CompactName(clean)]; ok {
		rec, _ := d.Get(key)
		return key, rec, true
	}

	if key, ok := d.bestFuzzyMatch(clean, ResolveCutoff); ok {
		rec, _ := d.Get(key)
		return key, rec, true
	}
	return "", nil, false
}

// Suggest returns a "did you mean" candidate for a name that failed to
// resolve. It never resolves an identity; callers use it purely for hint
// text.
func (d *Database) Suggest(name string) (string, bool) {
	d.buildCompactIndex()
	return d.bestFuzzyMatch(CleanName(name), SuggestCutoff)
}

// bestFuzzyMatch scans all lookup keys and returns the most similar one at
// or above the cutoff. Keys are scanned in sorted order so equal scores
// break ties deterministically.
func (d *Database) bestFuzzyMatch(clean string, cutoff float64) (string, bool) {
	if clean == "" {
		return "", false
	}
	best := ""
	bestScore := 0.0
	for _, key := range d.lookupKeys {
		score := similarity(clean, key)
		if score >= cutoff && score > bestScore {
			best = key
			bestScore = score
		}
	}
	return best, best != ""
}

// similarity is a normalized edit-distance ratio in [0, 1].
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}
