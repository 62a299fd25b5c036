package domain

// ScoreBreakdown exposes how a search hit's final score was assembled, so
// ranking stays debuggable when the boost constants are retuned.
type ScoreBreakdown struct {
	BM25           float64 `json:"bm25"`
	AuthorityBoost float64 `json:"authority_boost"`
	NameBoost      float64 `json:"name_boost"`
}

// SearchHit is one ranked result. Requirements, incompatibilities and tags
// are trimmed views of the underlying record, not the full lists.
type SearchHit struct {
	ModName           string         `json:"mod_name"`
	CleanName         string         `json:"clean_name"`
	Score             float64        `json:"score"`
	Breakdown         ScoreBreakdown `json:"score_breakdown"`
	MatchedTerms      []string       `json:"matched_terms"`
	Snippet           string         `json:"snippet,omitempty"`
	Requirements      []string       `json:"requirements,omitempty"`
	Incompatibilities []string       `json:"incompatibilities,omitempty"`
	Tags              []string       `json:"tags,omitempty"`
	NexusModID        string         `json:"nexus_mod_id,omitempty"`
}

// CompactHit is the dense result shape for machine consumption.
type CompactHit struct {
	Name    string   `json:"name"`
	Score   float64  `json:"score"`
	Snippet string   `json:"snippet,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// Compact trims a hit down to the machine shape.
func (h SearchHit) Compact() CompactHit {
	return CompactHit{
		Name:    h.ModName,
		Score:   h.Score,
		Snippet: h.Snippet,
		Tags:    h.Tags,
	}
}
