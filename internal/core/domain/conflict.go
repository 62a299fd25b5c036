package domain

// ConflictKind classifies an analysis finding.
type ConflictKind string

const (
	ConflictMissingRequirement ConflictKind = "missing_requirement"
	ConflictIncompatible       ConflictKind = "incompatible"
	ConflictLoadOrder          ConflictKind = "load_order_violation"
	ConflictPatchAvailable     ConflictKind = "patch_available"
	ConflictDirtyEdits         ConflictKind = "dirty_edits"
	ConflictUnknownMod         ConflictKind = "unknown_mod"
	ConflictCrossGame          ConflictKind = "cross_game"
	ConflictInfo               ConflictKind = "info"
)

// Severity grades a conflict for reporting.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Conflict is one finding produced by load-order analysis. The analysis is
// advisory; even errors describe the load order, they never abort it.
type Conflict struct {
	Kind            ConflictKind `json:"kind"`
	Severity        Severity     `json:"severity"`
	Message         string       `json:"message"`
	AffectedMod     string       `json:"affected_mod"`
	RelatedMod      string       `json:"related_mod,omitempty"`
	SuggestedAction string       `json:"suggested_action,omitempty"`
}

// LoadOrderEntry is one line of a user's plugin list, positions as given in
// the input (0-based), before any reordering.
type LoadOrderEntry struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
	Enabled  bool   `json:"enabled"`
}
