package conflict

import (
	"fmt"

	"github.com/loadstone/loadstone/internal/core/domain"
)

// Report is the outcome of one load-order analysis. SuggestedOrder is a
// total ordering over the enabled, resolved entries; members of unresolved
// precedence cycles are appended in input order and also listed in Cyclic.
type Report struct {
	Game           domain.Game       `json:"game"`
	Version        string            `json:"masterlist_version"`
	Conflicts      []domain.Conflict `json:"conflicts"`
	SuggestedOrder []string          `json:"suggested_order"`
	Cyclic         []string          `json:"cyclic,omitempty"`
}

// Analyzer runs conflict detection for one database. It is cheap to
// construct and intended to live for a single Analyze call; the only state
// it accumulates is the database's internal lookup memo.
type Analyzer struct {
	db *domain.Database
}

// New creates an Analyzer over a mod database.
func New(db *domain.Database) *Analyzer {
	return &Analyzer{db: db}
}

// Analyze walks the entries in input order, emits conflicts per entry, and
// attaches a suggested load order. Unknown mods degrade to info-level
// findings; nothing here fails an otherwise well-formed analysis.
func (a *Analyzer) Analyze(entries []domain.LoadOrderEntry) *Report {
	report := &Report{
		Game:    a.db.Game(),
		Version: a.db.Version(),
	}

	// Presence of requirements, incompatibilities and patch targets is
	// judged against the enabled entries' clean names, at their input
	// positions.
	enabledPos := make(map[string]int)
	enabledName := make(map[string]string)
	for _, e := range entries {
		if !e.Enabled {
			continue
		}
		clean := domain.CleanName(e.Name)
		if _, seen := enabledPos[clean]; !seen {
			enabledPos[clean] = e.Position
			enabledName[clean] = e.Name
		}
	}

	for _, entry := range entries {
		if !entry.Enabled {
			continue
		}
		report.Conflicts = append(report.Conflicts, a.analyzeEntry(entry, enabledPos, enabledName)...)
	}

	order := suggestOrder(a.db, entries)
	report.SuggestedOrder = append(order.Order, order.Cyclic...)
	report.Cyclic = order.Cyclic
	return report
}

func (a *Analyzer) analyzeEntry(entry domain.LoadOrderEntry, enabledPos map[string]int, enabledName map[string]string) []domain.Conflict {
	var conflicts []domain.Conflict

	if c := checkCrossGame(a.db.Game(), entry); c != nil {
		conflicts = append(conflicts, *c)
	}

	_, rec, ok := a.db.Resolve(entry.Name)
	if !ok {
		c := domain.Conflict{
			Kind:        domain.ConflictUnknownMod,
			Severity:    domain.SeverityInfo,
			AffectedMod: entry.Name,
			Message:     fmt.Sprintf("%q is not in the masterlist; no metadata is available for it", entry.Name),
		}
		if hint, found := a.db.Suggest(entry.Name); found {
			c.SuggestedAction = fmt.Sprintf("did you mean %q?", hint)
		}
		return append(conflicts, c)
	}

	entryClean := domain.CleanName(entry.Name)

	for _, req := range rec.Requirements {
		if _, present := enabledPos[req]; present {
			continue
		}
		conflicts = append(conflicts, domain.Conflict{
			Kind:        domain.ConflictMissingRequirement,
			Severity:    domain.SeverityError,
			AffectedMod: entry.Name,
			RelatedMod:  req,
			Message: fmt.Sprintf("%q requires %q, which is not enabled in this load order",
				entry.Name, req),
			SuggestedAction: fmt.Sprintf("install and enable %q", req),
		})
	}

	for _, inc := range rec.Incompatibilities {
		other, present := enabledName[inc]
		if !present || inc == entryClean {
			continue
		}
		conflicts = append(conflicts, domain.Conflict{
			Kind:        domain.ConflictIncompatible,
			Severity:    domain.SeverityError,
			AffectedMod: entry.Name,
			RelatedMod:  other,
			Message: fmt.Sprintf("%q is flagged incompatible with %q; both are enabled",
				entry.Name, other),
			SuggestedAction: fmt.Sprintf("disable one of %q and %q", entry.Name, other),
		})
	}

	// Ordering rules are judged against actual input positions, not the
	// suggested order.
	for _, after := range rec.LoadAfter {
		otherPos, present := enabledPos[after]
		if !present || after == entryClean {
			continue
		}
		if entry.Position <= otherPos {
			conflicts = append(conflicts, fmtOrderViolation(entry.Name, enabledName[after], true))
		}
	}
	for _, before := range rec.LoadBefore {
		otherPos, present := enabledPos[before]
		if !present || before == entryClean {
			continue
		}
		if entry.Position >= otherPos {
			conflicts = append(conflicts, fmtOrderViolation(entry.Name, enabledName[before], false))
		}
	}

	for _, patch := range rec.Patches {
		if _, otherEnabled := enabledPos[patch.For]; !otherEnabled {
			continue
		}
		if _, patchEnabled := enabledPos[domain.CleanName(patch.Name)]; patchEnabled {
			continue
		}
		conflicts = append(conflicts, domain.Conflict{
			Kind:        domain.ConflictPatchAvailable,
			Severity:    domain.SeverityWarning,
			AffectedMod: entry.Name,
			RelatedMod:  enabledName[patch.For],
			Message: fmt.Sprintf("a compatibility patch exists for %q and %q but is not enabled",
				entry.Name, enabledName[patch.For]),
			SuggestedAction: fmt.Sprintf("install and enable %q", patch.Name),
		})
	}

	if rec.DirtyEdits {
		conflicts = append(conflicts, domain.Conflict{
			Kind:        domain.ConflictDirtyEdits,
			Severity:    domain.SeverityWarning,
			AffectedMod: entry.Name,
			Message:     fmt.Sprintf("%q contains dirty edits (identical-to-master or deleted records)", entry.Name),
			SuggestedAction: fmt.Sprintf("clean it with %s using the standard quick-clean procedure",
				a.db.Game().CleaningTool()),
		})
	}

	for _, msg := range rec.Messages {
		conflicts = append(conflicts, domain.Conflict{
			Kind:        domain.ConflictInfo,
			Severity:    domain.SeverityInfo,
			AffectedMod: entry.Name,
			Message:     soften(msg),
		})
	}

	return conflicts
}

func fmtOrderViolation(name, other string, after bool) domain.Conflict {
	direction := "after"
	if !after {
		direction = "before"
	}
	return domain.Conflict{
		Kind:        domain.ConflictLoadOrder,
		Severity:    domain.SeverityWarning,
		AffectedMod: name,
		RelatedMod:  other,
		Message: fmt.Sprintf("%q should load %s %q but currently does not",
			name, direction, other),
		SuggestedAction: fmt.Sprintf("move %q %s %q", name, direction, other),
	}
}
