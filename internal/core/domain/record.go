package domain

import (
	"sort"

	"github.com/samber/lo"
)

// Patch names a compatibility patch that stitches this mod together with
// another one.
type Patch struct {
	// For is the clean name of the other mod the patch targets.
	For string `json:"for"`
	// Name is the plugin name of the patch itself.
	Name string `json:"patch"`
}

// ModRecord is the canonical, read-only description of one mod assembled
// from the masterlist. All reference lists (requirements, incompatibilities,
// ordering rules, patch targets) hold clean names. Messages are already
// rendered to display text.
type ModRecord struct {
	Name              string   `json:"name"`
	CleanName         string   `json:"clean_name"`
	Requirements      []string `json:"requirements"`
	Incompatibilities []string `json:"incompatibilities"`
	LoadAfter         []string `json:"load_after"`
	LoadBefore        []string `json:"load_before"`
	Patches           []Patch  `json:"patches"`
	DirtyEdits        bool     `json:"dirty_edits"`
	Messages          []string `json:"messages"`
	Tags              []string `json:"tags"`
	NexusModID        string   `json:"nexus_mod_id,omitempty"`
	PictureURL        string   `json:"picture_url,omitempty"`
}

// merge unions another record's list fields into this one and ORs the dirty
// flag. The first-seen display name wins. Order of unioned lists is not
// significant; they are kept sorted for determinism.
func (r *ModRecord) merge(other *ModRecord) {
	r.Requirements = unionSorted(r.Requirements, other.Requirements)
	r.Incompatibilities = unionSorted(r.Incompatibilities, other.Incompatibilities)
	r.LoadAfter = unionSorted(r.LoadAfter, other.LoadAfter)
	r.LoadBefore = unionSorted(r.LoadBefore, other.LoadBefore)
	r.Messages = unionSorted(r.Messages, other.Messages)
	r.Tags = unionSorted(r.Tags, other.Tags)
	r.DirtyEdits = r.DirtyEdits || other.DirtyEdits
	r.Patches = unionPatches(r.Patches, other.Patches)
	if r.NexusModID == "" {
		r.NexusModID = other.NexusModID
	}
	if r.PictureURL == "" {
		r.PictureURL = other.PictureURL
	}
}

func unionSorted(a, b []string) []string {
	merged := lo.Uniq(append(append([]string{}, a...), b...))
	sort.Strings(merged)
	return merged
}

func unionPatches(a, b []Patch) []Patch {
	merged := lo.UniqBy(append(append([]Patch{}, a...), b...), func(p Patch) string {
		return p.For + "\x00" + p.Name
	})
	sort.Slice(merged, func(i, j int) bool {
		if merged[i].For != merged[j].For {
			return merged[i].For < merged[j].For
		}
		return merged[i].Name < merged[j].Name
	})
	return merged
}
