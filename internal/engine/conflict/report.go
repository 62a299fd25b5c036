package conflict

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/loadstone/loadstone/internal/core/domain"
)

// infoPreviewCap bounds how many info-level findings the human report
// prints before collapsing the rest into a count.
const infoPreviewCap = 10

var (
	errorHeading   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	warningHeading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	infoHeading    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	sectionHeading = lipgloss.NewStyle().Bold(true)
	dimText        = lipgloss.NewStyle().Faint(true)
)

// RenderText renders the grouped human-readable report: errors first, then
// warnings, then a capped preview of info items, then the suggested order.
func RenderText(r *Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Load order analysis for %s (masterlist %s)\n", r.Game, r.Version)

	errors := filterBySeverity(r.Conflicts, domain.SeverityError)
	warnings := filterBySeverity(r.Conflicts, domain.SeverityWarning)
	infos := filterBySeverity(r.Conflicts, domain.SeverityInfo)

	if len(errors) == 0 && len(warnings) == 0 && len(infos) == 0 {
		b.WriteString("\nNo conflicts found.\n")
	}

	renderGroup(&b, errorHeading.Render(fmt.Sprintf("Errors (%d)", len(errors))), errors, len(errors))
	renderGroup(&b, warningHeading.Render(fmt.Sprintf("Warnings (%d)", len(warnings))), warnings, len(warnings))
	renderGroup(&b, infoHeading.Render(fmt.Sprintf("Notes (%d)", len(infos))), infos, infoPreviewCap)

	if len(r.SuggestedOrder) > 0 {
		b.WriteString("\n" + sectionHeading.Render("Suggested load order") + "\n")
		for i, name := range r.SuggestedOrder {
			fmt.Fprintf(&b, "%3d. %s\n", i+1, name)
		}
	}
	if len(r.Cyclic) > 0 {
		b.WriteString(dimText.Render(fmt.Sprintf(
			"\n%d plugin(s) form an ordering cycle and were kept in input order: %s",
			len(r.Cyclic), strings.Join(r.Cyclic, ", "))) + "\n")
	}
	return b.String()
}

func renderGroup(b *strings.Builder, heading string, conflicts []domain.Conflict, limit int) {
	if len(conflicts) == 0 {
		return
	}
	b.WriteString("\n" + heading + "\n")
	for i, c := range conflicts {
		if i >= limit {
			b.WriteString(dimText.Render(fmt.Sprintf("  ... and %d more", len(conflicts)-limit)) + "\n")
			break
		}
		fmt.Fprintf(b, "  - %s\n", c.Message)
		if c.SuggestedAction != "" {
			fmt.Fprintf(b, "    %s\n", dimText.Render("-> "+c.SuggestedAction))
		}
	}
}

// RenderDense renders the single-line-per-conflict machine format:
//
//	[kind] severity [modA <-> modB]: message
//	  -> action
func RenderDense(r *Report) string {
	var b strings.Builder
	for _, c := range r.Conflicts {
		mods := c.AffectedMod
		if c.RelatedMod != "" {
			mods += " <-> " + c.RelatedMod
		}
		fmt.Fprintf(&b, "[%s] %s [%s]: %s\n", c.Kind, c.Severity, mods, c.Message)
		if c.SuggestedAction != "" {
			fmt.Fprintf(&b, "  -> %s\n", c.SuggestedAction)
		}
	}
	if len(r.SuggestedOrder) > 0 {
		fmt.Fprintf(&b, "order: %s\n", strings.Join(r.SuggestedOrder, "|"))
	}
	return b.String()
}

func filterBySeverity(conflicts []domain.Conflict, severity domain.Severity) []domain.Conflict {
	var out []domain.Conflict
	for _, c := range conflicts {
		if c.Severity == severity {
			out = append(out, c)
		}
	}
	return out
}
