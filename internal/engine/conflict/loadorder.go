// Package conflict analyzes a user's plugin load order against the mod
// database: requirement and incompatibility checks, ordering rules, patch
// availability, and a suggested total order.
package conflict

import (
	"strings"

	"github.com/loadstone/loadstone/internal/core/domain"
)

// disabledSuffixes are filename annotations that mod managers append to
// plugins taken out of the load order.
var disabledSuffixes = []string{".ghost", ".disabled"}

// ParseLoadOrder reads the common textual load-order formats into entries.
// Per line: "#..." is a comment, "*name" is enabled (plugins.txt), "+name"
// and "-name" are enabled/disabled (mod-manager exports), anything else is
// an enabled plugin (loadorder.txt). Path-like lines reduce to their final
// segment; known disabled-suffix annotations mark the entry disabled.
// Positions are assigned in input order over the kept lines.
func ParseLoadOrder(text string) []domain.LoadOrderEntry {
	var entries []domain.LoadOrderEntry
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		enabled := true
		switch line[0] {
		case '*', '+':
			line = strings.TrimSpace(line[1:])
		case '-':
			line = strings.TrimSpace(line[1:])
			enabled = false
		}
		if line == "" {
			continue
		}

		// Windows exports show up with backslash paths regardless of the
		// host platform, so both separators are handled here.
		if i := strings.LastIndexAny(line, `/\`); i >= 0 {
			line = line[i+1:]
		}
		for _, suffix := range disabledSuffixes {
			if strings.HasSuffix(strings.ToLower(line), suffix) {
				line = line[:len(line)-len(suffix)]
				enabled = false
			}
		}
		if line == "" {
			continue
		}

		entries = append(entries, domain.LoadOrderEntry{
			Name:     line,
			Position: len(entries),
			Enabled:  enabled,
		})
	}
	return entries
}
