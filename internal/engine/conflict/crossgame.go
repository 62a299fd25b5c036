package conflict

import (
	"fmt"
	"strings"

	"github.com/loadstone/loadstone/internal/core/domain"
)

// crossGameRule flags a plugin whose name carries markers of a sibling
// title's edition. Pure substring matching over display names; advisory
// only, never authoritative.
type crossGameRule struct {
	games      []domain.Game
	marker     string
	wrongTitle string
	remedy     string
}

var crossGameRules = []crossGameRule{
	{
		games:      []domain.Game{domain.GameSkyrimSE, domain.GameSkyrimVR},
		marker:     "legendary edition",
		wrongTitle: "Skyrim Legendary Edition",
		remedy:     "look for a Special Edition port of this mod",
	},
	{
		games:      []domain.Game{domain.GameSkyrimSE, domain.GameSkyrimVR},
		marker:     " le ",
		wrongTitle: "Skyrim Legendary Edition",
		remedy:     "look for a Special Edition port of this mod",
	},
	{
		games:      []domain.Game{domain.GameSkyrim},
		marker:     "special edition",
		wrongTitle: "Skyrim Special Edition",
		remedy:     "look for the original Skyrim release of this mod",
	},
	{
		games:      []domain.Game{domain.GameSkyrim},
		marker:     " sse",
		wrongTitle: "Skyrim Special Edition",
		remedy:     "look for the original Skyrim release of this mod",
	},
	{
		games:      []domain.Game{domain.GameFalloutNV, domain.GameFallout3},
		marker:     "fo4",
		wrongTitle: "Fallout 4",
		remedy:     "this plugin targets Fallout 4's engine",
	},
	{
		games:      []domain.Game{domain.GameFallout4, domain.GameFallout4VR},
		marker:     "new vegas",
		wrongTitle: "Fallout: New Vegas",
		remedy:     "this plugin targets the New Vegas engine",
	},
	{
		games:      []domain.Game{domain.GameFallout4, domain.GameFallout4VR},
		marker:     "fnv",
		wrongTitle: "Fallout: New Vegas",
		remedy:     "this plugin targets the New Vegas engine",
	},
	{
		games:      []domain.Game{domain.GameFallout3},
		marker:     "fnv",
		wrongTitle: "Fallout: New Vegas",
		remedy:     "this plugin targets the New Vegas engine",
	},
}

// checkCrossGame returns a warning when an entry's name looks like it was
// built for a different edition of the selected title.
func checkCrossGame(game domain.Game, entry domain.LoadOrderEntry) *domain.Conflict {
	// Pad so word-edge markers like " le " can match at the name's ends.
	name := " " + strings.ToLower(entry.Name) + " "
	for _, rule := range crossGameRules {
		if !ruleApplies(rule, game) {
			continue
		}
		if strings.Contains(name, rule.marker) {
			return &domain.Conflict{
				Kind:        domain.ConflictCrossGame,
				Severity:    domain.SeverityWarning,
				AffectedMod: entry.Name,
				Message: fmt.Sprintf("%q looks like a %s plugin, which may not work with %s",
					entry.Name, rule.wrongTitle, game),
				SuggestedAction: rule.remedy,
			}
		}
	}
	return nil
}

func ruleApplies(rule crossGameRule, game domain.Game) bool {
	for _, g := range rule.games {
		if g == game {
			return true
		}
	}
	return false
}
