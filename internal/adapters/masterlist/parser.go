package masterlist

import (
	"regexp"
	"strings"

	"github.com/loadstone/loadstone/internal/core/domain"
	"github.com/samber/lo"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// regexMetaChars are the characters that mark a plugin name as a pattern
// over filenames rather than a literal filename.
const regexMetaChars = `\[](){}*+?|^$`

var nexusURL = regexp.MustCompile(`(?i)nexusmods\.com/[a-z0-9]+/mods/(\d+)`)

var imageSuffixes = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}

// Parse turns a raw masterlist document into a mod database for the given
// (game, version) pair. Entries that normalize to the same clean name are
// merged; pattern-form names additionally register a literal-prefix alias so
// user-supplied filenames still resolve.
func Parse(game domain.Game, version string, data []byte) (*domain.Database, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(err, "failed to parse masterlist")
	}

	db := domain.NewDatabase(game, version)
	for i := range doc.Plugins {
		dto := &doc.Plugins[i]
		if strings.TrimSpace(dto.Name) == "" {
			continue
		}
		rec := toRecord(dto)
		db.Upsert(rec)

		if isPattern(dto.Name) {
			if alias := literalPrefixAlias(dto.Name); alias != "" {
				// The canonical record already exists; a duplicate or empty
				// alias is silently skipped inside AddAlias.
				_ = db.AddAlias(alias, rec.CleanName)
			}
		}
	}
	return db, nil
}

// toRecord converts a raw entry to the canonical record form: reference
// lists are normalized to clean names, message templates are rendered, and
// external IDs are derived from the url field.
func toRecord(dto *pluginDTO) *domain.ModRecord {
	rec := &domain.ModRecord{
		Name:              displayName(dto.Name),
		CleanName:         domain.CleanName(dto.Name),
		Requirements:      cleanAll(dto.Req),
		Incompatibilities: cleanAll(dto.Inc),
		LoadAfter:         cleanAll(dto.After),
		LoadBefore:        cleanAll(dto.Before),
		DirtyEdits:        dto.Dirty,
		Tags:              lo.Uniq(dto.Tag),
	}

	for other, patch := range dto.Patch {
		rec.Patches = append(rec.Patches, domain.Patch{
			For:  domain.CleanName(other),
			Name: patch,
		})
	}

	for _, msg := range dto.Msg {
		subs := make([]domain.MessageContent, len(msg.Subs))
		for i, sub := range msg.Subs {
			subs[i] = sub.MessageContent
		}
		rendered := domain.FormatMessage(msg.Content.Render(), subs)
		if rendered != "" {
			rec.Messages = append(rec.Messages, rendered)
		}
	}

	if m := nexusURL.FindStringSubmatch(dto.URL); m != nil {
		rec.NexusModID = m[1]
	} else if hasImageSuffix(dto.URL) {
		rec.PictureURL = dto.URL
	}

	return rec
}

func cleanAll(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	return lo.Uniq(lo.Map(names, func(n string, _ int) string {
		return domain.CleanName(n)
	}))
}

// displayName strips regex escapes from pattern-form names so reports show
// something readable.
func displayName(name string) string {
	if !isPattern(name) {
		return name
	}
	return strings.ReplaceAll(name, `\`, "")
}

// isPattern reports whether a masterlist name is a regex over filenames: it
// contains an escape or a character class.
func isPattern(name string) bool {
	return strings.Contains(name, `\`) || strings.Contains(name, "[")
}

// literalPrefixAlias extracts the literal head of a pattern-form name, up to
// the first regex metacharacter, as an extra lookup key. Returns "" when the
// prefix is too short to be a useful alias.
func literalPrefixAlias(name string) string {
	cut := len(name)
	for i, r := range name {
		if strings.ContainsRune(regexMetaChars, r) {
			cut = i
			break
		}
	}
	prefix := strings.TrimRight(name[:cut], " -_.,")
	if len(prefix) < 3 {
		return ""
	}
	return domain.CleanName(prefix)
}

func hasImageSuffix(url string) bool {
	lower := strings.ToLower(url)
	for _, suffix := range imageSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}
