package search

import "github.com/samber/lo"

// abbreviations maps common modding shorthand to the token forms of the
// full phrase, so "ussep" matches documents that only spell the patch name
// out.
var abbreviations = map[string][]string{
	"ussep":  {"unofficial", "skyrim", "special", "edition", "patch"},
	"usleep": {"unofficial", "skyrim", "legendary", "edition", "patch"},
	"uskp":   {"unofficial", "skyrim", "patch"},
	"uf4p":   {"unofficial", "fallout", "patch"},
	"ufo4p":  {"unofficial", "fallout", "patch"},
	"skse":   {"skyrim", "script", "extender"},
	"f4se":   {"fallout", "script", "extender"},
	"fose":   {"fallout", "script", "extender"},
	"nvse":   {"new", "vegas", "script", "extender"},
	"obse":   {"oblivion", "script", "extender"},
	"smim":   {"static", "mesh", "improvement", "mod"},
	"cbbe":   {"caliente", "beautiful", "bodies", "enhancer"},
	"3dnpc":  {"interesting", "npcs"},
	"enb":    {"enb", "series"},
	"dlc":    {"dlc", "expansion"},
	"sos":    {"sounds", "of", "skyrim"},
	"elfx":   {"enhanced", "lights", "and", "fx"},
	"wico":   {"windsong", "immersive", "character", "overhaul"},
	"clf":    {"community", "shaders"},
	"lotd":   {"legacy", "of", "the", "dragonborn"},
	"fcom":   {"fallout", "commander"},
	"ttw":    {"tale", "of", "two", "wastelands"},
}

// misspellings maps frequent query typos to canonical tokens.
var misspellings = map[string]string{
	"skyrm":      "skyrim",
	"skryim":     "skyrim",
	"skirim":     "skyrim",
	"falout":     "fallout",
	"fallut":     "fallout",
	"unoficial":  "unofficial",
	"unnoficial": "unofficial",
	"patsh":      "patch",
	"imersive":   "immersive",
	"oblivon":    "oblivion",
	"morowind":   "morrowind",
	"wether":     "weather",
	"lightning":  "lighting",
	"armour":     "armor",
	"textur":     "texture",
}

// expand unions the query tokens with their abbreviation expansions and
// misspelling corrections. Original tokens are kept; expansion only adds
// ways to match, it never removes one.
func expand(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok)
		if full, ok := abbreviations[tok]; ok {
			out = append(out, full...)
		}
		if fixed, ok := misspellings[tok]; ok {
			out = append(out, fixed)
		}
	}
	return lo.Uniq(out)
}
