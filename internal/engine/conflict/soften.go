package conflict

import "regexp"

// softenRule rewrites one declarative LOOT phrasing into hedged phrasing.
// The masterlist speaks with certainty about installs it has never seen;
// this tool only observed a plugin list, so advisory text is softened
// before emission. Presentation only, the meaning is unchanged.
type softenRule struct {
	pattern     *regexp.Regexp
	replacement string
}

var softenRules = []softenRule{
	{regexp.MustCompile(`(?i)\byou seem to be\b`), "this may apply if you are"},
	{regexp.MustCompile(`(?i)\byou appear to be\b`), "this may apply if you are"},
	{regexp.MustCompile(`(?i)\bis not compatible\b`), "may not be compatible"},
	{regexp.MustCompile(`(?i)\bare not compatible\b`), "may not be compatible"},
	{regexp.MustCompile(`(?i)\bwill cause\b`), "may cause"},
	{regexp.MustCompile(`(?i)\bwill break\b`), "may break"},
	{regexp.MustCompile(`(?i)\bdo not use\b`), "consider not using"},
	{regexp.MustCompile(`(?i)\byou must\b`), "you may need to"},
}

// soften applies the rewrite rules in order.
func soften(msg string) string {
	for _, rule := range softenRules {
		msg = rule.pattern.ReplaceAllString(msg, rule.replacement)
	}
	return msg
}
