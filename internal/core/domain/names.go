package domain

import (
	"strings"
	"sync"
)

// pluginExtensions are the plugin file suffixes stripped during
// normalization. ESL ("light") plugins share the same naming rules as
// ESP/ESM for lookup purposes.
var pluginExtensions = []string{".esp", ".esm", ".esl"}

var cleanNames sync.Map // raw name -> clean name

// CleanName normalizes a plugin name into the canonical database key:
// lowercase, surrounding whitespace and one plugin extension stripped.
// Results are memoized; the same handful of names is normalized over and
// over during analysis and indexing.
func CleanName(name string) string {
	if v, ok := cleanNames.Load(name); ok {
		return v.(string)
	}
	clean := strings.ToLower(strings.TrimSpace(name))
	for _, ext := range pluginExtensions {
		if strings.HasSuffix(clean, ext) {
			clean = strings.TrimSuffix(clean, ext)
			break
		}
	}
	clean = strings.TrimSpace(clean)
	cleanNames.Store(name, clean)
	return clean
}

// CompactName reduces a name to its alphanumeric characters only. It is the
// second lookup stage: "Skyrim - Utilities.esp" and "skyrimutilities" compare
// equal in compact form.
func CompactName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
