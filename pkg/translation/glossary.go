package translation

import "strings"

// ApplyGlossary rewrites translated output using glossary terms. A term is
// applied only when its source form appears in the original text (ignoring
// case); the replacement itself is case-sensitive and replaces every
// occurrence. Terms are applied in order, so later terms see earlier edits.
func ApplyGlossary(text, translated string, terms []Term) string {
	if len(terms) == 0 {
		return translated
	}

	lower := strings.ToLower(text)
	for _, term := range terms {
		if term.Source == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(term.Source)) {
			translated = strings.ReplaceAll(translated, term.Source, term.Target)
		}
	}
	return translated
}
