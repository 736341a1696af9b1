package translation

import (
	"fmt"
	"strings"
)

type phrase struct {
	source string
	target string
}

type languagePair struct {
	source string
	target string
}

// Phrases are matched in the order listed here; the first one contained in
// the input wins.
var fallbackPhrases = map[languagePair][]phrase{
	{"en", "fr"}: {
		{"hello", "bonjour"},
		{"the patient needs heart surgery", "le patient a besoin d'une chirurgie cardiaque"},
		{"engine design", "conception de moteur"},
		{"technical manual", "manuel technique"},
		{"product specification", "spécification du produit"},
	},
	{"en", "es"}: {
		{"hello", "hola"},
		{"engine design analysis", "análisis de diseño del motor"},
		{"technical documentation", "documentación técnica"},
		{"manufacturing specs", "especificaciones de fabricación"},
		{"whiteboard discussion", "discusión en pizarra"},
	},
	{"en", "de"}: {
		{"hello", "hallo"},
		{"technical manual", "technisches Handbuch"},
		{"product design", "Produktdesign"},
		{"engineering drawing", "Technische Zeichnung"},
	},
}

// Fallback translates from the static phrase table. Language codes are
// matched exactly. Text with no known phrase comes back as a bracketed
// placeholder naming the target language.
func Fallback(text, sourceLang, targetLang string) string {
	lower := strings.ToLower(text)

	for _, p := range fallbackPhrases[languagePair{sourceLang, targetLang}] {
		if strings.Contains(lower, p.source) {
			return p.target
		}
	}

	return Placeholder(text, targetLang)
}

func Placeholder(text, targetLang string) string {
	return fmt.Sprintf("[%s translation of: %s]", targetLang, text)
}
