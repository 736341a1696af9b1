package locale

import (
	"embed"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var localeFS embed.FS

// Translator renders user-facing messages.
type Translator interface {
	T(key string, data map[string]any) string
}

// Catalog is a go-i18n bundle bound to one locale. English is the base
// language; keys missing from the chosen locale fall back to it.
type Catalog struct {
	localizer *i18n.Localizer
	tag       language.Tag
}

var _ Translator = (*Catalog)(nil)

func NewCatalog(locale string) (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"active.en.toml", "active.fr.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}

	return &Catalog{
		localizer: i18n.NewLocalizer(bundle, tag.String(), language.English.String()),
		tag:       tag,
	}, nil
}

func (c *Catalog) Language() language.Tag {
	return c.tag
}

// T renders the message for key. An unknown key is returned as is.
func (c *Catalog) T(key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	msg, err := c.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		return key
	}
	return msg
}
