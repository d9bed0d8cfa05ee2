// Package i18n translates the user-visible notices and labels of the deck
// builder. Translations are YAML files embedded from locales/.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

const DefaultLang = "pt"

// Translator localizes message ids into one language, falling back to
// Portuguese.
type Translator struct {
	lang      string
	localizer *i18n.Localizer
}

func New(lang string) (*Translator, error) {
	if lang == "" {
		lang = DefaultLang
	}
	bundle := i18n.NewBundle(language.Portuguese)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("reading locales: %w", err)
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		if _, err := bundle.LoadMessageFileFS(localeFS, path.Join("locales", f.Name())); err != nil {
			return nil, fmt.Errorf("loading locale %s: %w", f.Name(), err)
		}
	}

	return &Translator{
		lang:      lang,
		localizer: i18n.NewLocalizer(bundle, lang, DefaultLang),
	}, nil
}

// T returns the message for id with data substituted into its template. An
// unknown id is returned as is.
func (t *Translator) T(id string, data map[string]any) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return msg
}

func (t *Translator) Lang() string { return t.lang }
