// Package locales resolves the panel's user-visible strings through go-i18n
// message bundles embedded in the binary.
package locales

import (
	"embed"
	"log"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var localeFS embed.FS

var messageFiles = []string{
	"active.en.toml",
	"active.fr.toml",
}

// Localizer resolves message IDs for one language, falling back to English.
type Localizer struct {
	loc *i18n.Localizer
}

// NewLocalizer builds a localizer for the given BCP 47 language tag.
func NewLocalizer(lang string) *Localizer {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, f := range messageFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, f); err != nil {
			log.Printf("Failed to load message file %s: %v", f, err)
		}
	}
	return &Localizer{loc: i18n.NewLocalizer(bundle, lang)}
}

// T returns the localized message for id. Unknown IDs come back unchanged so
// a missing translation never blanks the UI.
func (l *Localizer) T(id string) string {
	msg, err := l.loc.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}
