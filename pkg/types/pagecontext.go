package types

import (
	"net/url"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// PageContextProvider is what page components need from the request: the locale and a translator.
type PageContextProvider interface {
	// T translates key, panicking when the key is missing from the bundle.
	T(key string, args ...map[string]interface{}) string
	GetLocale() language.Tag
	GetLocalizer() *i18n.Localizer
}

type PageContext struct {
	Locale    language.Tag
	URL       *url.URL
	Localizer *i18n.Localizer
}

var _ PageContextProvider = (*PageContext)(nil)

func (p *PageContext) T(key string, args ...map[string]interface{}) string {
	cfg := &i18n.LocalizeConfig{MessageID: key}
	switch len(args) {
	case 0:
	case 1:
		cfg.TemplateData = args[0]
	default:
		panic("T(): too many arguments")
	}
	return p.Localizer.MustLocalize(cfg)
}

func (p *PageContext) GetLocale() language.Tag {
	return p.Locale
}

func (p *PageContext) GetLocalizer() *i18n.Localizer {
	return p.Localizer
}
