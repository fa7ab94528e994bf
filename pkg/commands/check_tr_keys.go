package commands

import (
	"fmt"
	"sort"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/iota-uz/iota-actions/pkg/application"
	"github.com/iota-uz/iota-actions/pkg/configuration"
)

// CheckTrKeys verifies that every key defined in any allowed locale is defined in all of them.
func CheckTrKeys(allowedLanguages []string, mods ...application.Module) error {
	conf := configuration.Use()
	app, err := bundleFor(mods...)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	messages := app.Bundle().Messages()
	allowed, err := allowedTags(messages, defaultLanguages(allowedLanguages))
	if err != nil {
		return err
	}
	if missing := inconsistentKeys(messages, allowed); len(missing) > 0 {
		return reportMissing(conf.Logger(), missing, "Translation key missing in locale")
	}
	conf.Logger().Info("All translation keys are consistent across locales")
	return nil
}

func inconsistentKeys(messages map[language.Tag]map[string]*i18n.MessageTemplate, allowed map[string]language.Tag) []missingKey {
	keys := make(map[string]struct{})
	for _, tag := range allowed {
		for key := range messages[tag] {
			keys[key] = struct{}{}
		}
	}

	locales := make([]string, 0, len(allowed))
	for locale := range allowed {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	sorted := make([]string, 0, len(keys))
	for key := range keys {
		sorted = append(sorted, key)
	}
	sort.Strings(sorted)

	var missing []missingKey
	for _, key := range sorted {
		for _, locale := range locales {
			if messages[allowed[locale]][key] == nil {
				missing = append(missing, missingKey{Locale: locale, Key: key})
			}
		}
	}
	return missing
}
