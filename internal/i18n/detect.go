package i18n

import (
	"os"
	"strings"

	"github.com/Santerhy/deck-loader-go/internal/cards"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

// supported mirrors cards.SupportedLanguages, English first so the matcher
// falls back to it.
var supported = []language.Tag{language.English, language.Finnish}

var matcher = language.NewMatcher(supported)

var localeEnvVars = []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"}

// DetectLanguage determines the UI language from the process environment.
// Defaults to English when the locale is missing, malformed or unsupported.
func DetectLanguage() cards.Language {
	for _, key := range localeEnvVars {
		value := os.Getenv(key)
		if value == "" {
			continue
		}

		if lang, ok := matchLocale(value); ok {
			return lang
		}

		log.Debug().Msgf("locale %q from %s is unsupported", value, key)
	}

	return cards.LanguageEnglish
}

// matchLocale maps a locale value like "fi_FI.UTF-8" onto a supported
// language.
func matchLocale(value string) (cards.Language, bool) {
	value = strings.SplitN(value, ".", 2)[0]
	value = strings.SplitN(value, "@", 2)[0]
	value = strings.ReplaceAll(value, "_", "-")

	tag, err := language.Parse(value)
	if err != nil {
		return "", false
	}

	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "", false
	}

	if supported[idx] == language.Finnish {
		return cards.LanguageFinnish, true
	}

	return cards.LanguageEnglish, true
}
