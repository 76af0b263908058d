// Package i18n provides the UI translation layer: locale detection from the
// environment and per-language message bundles loaded from resource files.
package i18n

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Santerhy/deck-loader-go/internal/cards"
)

var resourceFiles = map[cards.Language]string{
	cards.LanguageFinnish: "finnish.json",
	cards.LanguageEnglish: "english.json",
}

// Bundle holds the translated UI messages for all supported languages.
type Bundle struct {
	messages map[cards.Language]map[string]string
}

// LoadBundle reads all per-language resource files from the given directory.
// Every supported language must have a resource file.
func LoadBundle(dir string) (*Bundle, error) {
	messages := make(map[cards.Language]map[string]string, len(resourceFiles))

	for lang, filename := range resourceFiles {
		path := filepath.Clean(filepath.Join(dir, filename))
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s resource file %w", lang, err)
		}

		var m map[string]string
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to decode %s resource file %s %w", lang, path, err)
		}

		messages[lang] = m
	}

	return &Bundle{messages: messages}, nil
}

// Translate returns the message for the given key in the given language.
// Falls back to English and finally to the key itself.
func (b *Bundle) Translate(lang cards.Language, key string) string {
	if msg, ok := b.messages[lang][key]; ok {
		return msg
	}

	if msg, ok := b.messages[cards.LanguageEnglish][key]; ok {
		return msg
	}

	return key
}
