package cards

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Language identifies a supported deck language. The enumeration is closed,
// unknown codes are rejected at parse time instead of silently defaulting.
type Language string

const (
	LanguageFinnish Language = "fi"
	LanguageEnglish Language = "en"
)

// SupportedLanguages returns all languages the application keeps decks for,
// in a stable order. Decks of all supported languages advance in lockstep.
func SupportedLanguages() []Language {
	return []Language{LanguageFinnish, LanguageEnglish}
}

// UnsupportedLanguageError is returned for language codes outside the closed
// language set.
type UnsupportedLanguageError struct {
	Value string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported language %q, supported languages are %v", e.Value, SupportedLanguages())
}

func (e *UnsupportedLanguageError) Is(target error) bool {
	t, ok := target.(*UnsupportedLanguageError)
	if !ok {
		return false
	}

	return e.Value == t.Value || t.Value == ""
}

// ParseLanguage converts the given code into a Language. Returns an
// UnsupportedLanguageError for codes outside the closed language set.
func ParseLanguage(code string) (Language, error) {
	l := Language(code)
	if !slices.Contains(SupportedLanguages(), l) {
		return "", &UnsupportedLanguageError{Value: code}
	}

	return l, nil
}

func (l *Language) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("language must be a string %w", err)
	}

	parsed, err := ParseLanguage(raw)
	if err != nil {
		return err
	}

	*l = parsed

	return nil
}
