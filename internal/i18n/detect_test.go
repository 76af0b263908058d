package i18n_test

import (
	"testing"

	"github.com/Santerhy/deck-loader-go/internal/cards"
	"github.com/Santerhy/deck-loader-go/internal/i18n"
	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want cards.Language
	}{
		{
			name: "finnish locale",
			env:  map[string]string{"LANG": "fi_FI.UTF-8"},
			want: cards.LanguageFinnish,
		},
		{
			name: "english locale",
			env:  map[string]string{"LANG": "en_US.UTF-8"},
			want: cards.LanguageEnglish,
		},
		{
			name: "lc_all wins over lang",
			env:  map[string]string{"LC_ALL": "fi_FI.UTF-8", "LANG": "en_US.UTF-8"},
			want: cards.LanguageFinnish,
		},
		{
			name: "unsupported locale defaults to english",
			env:  map[string]string{"LANG": "de_DE.UTF-8"},
			want: cards.LanguageEnglish,
		},
		{
			name: "malformed locale defaults to english",
			env:  map[string]string{"LANG": "!!"},
			want: cards.LanguageEnglish,
		},
		{
			name: "empty environment defaults to english",
			env:  map[string]string{},
			want: cards.LanguageEnglish,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, key := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
				t.Setenv(key, tc.env[key])
			}

			assert.Equal(t, tc.want, i18n.DetectLanguage())
		})
	}
}
