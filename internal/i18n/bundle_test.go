package i18n_test

import (
	"testing"

	"github.com/Santerhy/deck-loader-go/internal/cards"
	"github.com/Santerhy/deck-loader-go/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBundle(t *testing.T) {
	bundle, err := i18n.LoadBundle("testdata")

	require.NoError(t, err)
	assert.Equal(t, "Pakat ladattu", bundle.Translate(cards.LanguageFinnish, "load.finished"))
	assert.Equal(t, "Decks loaded", bundle.Translate(cards.LanguageEnglish, "load.finished"))
}

func TestTranslateFallsBackToEnglish(t *testing.T) {
	bundle, err := i18n.LoadBundle("testdata")
	require.NoError(t, err)

	assert.Equal(t, "Next card", bundle.Translate(cards.LanguageFinnish, "card.next"))
}

func TestTranslateFallsBackToKey(t *testing.T) {
	bundle, err := i18n.LoadBundle("testdata")
	require.NoError(t, err)

	assert.Equal(t, "unknown.key", bundle.Translate(cards.LanguageFinnish, "unknown.key"))
}

func TestLoadBundleMissingResource(t *testing.T) {
	_, err := i18n.LoadBundle("does-not-exist")

	assert.Error(t, err)
}

func TestShippedResourceFiles(t *testing.T) {
	bundle, err := i18n.LoadBundle("../../configs/i18n")

	require.NoError(t, err)
	assert.NotEqual(t, "load.finished", bundle.Translate(cards.LanguageFinnish, "load.finished"))
}
