package deckapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Santerhy/deck-loader-go/internal/cards"
	"github.com/Santerhy/deck-loader-go/internal/config"
	"github.com/Santerhy/deck-loader-go/internal/deckapi"
	"github.com/Santerhy/deck-loader-go/internal/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(ts *httptest.Server) *deckapi.Client {
	cfg := config.Decks{DownloadURL: ts.URL + "/cards?lang={lang}&count={count}"}

	return deckapi.NewClient(cfg, web.NewClient(web.Config{}, http.DefaultClient))
}

func jsonHandler(t *testing.T, body string, wantQuery string) http.HandlerFunc {
	t.Helper()

	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, wantQuery, r.URL.RawQuery)
		w.Header().Set("content-type", web.MimeTypeJSON)
		_, _ = w.Write([]byte(body))
	}
}

func TestGetCards(t *testing.T) {
	body := `{"cards":[{"text":"Take a sip","tags":["normal"]},{"text":"Cheers","tags":[]}]}`
	ts := httptest.NewServer(jsonHandler(t, body, "lang=fi&count=2"))
	defer ts.Close()

	actual, err := newClient(ts).GetCards(context.Background(), cards.LanguageFinnish, 2)

	require.NoError(t, err)
	want := []cards.Card{
		{Text: "Take a sip", Tags: []cards.Tag{cards.TagNormal}},
		{Text: "Cheers", Tags: []cards.Tag{}},
	}
	assert.Equal(t, want, actual)
}

func TestGetCardsUnknownTag(t *testing.T) {
	body := `{"cards":[{"text":"Take a sip","tags":["shots"]}]}`
	ts := httptest.NewServer(jsonHandler(t, body, "lang=en&count=1"))
	defer ts.Close()

	_, err := newClient(ts).GetCards(context.Background(), cards.LanguageEnglish, 1)

	assert.True(t, errors.Is(err, &cards.UnknownTagError{}))
}

func TestGetCardsInvalidCard(t *testing.T) {
	body := `{"cards":[{"text":"","tags":["normal"]}]}`
	ts := httptest.NewServer(jsonHandler(t, body, "lang=en&count=1"))
	defer ts.Close()

	_, err := newClient(ts).GetCards(context.Background(), cards.LanguageEnglish, 1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid card at position 0")
}

func TestGetCardsUnsupportedContentType(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("content-type", "text/html")
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer ts.Close()

	_, err := newClient(ts).GetCards(context.Background(), cards.LanguageEnglish, 1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported content-type")
}

func TestGetCardsApiError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := newClient(ts).GetCards(context.Background(), cards.LanguageEnglish, 1)

	var apiErr *web.ExternalAPIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestGetCardsBrokenJSON(t *testing.T) {
	ts := httptest.NewServer(jsonHandler(t, `{"cards":`, "lang=en&count=1"))
	defer ts.Close()

	_, err := newClient(ts).GetCards(context.Background(), cards.LanguageEnglish, 1)

	assert.Error(t, err)
}
