// Package deckapi fetches card decks from the per-language card endpoint.
package deckapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Santerhy/deck-loader-go/internal/aio"
	"github.com/Santerhy/deck-loader-go/internal/cards"
	"github.com/Santerhy/deck-loader-go/internal/config"
	"github.com/Santerhy/deck-loader-go/internal/web"
	"github.com/rs/zerolog/log"
)

type deckResponse struct {
	Cards []cards.Card `json:"cards"`
}

func NewClient(cfg config.Decks, wclient web.Client) *Client {
	return &Client{
		cfg:    cfg,
		client: wclient,
	}
}

type Client struct {
	cfg    config.Decks
	client web.Client
}

// GetCards fetches up to count cards for the given language. Card entries
// are validated at the deserialization boundary, an unknown tag or empty
// card fails the whole fetch.
func (c *Client) GetCards(ctx context.Context, lang cards.Language, count int) ([]cards.Card, error) {
	url := c.cfg.BuildDownloadURL(lang, count)
	log.Debug().Msgf("Downloading %s deck from %s", lang, url)

	opts := web.NewGetOpts().
		WithHeader(web.HeaderAccept, web.MimeTypeJSON).
		WithExpectedCodes(http.StatusOK)

	resp, err := c.client.Get(ctx, url, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s deck due to %w", lang, err)
	}
	defer aio.Close(resp.Body)

	if !resp.IsJSON() {
		return nil, fmt.Errorf("unsupported content-type %s from %s", resp.ContentType, url)
	}

	var deck deckResponse
	if err := json.NewDecoder(resp.Body).Decode(&deck); err != nil {
		return nil, fmt.Errorf("failed to decode %s deck %w", lang, err)
	}

	for i, card := range deck.Cards {
		if err := card.Validate(); err != nil {
			return nil, fmt.Errorf("invalid card at position %d in %s deck %w", i, lang, err)
		}
	}

	return deck.Cards, nil
}
