package decks

import (
	"context"
	"sync"
	"time"

	"github.com/Santerhy/deck-loader-go/internal/cards"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// CardSource provides up to count cards for a language.
type CardSource interface {
	GetCards(ctx context.Context, lang cards.Language, count int) ([]cards.Card, error)
}

// Loader builds the per-language decks: fetch, filter, shuffle with a seed
// shared across languages and truncate to the requested count. Loads are
// serialized, a second load waits instead of racing the first one.
type Loader struct {
	mu      sync.Mutex
	source  CardSource
	store   *Store
	include []cards.Tag
	exclude []cards.Tag
	seedFn  func() int64
}

func NewLoader(source CardSource, store *Store, include []cards.Tag, exclude []cards.Tag) *Loader {
	return &Loader{
		source:  source,
		store:   store,
		include: include,
		exclude: exclude,
		seedFn: func() int64 {
			return time.Now().UnixNano()
		},
	}
}

// LoadAll loads the decks of all supported languages in parallel, each capped
// at count cards, and commits the result to the store. A language that fails
// to fetch or decode degrades to an empty deck. Returns the minimum deck
// length across all languages, 0 if any language produced nothing or the
// overall operation failed.
func (l *Loader) LoadAll(ctx context.Context, count int) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	seed := l.seedFn()
	languages := cards.SupportedLanguages()
	decks := make([][]cards.Card, len(languages))

	errg, gctx := errgroup.WithContext(ctx)
	for i, lang := range languages {
		i, lang := i, lang
		errg.Go(func() error {
			deck, err := l.loadDeck(gctx, lang, count, seed)
			if err != nil {
				return err
			}
			decks[i] = deck

			return nil
		})
	}

	if err := errg.Wait(); err != nil {
		log.Error().Err(err).Msg("deck load failed")

		return 0
	}

	result := make(map[cards.Language][]cards.Card, len(languages))
	for i, lang := range languages {
		result[lang] = decks[i]
	}

	if err := l.store.SetDecks(result); err != nil {
		log.Error().Err(err).Msg("failed to commit loaded decks")

		return 0
	}

	minLen := len(decks[0])
	for _, deck := range decks[1:] {
		if len(deck) < minLen {
			minLen = len(deck)
		}
	}

	log.Info().Msgf("Loaded %d usable cards per language", minLen)

	return minLen
}

// RefreshCard fetches one fresh card per language through the regular
// filter and shuffle pipeline and splices it into the existing decks at the
// given index. A language that yields no card keeps its current entry.
func (l *Loader) RefreshCard(ctx context.Context, index int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	seed := l.seedFn()
	languages := cards.SupportedLanguages()
	fresh := make([][]cards.Card, len(languages))

	errg, gctx := errgroup.WithContext(ctx)
	for i, lang := range languages {
		i, lang := i, lang
		errg.Go(func() error {
			deck, err := l.loadDeck(gctx, lang, 1, seed)
			if err != nil {
				return err
			}
			fresh[i] = deck

			return nil
		})
	}

	if err := errg.Wait(); err != nil {
		log.Error().Err(err).Msg("card refresh failed")

		return nil
	}

	replacements := make(map[cards.Language]cards.Card, len(languages))
	for i, lang := range languages {
		if len(fresh[i]) == 0 {
			log.Warn().Msgf("no replacement card for %s deck at index %d", lang, index)

			continue
		}
		replacements[lang] = fresh[i][0]
	}

	return l.store.ReplaceAt(index, replacements)
}

// loadDeck runs the fetch, filter, shuffle, truncate pipeline for a single
// language. Fetch and decode failures degrade to an empty deck, only a
// cancelled context fails the whole operation.
func (l *Loader) loadDeck(ctx context.Context, lang cards.Language, count int, seed int64) ([]cards.Card, error) {
	deck, err := l.source.GetCards(ctx, lang, count)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		log.Error().Err(err).Msgf("failed to load %s deck, falling back to an empty deck", lang)

		return []cards.Card{}, nil
	}

	deck = cards.Filter(deck, l.include, l.exclude)

	return cards.Truncate(cards.Shuffle(deck, seed), count), nil
}
