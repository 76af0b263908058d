// Package decks holds the application state, the per-language card decks
// and the active UI language, backed by an explicit persistence adapter.
package decks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/Santerhy/deck-loader-go/internal/aio"
	"github.com/Santerhy/deck-loader-go/internal/cards"
	"github.com/Santerhy/deck-loader-go/internal/storage"
	"github.com/rs/zerolog/log"
)

const (
	durableScope = "durable"
	sessionScope = "session"

	deckDataKey = "languageData.json"
	languageKey = "selectedLanguage"
)

// Store is the state container for the loaded decks. All decks are written
// through to durable storage on every mutation and restored on creation.
// The active language is kept in session scoped storage.
type Store struct {
	mu       sync.RWMutex
	decks    map[cards.Language][]cards.Card
	language cards.Language
	storer   storage.Storer
}

// NewStore restores the deck state from durable storage. A missing or
// unreadable state yields an empty store instead of an error. The active
// language is restored from session storage and falls back to the given
// detected language.
func NewStore(storer storage.Storer, detected cards.Language) *Store {
	s := &Store{
		decks:    map[cards.Language][]cards.Card{},
		language: detected,
		storer:   storer,
	}

	s.restoreDecks()
	s.restoreLanguage()

	return s
}

func (s *Store) restoreDecks() {
	r, err := s.storer.Load(durableScope, deckDataKey)
	if err != nil {
		log.Debug().Err(err).Msg("no persisted deck state found, starting empty")

		return
	}
	defer aio.Close(r)

	var data map[cards.Language]cards.LanguageData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		log.Error().Err(err).Msg("failed to decode persisted deck state, starting empty")

		return
	}

	for lang, entry := range data {
		s.decks[lang] = entry.Cards
	}
}

func (s *Store) restoreLanguage() {
	r, err := s.storer.Load(sessionScope, languageKey)
	if err != nil {
		log.Debug().Err(err).Msgf("no session language found, using %s", s.language)

		return
	}
	defer aio.Close(r)

	raw, err := io.ReadAll(r)
	if err != nil {
		log.Error().Err(err).Msg("failed to read session language")

		return
	}

	lang, err := cards.ParseLanguage(strings.TrimSpace(string(raw)))
	if err != nil {
		log.Error().Err(err).Msgf("ignoring persisted session language, using %s", s.language)

		return
	}

	s.language = lang
}

// Deck returns a copy of the current deck for the given language. An empty
// deck is returned for languages that have no cards loaded.
func (s *Store) Deck(lang cards.Language) []cards.Card {
	s.mu.RLock()
	defer s.mu.RUnlock()

	deck := make([]cards.Card, len(s.decks[lang]))
	copy(deck, s.decks[lang])

	return deck
}

// Language returns the active UI language.
func (s *Store) Language() cards.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.language
}

// SetLanguage activates the given language code and persists it in session
// scope. An unsupported code is logged and leaves the active language
// unchanged.
func (s *Store) SetLanguage(code string) {
	lang, err := cards.ParseLanguage(code)
	if err != nil {
		log.Error().Err(err).Msgf("failed to set language %q", code)

		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.language = lang
	if _, err := s.storer.Store(strings.NewReader(string(lang)), sessionScope, languageKey); err != nil {
		log.Error().Err(err).Msgf("failed to persist session language %s", lang)
	}
}

// SetDecks replaces all decks wholesale and persists the new state.
func (s *Store) SetDecks(decks map[cards.Language][]cards.Card) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[cards.Language][]cards.Card, len(decks))
	for lang, deck := range decks {
		next[lang] = deck
	}
	s.decks = next

	return s.persistDecks()
}

// ReplaceAt splices one card per language into the existing decks at the
// given index and persists the new state. Languages without a replacement
// stay untouched. Fails if the index is outside any targeted deck.
func (s *Store) ReplaceAt(index int, replacements map[cards.Language]cards.Card) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for lang := range replacements {
		if index < 0 || index >= len(s.decks[lang]) {
			return fmt.Errorf("index %d is outside the %s deck of length %d", index, lang, len(s.decks[lang]))
		}
	}

	for lang, card := range replacements {
		s.decks[lang][index] = card
	}

	return s.persistDecks()
}

// clear drops the in-memory deck state. Used when the durable storage was
// cleared externally.
func (s *Store) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.decks = map[cards.Language][]cards.Card{}
}

func (s *Store) persistDecks() error {
	data := make(map[cards.Language]cards.LanguageData, len(s.decks))
	for lang, deck := range s.decks {
		data[lang] = cards.LanguageData{Language: lang, Cards: deck}
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode deck state %w", err)
	}

	if _, err := s.storer.Store(bytes.NewReader(raw), durableScope, deckDataKey); err != nil {
		return fmt.Errorf("failed to persist deck state %w", err)
	}

	return nil
}
