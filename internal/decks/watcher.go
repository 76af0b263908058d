package decks

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// StorageWatcher observes the durable deck state on disk and resets the
// in-memory store when the state is cleared externally, e.g. by the user
// wiping the storage directory.
type StorageWatcher struct {
	watcher *fsnotify.Watcher
	store   *Store
	target  string
	doneCh  chan struct{}
	started bool
}

// NewStorageWatcher creates a watcher for the store's durable deck state.
// The watch is registered on the containing directory since watching a file
// directly stops working once it is removed.
func NewStorageWatcher(store *Store) (*StorageWatcher, error) {
	target, err := store.storer.AbsolutePath(durableScope, deckDataKey)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve deck state location %w", err)
	}

	// the scope dir must exist before a watch can be registered on it
	if err := os.MkdirAll(filepath.Dir(target), 0750); err != nil {
		return nil, fmt.Errorf("failed to create watched dir %s %w", filepath.Dir(target), err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create storage watcher %w", err)
	}

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		cErr := watcher.Close()
		if cErr != nil {
			log.Error().Err(cErr).Msg("failed to close storage watcher")
		}

		return nil, fmt.Errorf("failed to watch %s %w", filepath.Dir(target), err)
	}

	return &StorageWatcher{
		watcher: watcher,
		store:   store,
		target:  target,
		doneCh:  make(chan struct{}),
	}, nil
}

// Start begins observing the deck state in a goroutine. Non blocking.
func (w *StorageWatcher) Start() {
	if w.started {
		return
	}
	w.started = true

	go func() {
		defer close(w.doneCh)

		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				w.handle(event)
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				log.Error().Err(err).Msg("storage watcher failed")
			}
		}
	}()
}

func (w *StorageWatcher) handle(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.target {
		return
	}

	if event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename) {
		log.Info().Msgf("deck state %s was cleared externally, resetting decks", w.target)
		w.store.clear()
	}
}

// Close stops the watcher and waits for the observer goroutine to finish.
func (w *StorageWatcher) Close() error {
	err := w.watcher.Close()
	if w.started {
		<-w.doneCh
	}

	return err
}
