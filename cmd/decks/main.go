package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/Santerhy/deck-loader-go/internal/cards"
	"github.com/Santerhy/deck-loader-go/internal/config"
	"github.com/Santerhy/deck-loader-go/internal/deckapi"
	"github.com/Santerhy/deck-loader-go/internal/decks"
	"github.com/Santerhy/deck-loader-go/internal/i18n"
	logger "github.com/Santerhy/deck-loader-go/internal/log"
	"github.com/Santerhy/deck-loader-go/internal/storage"
	"github.com/Santerhy/deck-loader-go/internal/timer"
	"github.com/Santerhy/deck-loader-go/internal/web"
	"github.com/rs/zerolog/log"
)

const usage = `Usage: deck-loader-cli [options...]
  -c, --config path to the configuration file (default: ./configs/application.yaml)
  -n, --count maximum number of cards per deck, overrides the configuration
  -l, --language active UI language code
  -r, --refresh refresh the card at the given deck index after loading
  -h, --help prints help information
`

type flags struct {
	count    int
	language string
	refresh  int
}

func setup() (flags, *config.Config) {
	logger.SetupConsoleLogger()

	var configPath string
	var f flags

	flag.StringVar(&configPath, "c", "./configs/application.yaml", "path to the configuration file")
	flag.StringVar(&configPath, "config", "./configs/application.yaml", "path to the configuration file")
	flag.IntVar(&f.count, "n", 0, "maximum number of cards per deck, overrides the configuration")
	flag.IntVar(&f.count, "count", 0, "maximum number of cards per deck, overrides the configuration")
	flag.StringVar(&f.language, "l", "", "active UI language code")
	flag.StringVar(&f.language, "language", "", "active UI language code")
	flag.IntVar(&f.refresh, "r", -1, "refresh the card at the given deck index after loading")
	flag.IntVar(&f.refresh, "refresh", -1, "refresh the card at the given deck index after loading")
	flag.Usage = func() { fmt.Print(usage) }
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		panic(err)
	}

	if err = logger.SetLogLevel(cfg.Logging.LevelOrDefault()); err != nil {
		panic(err)
	}

	if f.count == 0 {
		f.count = cfg.Decks.FullLoadCountOrDefault()
	}

	log.Info().Msgf("OS\t\t %s", runtime.GOOS)
	log.Info().Msgf("ARCH\t\t %s", runtime.GOARCH)
	log.Info().Msgf("CPUs\t\t %d", runtime.NumCPU())
	log.Info().Msgf("Using deck endpoint %s", cfg.Decks.DownloadURL)

	return f, cfg
}

func main() {
	defer timer.TimeTrack(time.Now(), "load")

	f, cfg := setup()

	include, err := cfg.Decks.IncludeTagSet()
	if err != nil {
		log.Error().Err(err).Msg("invalid include tag configuration")

		return
	}
	exclude, err := cfg.Decks.ExcludeTagSet()
	if err != nil {
		log.Error().Err(err).Msg("invalid exclude tag configuration")

		return
	}

	store, err := storage.NewLocalStorage(cfg.Storage)
	if err != nil {
		log.Error().Err(err).Msg("failed to create local storage")

		return
	}

	bundle, err := i18n.LoadBundle(cfg.I18n.LocationOrDefault())
	if err != nil {
		log.Error().Err(err).Msg("failed to load translation resources")

		return
	}

	deckStore := decks.NewStore(store, i18n.DetectLanguage())
	if f.language != "" {
		deckStore.SetLanguage(f.language)
	}

	watcher, err := decks.NewStorageWatcher(deckStore)
	if err != nil {
		log.Error().Err(err).Msg("failed to watch deck storage")

		return
	}
	watcher.Start()
	defer func(toCloseFn func() error) {
		cErr := toCloseFn()
		if cErr != nil {
			log.Error().Err(cErr).Msg("Failed to close storage watcher")
		}
	}(watcher.Close)

	c := &http.Client{
		Timeout: cfg.Decks.Client.Timeout,
	}
	client := deckapi.NewClient(cfg.Decks, web.NewClient(cfg.Decks.Client, c))
	loader := decks.NewLoader(client, deckStore, include, exclude)

	ctx := context.Background()
	usable := loader.LoadAll(ctx, f.count)
	log.Info().Msgf("%s: %d usable cards", bundle.Translate(deckStore.Language(), "load.finished"), usable)

	if f.refresh >= 0 {
		if err := loader.RefreshCard(ctx, f.refresh); err != nil {
			log.Error().Err(err).Msgf("failed to refresh card at index %d", f.refresh)

			return
		}
	}

	for _, lang := range cards.SupportedLanguages() {
		log.Info().Msgf("%s deck holds %d cards", lang, len(deckStore.Deck(lang)))
	}
}
