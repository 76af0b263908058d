package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/Santerhy/deck-loader-go/internal/cards"
	"github.com/Santerhy/deck-loader-go/internal/web"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

type Config struct {
	Storage Storage `yaml:"storage" validate:"required"`
	Logging Logging `yaml:"logging"`
	Decks   Decks   `yaml:"decks" validate:"required"`
	I18n    I18n    `yaml:"i18n"`
}

type Logging struct {
	Level string `yaml:"level"`
}

func (l Logging) LevelOrDefault() string {
	level := strings.TrimSpace(l.Level)
	if level == "" {
		level = "INFO"
	}

	return strings.ToLower(level)
}

// Decks configures the card endpoint and the filter applied to every load.
type Decks struct {
	// DownloadURL is a template with {lang} and {count} placeholders.
	DownloadURL   string     `yaml:"downloadUrl" validate:"required,url"`
	Client        web.Config `yaml:"client"`
	FullLoadCount int        `yaml:"fullLoadCount" validate:"gte=0"`
	IncludeTags   []string   `yaml:"includeTags"`
	ExcludeTags   []string   `yaml:"excludeTags"`
}

// BuildDownloadURL resolves the url template for the given language and
// requested card count.
func (d Decks) BuildDownloadURL(lang cards.Language, count int) string {
	r := strings.NewReplacer("{lang}", string(lang), "{count}", fmt.Sprintf("%d", count))

	return r.Replace(d.DownloadURL)
}

func (d Decks) FullLoadCountOrDefault() int {
	if d.FullLoadCount == 0 {
		return 100
	}

	return d.FullLoadCount
}

// IncludeTagSet parses the configured include tags. An empty configuration
// defaults to every known tag including the untagged sentinel, so an
// unfiltered load keeps all cards.
func (d Decks) IncludeTagSet() ([]cards.Tag, error) {
	if len(d.IncludeTags) == 0 {
		return []cards.Tag{cards.TagNormal, cards.TagSpicy, cards.TagTask, cards.TagGroup, cards.TagUntagged}, nil
	}

	return cards.ParseTags(d.IncludeTags)
}

// ExcludeTagSet parses the configured exclude tags, empty by default.
func (d Decks) ExcludeTagSet() ([]cards.Tag, error) {
	return cards.ParseTags(d.ExcludeTags)
}

type I18n struct {
	Location string `yaml:"location"`
}

func (i I18n) LocationOrDefault() string {
	if strings.TrimSpace(i.Location) == "" {
		return "./configs/i18n"
	}

	return i.Location
}

const (
	REPLACE = "REPLACE"
	CREATE  = "CREATE"
)

type Storage struct {
	Location string `yaml:"location" validate:"required"`
	Mode     string `yaml:"mode" validate:"omitempty,oneof=REPLACE CREATE"`
}

func (s Storage) ModeOrDefault() string {
	if s.Mode == "" {
		return REPLACE
	}

	return s.Mode
}

func Load(path string) (*Config, error) {
	s, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if s.IsDir() {
		return nil, fmt.Errorf("'%s' is a directory, not a regular file", path)
	}

	return buildConfig(path)
}

func buildConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't read config file: %w", err)
	}

	config := &Config{}

	if err = yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("config unmarshal failed with: %w", err)
	}

	if err = validate.Struct(config); err != nil {
		return nil, fmt.Errorf("config validation failed with: %w", err)
	}

	return config, nil
}
