package cards

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Tag classifies a card. The set of tags is closed, unknown values are
// rejected at the deserialization boundary.
type Tag string

const (
	TagNormal Tag = "normal"
	TagSpicy  Tag = "spicy"
	TagTask   Tag = "task"
	TagGroup  Tag = "group"
	// TagUntagged is a sentinel that matches cards without any tags. It is
	// only valid inside filter sets, never on a card itself.
	TagUntagged Tag = "untagged"
)

var allTags = []Tag{TagNormal, TagSpicy, TagTask, TagGroup, TagUntagged}

// UnknownTagError is returned when a tag value outside the closed tag set
// is encountered.
type UnknownTagError struct {
	Value string
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("unknown tag %q, supported tags are %v", e.Value, allTags)
}

func (e *UnknownTagError) Is(target error) bool {
	t, ok := target.(*UnknownTagError)
	if !ok {
		return false
	}

	return e.Value == t.Value || t.Value == ""
}

// ParseTag converts the given value into a Tag. Returns an UnknownTagError
// for values outside the closed tag set.
func ParseTag(value string) (Tag, error) {
	t := Tag(strings.ToLower(strings.TrimSpace(value)))
	if !slices.Contains(allTags, t) {
		return "", &UnknownTagError{Value: value}
	}

	return t, nil
}

// ParseTags converts all given values, failing on the first unknown one.
func ParseTags(values []string) ([]Tag, error) {
	var tags []Tag
	for _, v := range values {
		t, err := ParseTag(v)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}

	return tags, nil
}

func (t *Tag) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("tag must be a string %w", err)
	}

	parsed, err := ParseTag(raw)
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

// Card is a single entry of a deck. Immutable once fetched, identified
// implicitly by its position within the deck.
type Card struct {
	Text string `json:"text"`
	Tags []Tag  `json:"tags"`
}

// Validate checks card content. The untagged sentinel must not appear on
// card data, it only exists for filtering.
func (c Card) Validate() error {
	if strings.TrimSpace(c.Text) == "" {
		return fmt.Errorf("field 'text' must not be empty")
	}

	if slices.Contains(c.Tags, TagUntagged) {
		return fmt.Errorf("card %q must not carry the sentinel tag %q", c.Text, TagUntagged)
	}

	return nil
}

// LanguageData is the per-language container holding the language identifier
// and its ordered deck of cards.
type LanguageData struct {
	Language Language `json:"language"`
	Cards    []Card   `json:"cards"`
}
