package cards_test

import (
	"testing"

	"github.com/Santerhy/deck-loader-go/internal/cards"
	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	normal := cards.Card{Text: "Take a sip", Tags: []cards.Tag{cards.TagNormal}}
	spicy := cards.Card{Text: "Truth or drink", Tags: []cards.Tag{cards.TagSpicy}}
	spicyTask := cards.Card{Text: "Dance or drink", Tags: []cards.Tag{cards.TagSpicy, cards.TagTask}}
	untagged := cards.Card{Text: "Cheers"}

	all := []cards.Card{normal, spicy, spicyTask, untagged}

	cases := []struct {
		name    string
		include []cards.Tag
		exclude []cards.Tag
		want    []cards.Card
	}{
		{
			name:    "include single tag",
			include: []cards.Tag{cards.TagNormal},
			want:    []cards.Card{normal},
		},
		{
			name:    "include matches any card tag",
			include: []cards.Tag{cards.TagTask},
			want:    []cards.Card{spicyTask},
		},
		{
			name:    "untagged sentinel includes cards without tags",
			include: []cards.Tag{cards.TagNormal, cards.TagUntagged},
			want:    []cards.Card{normal, untagged},
		},
		{
			name:    "empty include set keeps nothing",
			include: []cards.Tag{},
			want:    []cards.Card{},
		},
		{
			name:    "exclusion wins over inclusion",
			include: []cards.Tag{cards.TagSpicy, cards.TagTask},
			exclude: []cards.Tag{cards.TagTask},
			want:    []cards.Card{spicy},
		},
		{
			name:    "untagged sentinel excludes cards without tags",
			include: []cards.Tag{cards.TagNormal, cards.TagUntagged},
			exclude: []cards.Tag{cards.TagUntagged},
			want:    []cards.Card{normal},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actual := cards.Filter(all, tc.include, tc.exclude)

			assert.Equal(t, tc.want, actual)
		})
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	deck := []cards.Card{
		{Text: "Take a sip", Tags: []cards.Tag{cards.TagNormal}},
		{Text: "Cheers"},
	}
	include := []cards.Tag{cards.TagNormal, cards.TagUntagged}
	exclude := []cards.Tag{cards.TagSpicy}

	once := cards.Filter(deck, include, exclude)
	twice := cards.Filter(once, include, exclude)

	assert.Equal(t, once, twice)
}

func TestFilterDoesNotModifyInput(t *testing.T) {
	deck := []cards.Card{
		{Text: "Take a sip", Tags: []cards.Tag{cards.TagNormal}},
		{Text: "Cheers"},
	}

	cards.Filter(deck, []cards.Tag{cards.TagNormal}, nil)

	assert.Len(t, deck, 2)
	assert.Equal(t, "Take a sip", deck[0].Text)
}
