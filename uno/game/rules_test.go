package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unodesk/engine/uno/card"
	"github.com/unodesk/engine/uno/card/color"
	"github.com/unodesk/engine/uno/game"
)

func TestPlayable(t *testing.T) {
	scenarios := []struct {
		description    string
		candidate      card.Card
		current        card.Card
		override       color.Color
		expectedResult bool
	}{
		{
			description:    "matching_color",
			candidate:      card.New(color.Red, card.Five),
			current:        card.New(color.Red, card.Three),
			expectedResult: true,
		},
		{
			description:    "matching_rank",
			candidate:      card.New(color.Blue, card.Three),
			current:        card.New(color.Red, card.Three),
			expectedResult: true,
		},
		{
			description:    "no_match",
			candidate:      card.New(color.Blue, card.Five),
			current:        card.New(color.Red, card.Three),
			expectedResult: false,
		},
		{
			description:    "wild_is_always_playable",
			candidate:      card.NewWildDrawFour(),
			current:        card.New(color.Red, card.Three),
			expectedResult: true,
		},
		{
			description:    "override_replaces_the_current_color",
			candidate:      card.New(color.Green, card.Five),
			current:        card.NewWild(),
			override:       color.Green,
			expectedResult: true,
		},
		{
			description:    "override_blocks_the_printed_color",
			candidate:      card.New(color.Red, card.Five),
			current:        card.New(color.Red, card.Three),
			override:       color.Blue,
			expectedResult: false,
		},
		{
			description:    "rank_still_matches_under_override",
			candidate:      card.New(color.Red, card.Three),
			current:        card.New(color.Red, card.Three),
			override:       color.Blue,
			expectedResult: true,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			result := game.Playable(scenario.candidate, scenario.current, scenario.override)
			assert.Equal(t, scenario.expectedResult, result)
		})
	}
}
