package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unodesk/engine/consts"
	"github.com/unodesk/engine/uno/card"
	"github.com/unodesk/engine/uno/card/color"
	"github.com/unodesk/engine/uno/game"
)

func TestNewDeckComposition(t *testing.T) {
	deck := game.NewDeck()
	cards := deck.UndrawnCards()
	require.Len(t, cards, 108)

	countByCard := make(map[card.Card]int)
	for _, c := range cards {
		countByCard[c]++
	}

	for _, side := range color.Sides() {
		assert.Equal(t, 1, countByCard[card.New(side, card.Zero)], "%s zero", side)
		for rank := card.One; rank <= card.Nine; rank++ {
			assert.Equal(t, 2, countByCard[card.New(side, rank)], "%s %s", side, rank)
		}
		assert.Equal(t, 2, countByCard[card.New(side, card.Skip)], "%s skip", side)
		assert.Equal(t, 2, countByCard[card.New(side, card.Reverse)], "%s reverse", side)
		assert.Equal(t, 2, countByCard[card.New(side, card.DrawTwo)], "%s draw two", side)
	}
	assert.Equal(t, 4, countByCard[card.NewWild()])
	assert.Equal(t, 4, countByCard[card.NewWildDrawFour()])
}

func TestShufflePreservesCardSet(t *testing.T) {
	deck := game.NewDeck()
	before := deck.UndrawnCards()
	deck.Shuffle()
	assert.ElementsMatch(t, before, deck.UndrawnCards())
}

func TestDrawPopsTheTop(t *testing.T) {
	deck := game.RestoreDeck([]card.Card{
		card.New(color.Red, card.One),
		card.New(color.Blue, card.Two),
	}, nil)

	drawn, err := deck.Draw()
	require.NoError(t, err)
	assert.Equal(t, card.New(color.Blue, card.Two), drawn)

	drawn, err = deck.Draw()
	require.NoError(t, err)
	assert.Equal(t, card.New(color.Red, card.One), drawn)
	assert.Equal(t, 0, deck.UndrawnCount())
}

func TestDrawRecyclesDiscardPile(t *testing.T) {
	top := card.New(color.Green, card.Five)
	buried := []card.Card{
		card.New(color.Red, card.One),
		card.New(color.Blue, card.Two),
		card.New(color.Yellow, card.Three),
	}
	deck := game.RestoreDeck(nil, append(append([]card.Card{}, buried...), top))

	drawn, err := deck.Draw()
	require.NoError(t, err)

	// The discard's top stays put so the current card survives the recycle.
	require.Equal(t, []card.Card{top}, deck.DiscardedCards())
	assert.ElementsMatch(t, buried, append(deck.UndrawnCards(), drawn))
}

func TestDrawFailsWhenBothPilesAreEmpty(t *testing.T) {
	deck := game.RestoreDeck(nil, nil)
	_, err := deck.Draw()
	assert.Equal(t, consts.ErrDeckExhausted, err)
}

func TestPeekDoesNotRemove(t *testing.T) {
	deck := game.RestoreDeck([]card.Card{card.New(color.Red, card.Nine)}, nil)

	peeked, ok := deck.Peek()
	require.True(t, ok)
	assert.Equal(t, card.New(color.Red, card.Nine), peeked)
	assert.Equal(t, 1, deck.UndrawnCount())

	deck = game.RestoreDeck(nil, nil)
	_, ok = deck.Peek()
	assert.False(t, ok)
}
