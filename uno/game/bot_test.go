package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unodesk/engine/uno/card"
	"github.com/unodesk/engine/uno/card/color"
	"github.com/unodesk/engine/uno/event"
	"github.com/unodesk/engine/uno/game"
)

func TestBotPrefersActionCards(t *testing.T) {
	bot := game.RestorePlayer("Bot Jinx", true, []card.Card{
		card.New(color.Red, card.Five),
		card.New(color.Red, card.Skip),
		card.New(color.Blue, card.Nine),
	})
	alice := game.RestorePlayer("alice", false, []card.Card{card.New(color.Green, card.Seven)})
	botTwo := game.RestorePlayer("Bot Lulu", true, []card.Card{card.New(color.Yellow, card.Two)})
	session, listener := restoreTable(t, []*game.Player{bot, alice, botTwo}, nil, card.New(color.Red, card.Three))

	session.PlayBotTurn(bot)

	// RED 5 and RED SKIP both match, but the skip takes priority.
	assert.Equal(t, card.New(color.Red, card.Skip), session.CurrentCard())
	actions := payloadsOfType[event.BotActionPayload](listener)
	require.Len(t, actions, 1)
	require.NotNil(t, actions[0].Card)
	assert.Equal(t, card.New(color.Red, card.Skip), *actions[0].Card)
}

func TestBotDrawsWhenNothingIsPlayable(t *testing.T) {
	bot := game.RestorePlayer("Bot Jinx", true, []card.Card{card.New(color.Blue, card.Seven)})
	alice := game.RestorePlayer("alice", false, []card.Card{card.New(color.Green, card.Seven)})
	undrawn := []card.Card{card.New(color.Green, card.Nine)}
	session, listener := restoreTable(t, []*game.Player{bot, alice}, undrawn, card.New(color.Red, card.Three))

	session.PlayBotTurn(bot)

	assert.Equal(t, 2, bot.HandSize())
	assert.Same(t, alice, session.CurrentPlayer())
	actions := payloadsOfType[event.BotActionPayload](listener)
	require.Len(t, actions, 1)
	assert.Nil(t, actions[0].Card)
}

func TestBotPlaysTheCardItDrew(t *testing.T) {
	bot := game.RestorePlayer("Bot Jinx", true, []card.Card{
		card.New(color.Blue, card.Seven),
		card.New(color.Blue, card.Eight),
	})
	alice := game.RestorePlayer("alice", false, []card.Card{card.New(color.Green, card.Seven)})
	undrawn := []card.Card{card.New(color.Red, card.Nine)}
	session, listener := restoreTable(t, []*game.Player{bot, alice}, undrawn, card.New(color.Red, card.Three))

	session.PlayBotTurn(bot)

	assert.Equal(t, card.New(color.Red, card.Nine), session.CurrentCard())
	assert.Equal(t, 2, bot.HandSize())
	assert.Same(t, alice, session.CurrentPlayer())
	actions := payloadsOfType[event.BotActionPayload](listener)
	require.Len(t, actions, 1)
	require.NotNil(t, actions[0].Card)
	assert.Equal(t, card.New(color.Red, card.Nine), *actions[0].Card)
}

func TestBotDoesNothingAfterGameOver(t *testing.T) {
	alice := game.RestorePlayer("alice", false, []card.Card{card.New(color.Red, card.Five)})
	bot := game.RestorePlayer("Bot Jinx", true, []card.Card{card.New(color.Red, card.Seven)})
	session, listener := restoreTable(t, []*game.Player{alice, bot}, nil, card.New(color.Red, card.Three))

	require.True(t, session.PlayCard(card.New(color.Red, card.Five), alice))
	require.True(t, session.IsGameOver())

	session.PlayBotTurn(bot)
	assert.Empty(t, payloadsOfType[event.BotActionPayload](listener))
	assert.Equal(t, 1, bot.HandSize())
}
