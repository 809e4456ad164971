package game

import (
	"math/rand"

	"github.com/unodesk/engine/uno/card"
	"github.com/unodesk/engine/uno/event"
)

// PlayBotTurn runs one bot decision: play a card if possible, otherwise
// draw and play the drawn card if it became playable. Turn advancement
// happens inside PlayCard/DrawCardForPlayer; this method never walks the
// pointer itself, and the driver paces the next turn after the bot-action
// event.
func (s *Session) PlayBotTurn(bot *Player) {
	if s.over {
		return
	}
	var played *card.Card
	if chosen, ok := s.botDecideCardToPlay(bot); ok {
		if s.PlayCard(chosen, bot) {
			played = &chosen
		}
	} else if drawn, playable := s.DrawCardForPlayer(bot); playable {
		if s.PlayCard(drawn, bot) {
			played = &drawn
		}
	}
	s.events.BotAction.Emit(event.BotActionPayload{
		BotName: bot.Username(),
		Card:    played,
	})
}

// botDecideCardToPlay picks uniformly at random among the playable action
// cards when any exist, else among all playable cards.
func (s *Session) botDecideCardToPlay(bot *Player) (card.Card, bool) {
	playable := bot.PlayableCards(s.currentCard, s.currentColor)
	if len(playable) == 0 {
		return card.Card{}, false
	}
	var actionCards []card.Card
	for _, c := range playable {
		if c.Rank.IsAction() {
			actionCards = append(actionCards, c)
		}
	}
	pool := playable
	if len(actionCards) > 0 {
		pool = actionCards
	}
	return pool[rand.Intn(len(pool))], true
}
