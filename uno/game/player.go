package game

import (
	"github.com/unodesk/engine/uno/card"
	"github.com/unodesk/engine/uno/card/color"
)

// Player holds one seat at the table: a hand of cards, the uno-declaration
// flag, and the cumulative statistics carried between sessions by the
// account store. The bot flag is fixed at construction.
type Player struct {
	username    string
	bot         bool
	hand        []card.Card
	declaredUno bool

	gamesPlayed int
	wins        int
	totalScore  int
}

func NewPlayer(username string, bot bool) *Player {
	return &Player{
		username: username,
		bot:      bot,
		hand:     make([]card.Card, 0, 7),
	}
}

// RestorePlayer rebuilds a player from a persisted hand.
func RestorePlayer(username string, bot bool, hand []card.Card) *Player {
	player := NewPlayer(username, bot)
	player.hand = append(player.hand, hand...)
	return player
}

func (p *Player) Username() string {
	return p.username
}

func (p *Player) IsBot() bool {
	return p.bot
}

// Hand returns a copy. Order is insertion order and has no rule meaning.
func (p *Player) Hand() []card.Card {
	hand := make([]card.Card, len(p.hand))
	copy(hand, p.hand)
	return hand
}

func (p *Player) HandSize() int {
	return len(p.hand)
}

func (p *Player) HandEmpty() bool {
	return len(p.hand) == 0
}

// DrawCard appends to the hand and voids any standing uno declaration.
func (p *Player) DrawCard(c card.Card) {
	p.hand = append(p.hand, c)
	p.declaredUno = false
}

// RemoveCard removes exactly one (color, rank) instance from the hand,
// preserving the order of the rest. It reports whether a card was removed.
func (p *Player) RemoveCard(c card.Card) bool {
	for index, cardInHand := range p.hand {
		if cardInHand == c {
			p.hand = append(p.hand[:index], p.hand[index+1:]...)
			return true
		}
	}
	return false
}

// PlayableCards filters the hand down to cards playable on current under
// the given color override.
func (p *Player) PlayableCards(current card.Card, override color.Color) []card.Card {
	var playable []card.Card
	for _, candidate := range p.hand {
		if Playable(candidate, current, override) {
			playable = append(playable, candidate)
		}
	}
	return playable
}

func (p *Player) HasDeclaredUno() bool {
	return p.declaredUno
}

func (p *Player) SetUnoDeclared(declared bool) {
	p.declaredUno = declared
}

// ChooseColorAutomatically returns the color most represented among the
// non-wild cards in hand; ties fall to the earlier color in Red, Yellow,
// Green, Blue order. Used for bot wild resolution.
func (p *Player) ChooseColorAutomatically() color.Color {
	counts := make(map[color.Color]int)
	for _, c := range p.hand {
		if c.Color != color.Wild {
			counts[c.Color]++
		}
	}
	best := color.Red
	for _, side := range color.Sides() {
		if counts[side] > counts[best] {
			best = side
		}
	}
	return best
}

func (p *Player) IncrementScore(points int) {
	p.totalScore += points
}

func (p *Player) GamesPlayed() int {
	return p.gamesPlayed
}

func (p *Player) Wins() int {
	return p.wins
}

func (p *Player) TotalScore() int {
	return p.totalScore
}
