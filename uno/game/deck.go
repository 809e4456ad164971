package game

import (
	"math/rand"

	"github.com/unodesk/engine/consts"
	"github.com/unodesk/engine/uno/card"
	"github.com/unodesk/engine/uno/card/color"
)

// Deck owns the two piles of the game: the undrawn stack and the discard
// stack. The last element of each slice is the stack's top. Together with
// the cards in player hands, the piles always hold the full 108-card
// universe.
type Deck struct {
	undrawn []card.Card
	discard []card.Card
}

func NewDeck() *Deck {
	deck := &Deck{}
	fillDeck(deck)
	return deck
}

// RestoreDeck rebuilds a deck from persisted pile contents, bottom-first.
func RestoreDeck(undrawn, discard []card.Card) *Deck {
	deck := &Deck{
		undrawn: make([]card.Card, len(undrawn)),
		discard: make([]card.Card, len(discard)),
	}
	copy(deck.undrawn, undrawn)
	copy(deck.discard, discard)
	return deck
}

func fillDeck(deck *Deck) {
	cards := make([]card.Card, 0, 108)
	for _, side := range color.Sides() {
		cards = append(cards, colorCards(side)...)
	}
	for i := 0; i < 4; i++ {
		cards = append(cards, card.NewWild(), card.NewWildDrawFour())
	}
	deck.undrawn = cards
}

func colorCards(side color.Color) []card.Card {
	cards := []card.Card{
		card.New(side, card.Zero),
		card.New(side, card.Skip), card.New(side, card.Skip),
		card.New(side, card.Reverse), card.New(side, card.Reverse),
		card.New(side, card.DrawTwo), card.New(side, card.DrawTwo),
	}
	for rank := card.One; rank <= card.Nine; rank++ {
		numberCard := card.New(side, rank)
		cards = append(cards, numberCard, numberCard)
	}
	return cards
}

// Shuffle randomizes the undrawn stack. Call it only on a freshly built
// deck, before dealing.
func (d *Deck) Shuffle() {
	shuffleCards(d.undrawn)
}

func shuffleCards(cards []card.Card) {
	rand.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}

// Draw pops the undrawn stack, recycling the discard pile first when the
// stack is empty. It fails only when both piles are exhausted, which a
// correctly sequenced game cannot reach.
func (d *Deck) Draw() (card.Card, error) {
	if len(d.undrawn) == 0 {
		d.reshuffleFromDiscard()
	}
	if len(d.undrawn) == 0 {
		return card.Card{}, consts.ErrDeckExhausted
	}
	top := d.undrawn[len(d.undrawn)-1]
	d.undrawn = d.undrawn[:len(d.undrawn)-1]
	return top, nil
}

// reshuffleFromDiscard holds the discard's top card aside, shuffles the
// remainder into a new undrawn stack, and leaves the held card as the
// discard's sole entry so the current card survives the recycle.
func (d *Deck) reshuffleFromDiscard() {
	if len(d.discard) == 0 {
		return
	}
	top := d.discard[len(d.discard)-1]
	rest := make([]card.Card, len(d.discard)-1)
	copy(rest, d.discard[:len(d.discard)-1])
	shuffleCards(rest)
	d.undrawn = rest
	d.discard = []card.Card{top}
}

func (d *Deck) AddToDiscardPile(c card.Card) {
	d.discard = append(d.discard, c)
}

// Peek reads the undrawn stack's top card without removing it.
func (d *Deck) Peek() (card.Card, bool) {
	if len(d.undrawn) == 0 {
		return card.Card{}, false
	}
	return d.undrawn[len(d.undrawn)-1], true
}

// returnToBottom slides a card beneath the undrawn stack. Used when the
// starting flip surfaces an action card.
func (d *Deck) returnToBottom(c card.Card) {
	d.undrawn = append([]card.Card{c}, d.undrawn...)
}

func (d *Deck) UndrawnCards() []card.Card {
	cards := make([]card.Card, len(d.undrawn))
	copy(cards, d.undrawn)
	return cards
}

func (d *Deck) DiscardedCards() []card.Card {
	cards := make([]card.Card, len(d.discard))
	copy(cards, d.discard)
	return cards
}

func (d *Deck) UndrawnCount() int {
	return len(d.undrawn)
}

func (d *Deck) DiscardCount() int {
	return len(d.discard)
}
