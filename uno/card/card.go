package card

import (
	"github.com/unodesk/engine/uno/card/color"
)

// Card is an immutable (color, rank) value. Wild-family cards carry the
// Wild pseudo-color until a play resolves them to a concrete color, which
// is tracked by the session rather than the card itself.
type Card struct {
	Color color.Color
	Rank  Rank
}

func New(c color.Color, r Rank) Card {
	return Card{Color: c, Rank: r}
}

func NewWild() Card {
	return Card{Color: color.Wild, Rank: Wild}
}

func NewWildDrawFour() Card {
	return Card{Color: color.Wild, Rank: DrawFour}
}

// Matches reports whether the card may be played directly on top, with no
// color override in effect: same color, same rank, or a wild-family card.
func (c Card) Matches(top Card) bool {
	return c.Color == top.Color || c.Rank == top.Rank || c.Color == color.Wild
}

// Score is the card's point value for the human score tally: face value
// for number cards, 20 for colored action cards, 50 for the wild family.
func (c Card) Score() int {
	switch c.Rank {
	case Skip, Reverse, DrawTwo:
		return 20
	case Wild, DrawFour:
		return 50
	default:
		return int(c.Rank)
	}
}

// Token is the card's wire form: COLOR_RANK, or the bare rank for
// wild-family cards (WILD, DRAW_FOUR).
func (c Card) Token() string {
	if c.Color == color.Wild {
		return c.Rank.String()
	}
	return c.Color.String() + "_" + c.Rank.String()
}

// Label is the card's save-header form: "COLOR RANK", bare rank for
// wild-family cards.
func (c Card) Label() string {
	if c.Color == color.Wild {
		return c.Rank.String()
	}
	return c.Color.String() + " " + c.Rank.String()
}

func (c Card) String() string {
	return c.Color.Paintf("[%s]", c.Token())
}
