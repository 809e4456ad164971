package game

import (
	"github.com/unodesk/engine/uno/card"
	"github.com/unodesk/engine/uno/card/color"
)

// Playable is the one canonical legality check: a candidate may be played
// when its color matches the effective color, its rank matches the current
// card's rank, or it is a wild-family card. The effective color is the
// override left by the last wild resolution when one is in force, else the
// current card's own color.
func Playable(candidate, current card.Card, override color.Color) bool {
	effective := current.Color
	if override != color.None {
		effective = override
	}
	return candidate.Color == effective ||
		candidate.Rank == current.Rank ||
		candidate.Color == color.Wild
}
