package card

import (
	"fmt"
	"strings"

	"github.com/unodesk/engine/uno/card/color"
)

// rankTokens accepts the digit form written by this codec as well as the
// spelled-out form found in older save files.
var rankTokens = map[string]Rank{
	"ZERO": Zero, "ONE": One, "TWO": Two, "THREE": Three, "FOUR": Four,
	"FIVE": Five, "SIX": Six, "SEVEN": Seven, "EIGHT": Eight, "NINE": Nine,
	"SKIP": Skip, "REVERSE": Reverse, "DRAW_TWO": DrawTwo,
	"WILD": Wild, "DRAW_FOUR": DrawFour,
}

func init() {
	for r := Zero; r <= Nine; r++ {
		rankTokens[r.String()] = r
	}
}

// Parse reads a card token in either wire form ("RED_5", "GREEN_SKIP") or
// save-header form ("RED 5"). Wild-family cards appear bare ("WILD",
// "DRAW_FOUR"), optionally with the legacy WILD_ color prefix.
func Parse(token string) (Card, error) {
	normalized := strings.ToUpper(strings.TrimSpace(token))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	if normalized == "" {
		return Card{}, fmt.Errorf("empty card token")
	}

	if rank, ok := rankTokens[normalized]; ok && (rank == Wild || rank == DrawFour) {
		return Card{Color: color.Wild, Rank: rank}, nil
	}

	colorPart, rankPart, found := strings.Cut(normalized, "_")
	if !found {
		return Card{}, fmt.Errorf("invalid card token '%s'", token)
	}
	cardColor, err := color.ByName(colorPart)
	if err != nil {
		return Card{}, fmt.Errorf("invalid card token '%s': %w", token, err)
	}
	rank, ok := rankTokens[rankPart]
	if !ok {
		return Card{}, fmt.Errorf("invalid card token '%s': unknown rank '%s'", token, rankPart)
	}
	if cardColor == color.Wild != (rank == Wild || rank == DrawFour) {
		return Card{}, fmt.Errorf("invalid card token '%s': color and rank disagree", token)
	}
	return Card{Color: cardColor, Rank: rank}, nil
}
