package card

import "strconv"

// Rank is a card face: 0-9 or one of the five action faces.
type Rank uint8

const (
	Zero Rank = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Skip
	Reverse
	DrawTwo
	Wild
	DrawFour
)

// IsAction reports whether the rank has a turn effect.
func (r Rank) IsAction() bool {
	return r >= Skip
}

func (r Rank) IsNumber() bool {
	return r <= Nine
}

var rankNames = map[Rank]string{
	Skip:     "SKIP",
	Reverse:  "REVERSE",
	DrawTwo:  "DRAW_TWO",
	Wild:     "WILD",
	DrawFour: "DRAW_FOUR",
}

func (r Rank) String() string {
	if r.IsNumber() {
		return strconv.Itoa(int(r))
	}
	return rankNames[r]
}
