package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Color identifies one of the four card colors, the wild pseudo-color
// carried by unresolved wild-family cards, or None for "no color override
// in effect".
type Color uint8

const (
	None Color = iota
	Red
	Yellow
	Green
	Blue
	Wild
)

// Sides lists the four playable colors. The order doubles as the
// tie-break order when a bot picks a color automatically.
func Sides() []Color {
	return []Color{Red, Yellow, Green, Blue}
}

var names = map[Color]string{
	Red:    "RED",
	Yellow: "YELLOW",
	Green:  "GREEN",
	Blue:   "BLUE",
	Wild:   "WILD",
}

var paintFunctions = map[Color]func(string, ...interface{}) string{
	Red:    color.New(color.FgHiRed).SprintfFunc(),
	Yellow: color.New(color.FgHiYellow).SprintfFunc(),
	Green:  color.New(color.FgHiGreen).SprintfFunc(),
	Blue:   color.New(color.FgHiCyan).SprintfFunc(),
}

var Stdout io.Writer = color.Output

func (c Color) String() string {
	if name, ok := names[c]; ok {
		return name
	}
	return "NONE"
}

// Paint decorates text with the color's terminal escape codes. Wild and
// None have no decoration.
func (c Color) Paint(text string) string {
	paint, ok := paintFunctions[c]
	if !ok {
		return text
	}
	return paint(text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	return c.Paint(fmt.Sprintf(format, args...))
}

// ByName resolves a color from its name, case-insensitively.
func ByName(name string) (Color, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for c, n := range names {
		if n == upper {
			return c, nil
		}
	}
	return None, fmt.Errorf("invalid color '%s'", name)
}
