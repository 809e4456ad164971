package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/unodesk/engine/uno/card"
	"github.com/unodesk/engine/uno/card/color"
)

var stdin = bufio.NewReader(os.Stdin)

func PromptString(message string) string {
	for {
		Println(message)
		line, err := stdin.ReadString('\n')
		if err != nil {
			Println("Invalid text input")
			continue
		}
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
}

func promptLowercaseString(message string) string {
	return strings.ToLower(PromptString(message))
}

func promptUppercaseString(message string) string {
	return strings.ToUpper(PromptString(message))
}

// PromptCardSelection labels the playable cards A, B, C... and loops
// until one is chosen.
func PromptCardSelection(cards []card.Card) card.Card {
	sequence := runeSequence{}
	labels := make([]string, len(cards))
	cardSelectionLines := []string{"Select a card to play:"}
	for i, c := range cards {
		labels[i] = string(sequence.next())
		cardSelectionLines = append(cardSelectionLines, fmt.Sprintf("%s (enter %s)", c, labels[i]))
	}
	cardSelectionMessage := strings.Join(cardSelectionLines, "\n")

	for {
		selectedLabel := promptUppercaseString(cardSelectionMessage)
		for i, label := range labels {
			if label == selectedLabel {
				return cards[i]
			}
		}
		Printfln("No card assigned to '%s'", selectedLabel)
	}
}

func PromptColor() color.Color {
	colorMessage := fmt.Sprintf(
		"Select a color: '%s', '%s', '%s' or '%s'?",
		color.Red.Paint("red"),
		color.Yellow.Paint("yellow"),
		color.Green.Paint("green"),
		color.Blue.Paint("blue"),
	)
	for {
		colorName := promptLowercaseString(colorMessage)
		chosenColor, err := color.ByName(colorName)
		if err != nil || chosenColor == color.Wild {
			Printfln("Unknown color '%s'", colorName)
			continue
		}
		return chosenColor
	}
}

// ColorPrompter satisfies the session's synchronous color query for the
// human player.
type ColorPrompter struct{}

func (ColorPrompter) ChooseColor(playerName string, played card.Card) color.Color {
	Printfln("%s, you played %s.", playerName, played)
	return PromptColor()
}
