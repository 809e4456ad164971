package ui

import (
	"github.com/unodesk/engine/uno/card/color"
	"github.com/unodesk/engine/uno/event"
)

// MessageWriter renders game events to the terminal. It implements every
// event listener interface; Attach registers it on a session's registry.
type MessageWriter struct{}

func Attach(events *event.Events) MessageWriter {
	writer := MessageWriter{}
	events.AddListenerAll(writer)
	return writer
}

func (m MessageWriter) OnTurnChanged(payload event.TurnChangedPayload) {
	if payload.PlayerName == "" {
		return
	}
	Printfln("It's %s's turn!", payload.PlayerName)
}

func (m MessageWriter) OnDirectionChanged(payload event.DirectionChangedPayload) {
	if payload.Clockwise {
		Println("Turn order is now clockwise!")
	} else {
		Println("Turn order is now counterclockwise!")
	}
}

func (m MessageWriter) OnBotAction(payload event.BotActionPayload) {
	if payload.Card == nil {
		Printfln("%s drew a card.", payload.BotName)
		return
	}
	Printfln("%s played %s!", payload.BotName, *payload.Card)
}

func (m MessageWriter) OnColorPicked(payload event.ColorPickedPayload) {
	Printfln("%s picked color %s!", payload.PlayerName, payload.Color.Paint(payload.Color.String()))
}

func (m MessageWriter) OnUnoDeclared(payload event.UnoDeclaredPayload) {
	Printfln("%s declared UNO!", payload.PlayerName)
}

func (m MessageWriter) OnUnoDeclarationFailed(payload event.UnoDeclarationFailedPayload) {
	Printfln("%s cannot declare UNO right now.", payload.PlayerName)
}

func (m MessageWriter) OnPenaltyApplied(payload event.PenaltyAppliedPayload) {
	Printfln("%s forgot to declare UNO and draws %d penalty cards!", payload.PlayerName, payload.Cards)
}

func (m MessageWriter) OnGameOver(payload event.GameOverPayload) {
	Printfln("%s wins!", payload.WinnerName)
}

func (m MessageWriter) Welcome() {
	Printfln(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}
