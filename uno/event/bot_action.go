package event

import "github.com/unodesk/engine/uno/card"

// BotActionPayload reports a finished bot turn. Card is nil when the bot
// drew without being able to play.
type BotActionPayload struct {
	BotName string
	Card    *card.Card
}

type BotActionListener interface {
	OnBotAction(BotActionPayload)
}

type BotActionEmitter struct {
	listeners []BotActionListener
}

func (e *BotActionEmitter) AddListener(listener BotActionListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *BotActionEmitter) Emit(payload BotActionPayload) {
	for _, listener := range e.listeners {
		listener.OnBotAction(payload)
	}
}
