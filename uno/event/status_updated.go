package event

import (
	"github.com/unodesk/engine/uno/card"
	"github.com/unodesk/engine/uno/card/color"
)

type StatusUpdatedPayload struct {
	CurrentCard  card.Card
	CurrentColor color.Color
}

type StatusUpdatedListener interface {
	OnStatusUpdated(StatusUpdatedPayload)
}

type StatusUpdatedEmitter struct {
	listeners []StatusUpdatedListener
}

func (e *StatusUpdatedEmitter) AddListener(listener StatusUpdatedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *StatusUpdatedEmitter) Emit(payload StatusUpdatedPayload) {
	for _, listener := range e.listeners {
		listener.OnStatusUpdated(payload)
	}
}
