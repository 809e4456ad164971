package event

// TurnChangedPayload carries the new current player. An empty PlayerName
// means there is no next player: the game is over.
type TurnChangedPayload struct {
	PlayerName string
}

type TurnChangedListener interface {
	OnTurnChanged(TurnChangedPayload)
}

type TurnChangedEmitter struct {
	listeners []TurnChangedListener
}

func (e *TurnChangedEmitter) AddListener(listener TurnChangedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *TurnChangedEmitter) Emit(payload TurnChangedPayload) {
	for _, listener := range e.listeners {
		listener.OnTurnChanged(payload)
	}
}
