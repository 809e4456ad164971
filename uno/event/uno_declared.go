package event

type UnoDeclaredPayload struct {
	PlayerName string
}

type UnoDeclaredListener interface {
	OnUnoDeclared(UnoDeclaredPayload)
}

type UnoDeclaredEmitter struct {
	listeners []UnoDeclaredListener
}

func (e *UnoDeclaredEmitter) AddListener(listener UnoDeclaredListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *UnoDeclaredEmitter) Emit(payload UnoDeclaredPayload) {
	for _, listener := range e.listeners {
		listener.OnUnoDeclared(payload)
	}
}
