package event

type UnoDeclarationFailedPayload struct {
	PlayerName string
}

type UnoDeclarationFailedListener interface {
	OnUnoDeclarationFailed(UnoDeclarationFailedPayload)
}

type UnoDeclarationFailedEmitter struct {
	listeners []UnoDeclarationFailedListener
}

func (e *UnoDeclarationFailedEmitter) AddListener(listener UnoDeclarationFailedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *UnoDeclarationFailedEmitter) Emit(payload UnoDeclarationFailedPayload) {
	for _, listener := range e.listeners {
		listener.OnUnoDeclarationFailed(payload)
	}
}
