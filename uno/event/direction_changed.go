package event

type DirectionChangedPayload struct {
	Clockwise bool
}

type DirectionChangedListener interface {
	OnDirectionChanged(DirectionChangedPayload)
}

type DirectionChangedEmitter struct {
	listeners []DirectionChangedListener
}

func (e *DirectionChangedEmitter) AddListener(listener DirectionChangedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *DirectionChangedEmitter) Emit(payload DirectionChangedPayload) {
	for _, listener := range e.listeners {
		listener.OnDirectionChanged(payload)
	}
}
