package event

// PenaltyAppliedPayload reports a draw penalty for playing down to one
// card without a standing uno declaration.
type PenaltyAppliedPayload struct {
	PlayerName string
	Cards      int
}

type PenaltyAppliedListener interface {
	OnPenaltyApplied(PenaltyAppliedPayload)
}

type PenaltyAppliedEmitter struct {
	listeners []PenaltyAppliedListener
}

func (e *PenaltyAppliedEmitter) AddListener(listener PenaltyAppliedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *PenaltyAppliedEmitter) Emit(payload PenaltyAppliedPayload) {
	for _, listener := range e.listeners {
		listener.OnPenaltyApplied(payload)
	}
}
