package event

// Events groups one emitter per game event. Each session owns its own
// registry so listeners never leak across sessions.
type Events struct {
	TurnChanged          *TurnChangedEmitter
	DirectionChanged     *DirectionChangedEmitter
	BotAction            *BotActionEmitter
	StatusUpdated        *StatusUpdatedEmitter
	ColorPicked          *ColorPickedEmitter
	UnoDeclared          *UnoDeclaredEmitter
	UnoDeclarationFailed *UnoDeclarationFailedEmitter
	PenaltyApplied       *PenaltyAppliedEmitter
	GameOver             *GameOverEmitter
}

func NewEvents() *Events {
	return &Events{
		TurnChanged:          &TurnChangedEmitter{},
		DirectionChanged:     &DirectionChangedEmitter{},
		BotAction:            &BotActionEmitter{},
		StatusUpdated:        &StatusUpdatedEmitter{},
		ColorPicked:          &ColorPickedEmitter{},
		UnoDeclared:          &UnoDeclaredEmitter{},
		UnoDeclarationFailed: &UnoDeclarationFailedEmitter{},
		PenaltyApplied:       &PenaltyAppliedEmitter{},
		GameOver:             &GameOverEmitter{},
	}
}

// AddListenerAll registers one value on every emitter it implements.
func (e *Events) AddListenerAll(listener interface{}) {
	if l, ok := listener.(TurnChangedListener); ok {
		e.TurnChanged.AddListener(l)
	}
	if l, ok := listener.(DirectionChangedListener); ok {
		e.DirectionChanged.AddListener(l)
	}
	if l, ok := listener.(BotActionListener); ok {
		e.BotAction.AddListener(l)
	}
	if l, ok := listener.(StatusUpdatedListener); ok {
		e.StatusUpdated.AddListener(l)
	}
	if l, ok := listener.(ColorPickedListener); ok {
		e.ColorPicked.AddListener(l)
	}
	if l, ok := listener.(UnoDeclaredListener); ok {
		e.UnoDeclared.AddListener(l)
	}
	if l, ok := listener.(UnoDeclarationFailedListener); ok {
		e.UnoDeclarationFailed.AddListener(l)
	}
	if l, ok := listener.(PenaltyAppliedListener); ok {
		e.PenaltyApplied.AddListener(l)
	}
	if l, ok := listener.(GameOverListener); ok {
		e.GameOver.AddListener(l)
	}
}
