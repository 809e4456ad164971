package game

import (
	"github.com/google/uuid"

	"github.com/unodesk/engine/consts"
	"github.com/unodesk/engine/gamelog"
	"github.com/unodesk/engine/uno/card"
	"github.com/unodesk/engine/uno/card/color"
	"github.com/unodesk/engine/uno/event"
)

// ColorChooser resolves a wild play to a concrete color for a human
// player. It is the one synchronous query the session makes of its driver;
// the session blocks until it returns.
type ColorChooser interface {
	ChooseColor(playerName string, played card.Card) color.Color
}

// StatsRecorder receives the human player's final result when a session
// ends. The account store implements it.
type StatsRecorder interface {
	RecordResult(username string, won bool, score int) error
}

// Session drives one game of UNO: it owns the deck, the players, the turn
// pointer, and the current card/color, applies the rules, and pushes
// events to its driver. All mutation happens synchronously inside its
// methods; there is never more than one turn in flight.
type Session struct {
	id           uuid.UUID
	players      []*Player
	deck         *Deck
	currentCard  card.Card
	currentColor color.Color
	cycler       *Cycler
	events       *event.Events
	chooser      ColorChooser
	stats        StatsRecorder
	log          *gamelog.Logger
	over         bool
}

type Option func(*Session)

func WithColorChooser(chooser ColorChooser) Option {
	return func(s *Session) { s.chooser = chooser }
}

func WithStatsRecorder(stats StatsRecorder) Option {
	return func(s *Session) { s.stats = stats }
}

func WithLogger(log *gamelog.Logger) Option {
	return func(s *Session) { s.log = log }
}

// NewSession shuffles a fresh deck, deals seven cards to each player, and
// flips a non-action starting card. The first player in the slice opens.
func NewSession(players []*Player, events *event.Events, opts ...Option) (*Session, error) {
	session, err := newSession(players, events, opts)
	if err != nil {
		return nil, err
	}
	session.deck = NewDeck()
	session.deck.Shuffle()
	if err := session.deal(); err != nil {
		return nil, err
	}
	if err := session.flipStartingCard(); err != nil {
		return nil, err
	}
	session.log.Infof("session %s started with %d players", session.id, len(players))
	return session, nil
}

// RestoreSession rebuilds a session from persisted state, skipping the
// deal. The codec and tests use it.
func RestoreSession(players []*Player, deck *Deck, current card.Card, index int, clockwise bool, events *event.Events, opts ...Option) (*Session, error) {
	session, err := newSession(players, events, opts)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(players) {
		index = 0
	}
	session.deck = deck
	session.currentCard = current
	session.cycler = RestoreCycler(len(players), index, clockwise)
	session.log.Infof("session %s restored with %d players", session.id, len(players))
	return session, nil
}

func newSession(players []*Player, events *event.Events, opts []Option) (*Session, error) {
	if len(players) < consts.MinPlayers || len(players) > consts.MaxPlayers {
		return nil, consts.ErrPlayersCount
	}
	if events == nil {
		events = event.NewEvents()
	}
	session := &Session{
		id:      uuid.New(),
		players: players,
		cycler:  NewCycler(len(players)),
		events:  events,
		log:     gamelog.Nop(),
	}
	for _, opt := range opts {
		opt(session)
	}
	return session, nil
}

func (s *Session) deal() error {
	for _, player := range s.players {
		for i := 0; i < consts.StartingHandSize; i++ {
			drawn, err := s.deck.Draw()
			if err != nil {
				return err
			}
			player.DrawCard(drawn)
		}
		s.log.Infof("%s has been dealt %d cards", player.Username(), consts.StartingHandSize)
	}
	return nil
}

// flipStartingCard draws until a number card surfaces; action cards go
// back beneath the draw pile so no card leaves the 108-card universe.
func (s *Session) flipStartingCard() error {
	for {
		drawn, err := s.deck.Draw()
		if err != nil {
			return err
		}
		if drawn.Rank.IsAction() {
			s.deck.returnToBottom(drawn)
			continue
		}
		s.currentCard = drawn
		s.deck.AddToDiscardPile(drawn)
		s.log.Infof("starting card is %s", drawn.Label())
		return nil
	}
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) Players() []*Player {
	return s.players
}

func (s *Session) CurrentPlayer() *Player {
	return s.players[s.cycler.Current()]
}

func (s *Session) CurrentIndex() int {
	return s.cycler.Current()
}

func (s *Session) CurrentCard() card.Card {
	return s.currentCard
}

func (s *Session) CurrentColor() color.Color {
	return s.currentColor
}

func (s *Session) DirectionClockwise() bool {
	return s.cycler.Clockwise()
}

func (s *Session) Deck() *Deck {
	return s.deck
}

func (s *Session) Events() *event.Events {
	return s.events
}

func (s *Session) IsGameOver() bool {
	return s.over
}

// Winner returns the first player with an empty hand, or nil.
func (s *Session) Winner() *Player {
	for _, player := range s.players {
		if player.HandEmpty() {
			return player
		}
	}
	return nil
}

// IsValidPlay checks legality against the current card and color override.
func (s *Session) IsValidPlay(c card.Card) bool {
	return Playable(c, s.currentCard, s.currentColor)
}

// PlayCard attempts to play c for player. It returns false, with no state
// change, when the play is illegal or the game is already over. On success
// the card's effect is applied and the turn advances before returning.
func (s *Session) PlayCard(c card.Card, player *Player) bool {
	if s.over || !s.IsValidPlay(c) {
		s.log.Infof("%s attempted an invalid play: %s", player.Username(), c.Label())
		return false
	}

	if !player.IsBot() {
		player.IncrementScore(c.Score())
	}

	// The penalty check must see the declaration state as it stood
	// before this play mutates it.
	declared := player.HasDeclaredUno()
	hadTwoCards := player.HandSize() == 2

	s.currentCard = c
	s.deck.AddToDiscardPile(c)
	player.RemoveCard(c)
	player.SetUnoDeclared(false)
	if c.Color != color.Wild {
		s.currentColor = color.None
	}
	s.log.Infof("%s plays %s", player.Username(), c.Label())

	if hadTwoCards && !declared {
		s.applyUnoPenalty(player)
	}

	s.emitStatus()
	s.advanceAfterPlay(c, player)
	return true
}

func (s *Session) applyUnoPenalty(player *Player) {
	for i := 0; i < consts.UnoPenaltyCards; i++ {
		s.drawInto(player)
	}
	s.log.Infof("%s did not declare UNO and draws %d penalty cards", player.Username(), consts.UnoPenaltyCards)
	s.events.PenaltyApplied.Emit(event.PenaltyAppliedPayload{
		PlayerName: player.Username(),
		Cards:      consts.UnoPenaltyCards,
	})
}

func (s *Session) drawInto(player *Player) {
	drawn, err := s.deck.Draw()
	if err != nil {
		// Unreachable in a correctly sequenced game; an engine bug if hit.
		s.log.Errorf("draw for %s failed: %v", player.Username(), err)
		return
	}
	player.DrawCard(drawn)
}

// advanceAfterPlay applies the played card's effect and moves the turn
// pointer to the next player, emitting the turn-changed event. A finished
// game short-circuits into game-over notification instead.
func (s *Session) advanceAfterPlay(played card.Card, by *Player) {
	if s.finishIfOver() {
		return
	}

	switch played.Rank {
	case card.Skip:
		skipped := s.players[s.cycler.Next()]
		s.cycler.Next()
		s.log.Infof("%s's turn skipped", skipped.Username())
	case card.Reverse:
		s.cycler.Reverse()
		s.log.Infof("%s reversed the direction of play", by.Username())
		s.events.DirectionChanged.Emit(event.DirectionChangedPayload{Clockwise: s.cycler.Clockwise()})
		s.cycler.Next()
		if len(s.players) == 2 {
			// With two players a reverse degenerates to a skip.
			s.cycler.Next()
		}
	case card.DrawTwo:
		victim := s.players[s.cycler.Next()]
		for i := 0; i < consts.DrawTwoCards; i++ {
			s.drawInto(victim)
		}
		s.log.Infof("%s draws %d cards and is skipped", victim.Username(), consts.DrawTwoCards)
		s.emitStatus()
		s.cycler.Next()
	case card.Wild:
		s.resolveColor(by, played)
		s.cycler.Next()
	case card.DrawFour:
		s.resolveColor(by, played)
		victim := s.players[s.cycler.Next()]
		for i := 0; i < consts.DrawFourCards; i++ {
			s.drawInto(victim)
		}
		s.log.Infof("%s draws %d cards and is skipped", victim.Username(), consts.DrawFourCards)
		s.emitStatus()
		s.cycler.Next()
	default:
		s.cycler.Next()
	}

	s.emitTurnChanged()
}

// resolveColor sets the color override after a wild-family play: humans
// are asked through the synchronous chooser, bots pick from their hand.
func (s *Session) resolveColor(player *Player, played card.Card) {
	var chosen color.Color
	if player.IsBot() || s.chooser == nil {
		chosen = player.ChooseColorAutomatically()
	} else {
		chosen = s.chooser.ChooseColor(player.Username(), played)
	}
	if chosen == color.None || chosen == color.Wild {
		chosen = player.ChooseColorAutomatically()
	}
	s.currentColor = chosen
	s.log.Infof("%s changes the color to %s", player.Username(), chosen)
	s.events.ColorPicked.Emit(event.ColorPickedPayload{
		PlayerName: player.Username(),
		Color:      chosen,
	})
	s.emitStatus()
}

// DrawCardForPlayer draws one card for player. The card is returned with
// true only when it is immediately playable, leaving the turn open;
// otherwise the player forfeits the rest of the turn and play advances.
func (s *Session) DrawCardForPlayer(player *Player) (card.Card, bool) {
	if s.over {
		return card.Card{}, false
	}
	drawn, err := s.deck.Draw()
	if err != nil {
		s.log.Errorf("draw for %s failed: %v", player.Username(), err)
		return card.Card{}, false
	}
	player.DrawCard(drawn)
	s.log.Infof("%s draws a card", player.Username())
	s.emitStatus()
	if s.IsValidPlay(drawn) {
		return drawn, true
	}
	s.NextTurn()
	return card.Card{}, false
}

// NextTurn advances the pointer one seat with no card effect. The driver
// calls it when a human keeps a playable drawn card.
func (s *Session) NextTurn() {
	if s.finishIfOver() {
		return
	}
	s.cycler.Next()
	s.emitTurnChanged()
}

func (s *Session) emitTurnChanged() {
	current := s.CurrentPlayer()
	s.log.Infof("it is now %s's turn", current.Username())
	s.events.TurnChanged.Emit(event.TurnChangedPayload{PlayerName: current.Username()})
}

func (s *Session) emitStatus() {
	s.events.StatusUpdated.Emit(event.StatusUpdatedPayload{
		CurrentCard:  s.currentCard,
		CurrentColor: s.currentColor,
	})
}

// finishIfOver transitions to the terminal state once any hand is empty:
// stats are finalized and the sink is notified exactly once.
func (s *Session) finishIfOver() bool {
	if s.over {
		return true
	}
	winner := s.Winner()
	if winner == nil {
		return false
	}
	s.over = true
	s.log.Infof("%s wins", winner.Username())
	s.finalizeStats()
	s.events.TurnChanged.Emit(event.TurnChangedPayload{})
	s.events.GameOver.Emit(event.GameOverPayload{WinnerName: winner.Username()})
	return true
}

func (s *Session) finalizeStats() {
	if s.stats == nil {
		return
	}
	for _, player := range s.players {
		if player.IsBot() {
			continue
		}
		won := player.HandEmpty()
		if err := s.stats.RecordResult(player.Username(), won, player.TotalScore()); err != nil {
			s.log.Errorf("recording result for %s failed: %v", player.Username(), err)
		}
	}
}

// CanDeclareUno allows a declaration at exactly two cards, or whenever the
// hand holds a card matching the current top card. The latter is a lenient
// house allowance carried over from the product as designed.
func (s *Session) CanDeclareUno(player *Player) bool {
	if player.HandSize() == 2 {
		return true
	}
	for _, c := range player.Hand() {
		if c.Matches(s.currentCard) {
			return true
		}
	}
	return false
}

// DeclareUno marks the declaration when allowed; a refused declaration
// changes no state.
func (s *Session) DeclareUno(player *Player) bool {
	if !s.CanDeclareUno(player) {
		s.events.UnoDeclarationFailed.Emit(event.UnoDeclarationFailedPayload{PlayerName: player.Username()})
		return false
	}
	player.SetUnoDeclared(true)
	s.log.Infof("%s declares UNO", player.Username())
	s.events.UnoDeclared.Emit(event.UnoDeclaredPayload{PlayerName: player.Username()})
	return true
}
