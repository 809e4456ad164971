package consts

const (
	StartingHandSize = 7
	UnoPenaltyCards  = 2
	DrawTwoCards     = 2
	DrawFourCards    = 4

	MinPlayers = 2
	MaxPlayers = 10

	// BotNamePrefix marks bot accounts; save files re-derive the bot
	// flag from it on load.
	BotNamePrefix = "Bot"
)

type Error struct {
	Code  int
	Msg   string
	Fatal bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, fatal bool, msg string) Error {
	return Error{Code: code, Fatal: fatal, Msg: msg}
}

var (
	ErrDeckExhausted = NewErr(1, true, "Deck exhausted with nothing to reshuffle. ")
	ErrPlayersCount  = NewErr(1, false, "Invalid number of players. ")
	ErrNoPlayers     = NewErr(1, false, "Save contains no readable players. ")
	ErrNoCurrentCard = NewErr(1, false, "Save contains no readable current card. ")
	ErrWrongOwner    = NewErr(1, false, "Save belongs to another account. ")
	ErrUserExists    = NewErr(1, false, "Username already taken. ")
	ErrUnknownUser   = NewErr(1, false, "Unknown username. ")
	ErrWrongPassword = NewErr(1, false, "Password incorrect. ")
)
