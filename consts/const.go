package consts

type StateID int

const (
	_ StateID = iota
	StateWelcome
	StateDeal
	StateTurn
	StateOver
)

const (
	MinPlayers = 2
	MaxPlayers = 4

	HandSize = 7
	MinPip   = 0
	MaxPip   = 6
	SetSize  = 28

	// BlockCount is how often one pip value appears on the ends of the whole
	// set: six tiles carry it once and its double carries it twice.
	BlockCount = 8
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

const (
	CodeInvalidValue = iota + 1
	CodeInvalidTilePlacement
	CodeAmbiguousTilePlacement
	CodeNotInHand
	CodeNotStarted
	CodeInvalidPlayerCount
	CodeInvalidSide
	CodeAlreadyDealt
	CodeRoundOver
	CodeMustPlay
	CodeInputInvalid
)

var (
	ErrorsInvalidValue           = NewErr(CodeInvalidValue, false, "Domino tiles must have values between 0 and 6. ")
	ErrorsInvalidTilePlacement   = NewErr(CodeInvalidTilePlacement, false, "Tile does not match that end of the table. ")
	ErrorsAmbiguousTilePlacement = NewErr(CodeAmbiguousTilePlacement, false, "Tile can be added to both ends, pick a side. ")
	ErrorsNotInHand              = NewErr(CodeNotInHand, false, "Player does not have this tile in hand. ")
	ErrorsNotStarted             = NewErr(CodeNotStarted, false, "Game has not started yet, deal the tiles first. ")
	ErrorsInvalidPlayerCount     = NewErr(CodeInvalidPlayerCount, true, "A game must have between 2 and 4 players. ")
	ErrorsInvalidSide            = NewErr(CodeInvalidSide, false, "Side must be either left or right. ")
	ErrorsAlreadyDealt           = NewErr(CodeAlreadyDealt, false, "Tiles have already been dealt. ")
	ErrorsRoundOver              = NewErr(CodeRoundOver, true, "Round is over. ")
	ErrorsMustPlay               = NewErr(CodeMustPlay, false, "There is a tile that can be played or drawn. ")
	ErrorsInputInvalid           = NewErr(CodeInputInvalid, false, "Input invalid. ")
)
