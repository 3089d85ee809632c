package domain

// PlayerID identifies the owner of a cell. Empty marks an unoccupied cell.
type PlayerID int

const (
	Empty     PlayerID = 0
	PlayerOne PlayerID = 1
	PlayerTwo PlayerID = 2
)

// Opponent returns the other player. Calling it on Empty is a caller bug and
// returns Empty.
func (p PlayerID) Opponent() PlayerID {
	switch p {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	}
	return Empty
}

func (p PlayerID) Valid() bool {
	return p == PlayerOne || p == PlayerTwo
}

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// GameStatus represents the lifecycle of a game session.
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic errors that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove  Error = "invalid move"
	ErrColumnFull   Error = "column is full"
	ErrNoLegalMoves Error = "no legal moves"
	ErrGameOver     Error = "game is over"
	ErrGameNotFound Error = "game not found"
)
