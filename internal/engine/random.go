package engine

import (
	"github.com/iamasit07/connect4-engine/internal/domain"
)

// RandomMove picks a uniformly random legal column. This is the baseline
// opponent ExpectimaxMove models.
func (e *Engine) RandomMove(board domain.Board) (int, error) {
	moves := board.ValidMoves()
	if len(moves) == 0 {
		return -1, domain.ErrNoLegalMoves
	}
	return moves[e.intn(len(moves))], nil
}
