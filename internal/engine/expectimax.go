package engine

import (
	"math"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

// ExpectimaxMove picks a column for mover assuming the opponent replies
// uniformly at random. The opponent's ply is a chance node whose value is the
// exact average over all legal replies, so unlike AdversarialMove no branch
// of a chance node may ever be pruned: any unexplored reply could still move
// the average.
func (e *Engine) ExpectimaxMove(board domain.Board, mover domain.PlayerID) (int, error) {
	moves := board.ValidMoves()
	if len(moves) == 0 {
		return -1, domain.ErrNoLegalMoves
	}

	order := e.moveOrder(moves)
	bestCol := order[0]
	bestScore := math.Inf(-1)

	for _, col := range order {
		next, row, _ := board.Place(col, mover)
		if next.WinAt(row, col, mover) {
			return col, nil
		}

		score := e.expectimax(next, e.cfg.Depth-1, false, mover)
		if score > bestScore {
			bestScore = score
			bestCol = col
		}
	}

	return bestCol, nil
}

func (e *Engine) expectimax(board domain.Board, depth int, isMaximizing bool, mover domain.PlayerID) float64 {
	moves := board.ValidMoves()
	if depth == 0 || len(moves) == 0 {
		return float64(e.Evaluate(board, mover))
	}

	fromRoot := e.cfg.Depth - depth

	if isMaximizing {
		best := math.Inf(-1)
		for _, col := range moves {
			next, row, _ := board.Place(col, mover)
			if next.WinAt(row, col, mover) {
				return float64(WinScore - fromRoot)
			}

			if v := e.expectimax(next, depth-1, false, mover); v > best {
				best = v
			}
		}
		return best
	}

	// chance node: uniform average over the opponent's legal replies
	opponent := mover.Opponent()
	prob := 1.0 / float64(len(moves))
	sum := 0.0
	for _, col := range moves {
		next, row, _ := board.Place(col, opponent)
		if next.WinAt(row, col, opponent) {
			sum += prob * float64(-WinScore+fromRoot)
			continue
		}
		sum += prob * e.expectimax(next, depth-1, true, mover)
	}
	return sum
}
