package engine

import (
	"math"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

// AdversarialMove picks a column for mover using minimax with alpha-beta
// pruning, assuming the opponent plays the minimizing reply every ply.
func (e *Engine) AdversarialMove(board domain.Board, mover domain.PlayerID) (int, error) {
	moves := board.ValidMoves()
	if len(moves) == 0 {
		return -1, domain.ErrNoLegalMoves
	}

	order := e.moveOrder(moves)
	bestCol := order[0]
	bestScore := math.MinInt32
	alpha := math.MinInt32
	beta := math.MaxInt32

	for _, col := range order {
		next, row, _ := board.Place(col, mover)

		// A move that completes four in a row needs no search.
		if next.WinAt(row, col, mover) {
			return col, nil
		}

		score := e.minimax(next, e.cfg.Depth-1, alpha, beta, false, mover)
		if score > bestScore {
			bestScore = score
			bestCol = col
		}
		if bestScore > alpha {
			alpha = bestScore
		}
	}

	return bestCol, nil
}

// minimax returns the value of board for mover with depth plies of search
// left. isMaximizing tells whose ply it is. Wins discovered at move time
// short-circuit with the sentinel, adjusted by distance from the root so the
// engine prefers quicker wins and later losses.
func (e *Engine) minimax(board domain.Board, depth, alpha, beta int, isMaximizing bool, mover domain.PlayerID) int {
	moves := board.ValidMoves()
	if depth == 0 || len(moves) == 0 {
		return e.Evaluate(board, mover)
	}

	fromRoot := e.cfg.Depth - depth

	if isMaximizing {
		maxEval := math.MinInt32
		for _, col := range moves {
			next, row, _ := board.Place(col, mover)
			if next.WinAt(row, col, mover) {
				return WinScore - fromRoot
			}

			eval := e.minimax(next, depth-1, alpha, beta, false, mover)
			if eval > maxEval {
				maxEval = eval
			}
			if eval > alpha {
				alpha = eval
			}
			if beta <= alpha {
				break
			}
		}
		return maxEval
	}

	opponent := mover.Opponent()
	minEval := math.MaxInt32
	for _, col := range moves {
		next, row, _ := board.Place(col, opponent)
		if next.WinAt(row, col, opponent) {
			return -WinScore + fromRoot
		}

		eval := e.minimax(next, depth-1, alpha, beta, true, mover)
		if eval < minEval {
			minEval = eval
		}
		if eval < beta {
			beta = eval
		}
		if beta <= alpha {
			break
		}
	}
	return minEval
}
