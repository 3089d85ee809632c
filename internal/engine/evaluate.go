package engine

import (
	"github.com/iamasit07/connect4-engine/internal/domain"
)

// Evaluate scores the position for player by summing the window weights over
// every 4-cell line on the board. On a 6x7 grid that is exactly 69 windows:
// 24 horizontal, 21 vertical and 24 diagonal. The function is pure and knows
// nothing about terminal states; win sentinels are the search layer's job.
func (e *Engine) Evaluate(board domain.Board, player domain.PlayerID) int {
	opponent := player.Opponent()
	w := e.cfg.Weights
	score := 0

	// horizontal
	for r := 0; r < domain.Rows; r++ {
		for c := 0; c <= domain.Columns-domain.ToWin; c++ {
			score += w.scoreWindow(
				board[r][c], board[r][c+1], board[r][c+2], board[r][c+3],
				player, opponent,
			)
		}
	}

	// vertical
	for c := 0; c < domain.Columns; c++ {
		for r := 0; r <= domain.Rows-domain.ToWin; r++ {
			score += w.scoreWindow(
				board[r][c], board[r+1][c], board[r+2][c], board[r+3][c],
				player, opponent,
			)
		}
	}

	// diagonal, down-right
	for r := 0; r <= domain.Rows-domain.ToWin; r++ {
		for c := 0; c <= domain.Columns-domain.ToWin; c++ {
			score += w.scoreWindow(
				board[r][c], board[r+1][c+1], board[r+2][c+2], board[r+3][c+3],
				player, opponent,
			)
		}
	}

	// diagonal, up-right
	for r := domain.ToWin - 1; r < domain.Rows; r++ {
		for c := 0; c <= domain.Columns-domain.ToWin; c++ {
			score += w.scoreWindow(
				board[r][c], board[r-1][c+1], board[r-2][c+2], board[r-3][c+3],
				player, opponent,
			)
		}
	}

	return score
}

// scoreWindow scores a single 4-cell window. A window holding pieces of both
// players is dead and contributes nothing.
func (w Weights) scoreWindow(a, b, c, d, player, opponent domain.PlayerID) int {
	own, opp := 0, 0
	for _, cell := range [4]domain.PlayerID{a, b, c, d} {
		switch cell {
		case player:
			own++
		case opponent:
			opp++
		}
	}

	if own > 0 && opp > 0 {
		return 0
	}

	switch own {
	case 4:
		return w.OwnFour
	case 3:
		return w.OwnThree
	case 2:
		return w.OwnTwo
	case 1:
		return w.OwnOne
	}

	switch opp {
	case 4:
		return w.OppFour
	case 3:
		return w.OppThree
	case 2:
		return w.OppTwo
	case 1:
		return w.OppOne
	}

	return 0
}
