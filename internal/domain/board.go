package domain

// Board is the fixed 6x7 grid. Row 0 is the top row and pieces fall toward
// row Rows-1, so board[0][c] being Empty is what makes column c playable.
// The zero value is an empty board. Because Board is a value type, a plain
// assignment copies the whole grid; the search layer relies on that to keep
// sibling branches from seeing each other's moves.
type Board [Rows][Columns]PlayerID

func (b Board) Cell(row, col int) PlayerID {
	return b[row][col]
}

func (b Board) IsValidMove(column int) bool {
	if column < 0 || column >= Columns {
		return false
	}
	return b[0][column] == Empty
}

// ValidMoves returns the playable columns in ascending order. The order is
// load-bearing: the engine breaks score ties by keeping the first column it
// scanned.
func (b Board) ValidMoves() []int {
	moves := []int{}
	for col := 0; col < Columns; col++ {
		if b[0][col] == Empty {
			moves = append(moves, col)
		}
	}
	return moves
}

// LandingRow scans from the floor upward and returns the row a piece dropped
// into column would land on.
func (b Board) LandingRow(column int) (int, error) {
	if column < 0 || column >= Columns {
		return -1, ErrInvalidMove
	}
	for row := Rows - 1; row >= 0; row-- {
		if b[row][column] == Empty {
			return row, nil
		}
	}
	return -1, ErrColumnFull
}

// Drop places a piece for player in column, mutating the board in place, and
// returns the landing row.
func (b *Board) Drop(column int, player PlayerID) (int, error) {
	row, err := b.LandingRow(column)
	if err != nil {
		return -1, err
	}
	b[row][column] = player
	return row, nil
}

// Lift removes the topmost piece of column, undoing a Drop. It is a no-op on
// an empty column.
func (b *Board) Lift(column int) {
	for row := 0; row < Rows; row++ {
		if b[row][column] != Empty {
			b[row][column] = Empty
			return
		}
	}
}

// Place simulates a drop without touching the receiver and returns the
// resulting board along with the landing row.
func (b Board) Place(column int, player PlayerID) (Board, int, error) {
	row, err := b.Drop(column, player)
	if err != nil {
		return b, -1, err
	}
	return b, row, nil
}

func (b Board) IsFull() bool {
	for col := 0; col < Columns; col++ {
		if b[0][col] == Empty {
			return false
		}
	}
	return true
}

// Grid converts the board to a row-major [][]int for JSON payloads and
// persistence.
func (b Board) Grid() [][]int {
	grid := make([][]int, Rows)
	for r := 0; r < Rows; r++ {
		grid[r] = make([]int, Columns)
		for c := 0; c < Columns; c++ {
			grid[r][c] = int(b[r][c])
		}
	}
	return grid
}

// BoardFromGrid builds a Board from a row-major grid of {0,1,2}.
func BoardFromGrid(grid [][]int) (Board, error) {
	var b Board
	if len(grid) != Rows {
		return b, ErrInvalidMove
	}
	for r := 0; r < Rows; r++ {
		if len(grid[r]) != Columns {
			return b, ErrInvalidMove
		}
		for c := 0; c < Columns; c++ {
			v := PlayerID(grid[r][c])
			if v != Empty && !v.Valid() {
				return b, ErrInvalidMove
			}
			b[r][c] = v
		}
	}
	return b, nil
}
