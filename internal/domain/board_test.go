package domain

import "testing"

func TestValidMovesAscending(t *testing.T) {
	var b Board
	for r := 0; r < Rows; r++ {
		side := PlayerOne
		if r%2 == 0 {
			side = PlayerTwo
		}
		b[r][3] = side
	}

	moves := b.ValidMoves()
	want := []int{0, 1, 2, 4, 5, 6}
	if len(moves) != len(want) {
		t.Fatalf("expected %v, got %v", want, moves)
	}
	for i, col := range moves {
		if col != want[i] {
			t.Fatalf("expected %v, got %v", want, moves)
		}
		if i > 0 && moves[i-1] >= col {
			t.Fatalf("moves not ascending: %v", moves)
		}
	}
}

func TestLandingRowGravity(t *testing.T) {
	var b Board

	row, err := b.LandingRow(2)
	if err != nil || row != Rows-1 {
		t.Fatalf("expected floor row %d on empty column, got %d (%v)", Rows-1, row, err)
	}

	if _, err := b.Drop(2, PlayerOne); err != nil {
		t.Fatalf("drop failed: %v", err)
	}
	row, err = b.LandingRow(2)
	if err != nil || row != Rows-2 {
		t.Fatalf("expected row %d above first piece, got %d (%v)", Rows-2, row, err)
	}

	for i := 0; i < Rows-1; i++ {
		if _, err := b.Drop(2, PlayerTwo); err != nil {
			t.Fatalf("drop %d failed: %v", i, err)
		}
	}
	if _, err := b.LandingRow(2); err != ErrColumnFull {
		t.Fatalf("expected ErrColumnFull, got %v", err)
	}
	if b.IsValidMove(2) {
		t.Fatal("full column reported as valid move")
	}
}

func TestLiftUndoesDrop(t *testing.T) {
	var b Board
	b.Drop(4, PlayerOne)
	before := b

	if _, err := b.Drop(4, PlayerTwo); err != nil {
		t.Fatalf("drop failed: %v", err)
	}
	b.Lift(4)

	if b != before {
		t.Fatal("lift did not restore the prior board")
	}
}

func TestPlaceDoesNotMutateReceiver(t *testing.T) {
	var b Board
	b.Drop(0, PlayerOne)
	before := b

	next, row, err := b.Place(0, PlayerTwo)
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}
	if row != Rows-2 {
		t.Fatalf("expected landing row %d, got %d", Rows-2, row)
	}
	if b != before {
		t.Fatal("Place mutated the original board")
	}
	if next == before {
		t.Fatal("Place returned an unchanged board")
	}
}

func TestBoardFromGridRejectsBadShapes(t *testing.T) {
	if _, err := BoardFromGrid(make([][]int, Rows-1)); err == nil {
		t.Fatal("expected error for wrong row count")
	}

	grid := make([][]int, Rows)
	for r := range grid {
		grid[r] = make([]int, Columns)
	}
	grid[0][0] = 3
	if _, err := BoardFromGrid(grid); err == nil {
		t.Fatal("expected error for out-of-range cell value")
	}
}
