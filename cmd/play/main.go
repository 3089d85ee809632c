// Command play runs a Connect-4 game in the terminal. Each side can be a
// human, a random player, or one of the engine strategies:
//
//	play -p1 human -p2 minimax -depth 7
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/engine"
)

type player interface {
	name() string
	move(board domain.Board) int
}

type enginePlayer struct {
	side  domain.PlayerID
	label string
	eng   *engine.Engine
}

func (p *enginePlayer) name() string { return p.label }

func (p *enginePlayer) move(board domain.Board) int {
	col, err := p.eng.ChooseMove(board, p.side)
	if err != nil {
		log.Fatalf("%s has no legal moves", p.label)
	}
	return col
}

type humanPlayer struct {
	label string
	in    *bufio.Scanner
}

func (p *humanPlayer) name() string { return p.label }

func (p *humanPlayer) move(board domain.Board) int {
	valid := board.ValidMoves()
	for {
		fmt.Printf("Enter your move %v: ", valid)
		if !p.in.Scan() {
			log.Fatal("input closed")
		}
		col, err := strconv.Atoi(strings.TrimSpace(p.in.Text()))
		if err != nil || !board.IsValidMove(col) {
			fmt.Printf("Column full or out of range, choose from %v\n", valid)
			continue
		}
		return col
	}
}

func newPlayer(kind string, side domain.PlayerID, depth int, in *bufio.Scanner) player {
	label := fmt.Sprintf("Player %d:%s", side, kind)
	switch kind {
	case "human":
		return &humanPlayer{label: label, in: in}
	case "random", "minimax", "expectimax":
		cfg := engine.DefaultConfig()
		cfg.Strategy = engine.Strategy(kind)
		cfg.Depth = depth
		return &enginePlayer{side: side, label: label, eng: engine.New(cfg)}
	default:
		log.Fatalf("unknown player type %q (want human, random, minimax or expectimax)", kind)
		return nil
	}
}

func render(board domain.Board) {
	symbols := map[domain.PlayerID]string{domain.Empty: ".", domain.PlayerOne: "x", domain.PlayerTwo: "o"}
	fmt.Println()
	for r := 0; r < domain.Rows; r++ {
		for c := 0; c < domain.Columns; c++ {
			fmt.Printf(" %s", symbols[board.Cell(r, c)])
		}
		fmt.Println()
	}
	for c := 0; c < domain.Columns; c++ {
		fmt.Printf(" %d", c)
	}
	fmt.Println()
	fmt.Println()
}

func main() {
	p1Kind := flag.String("p1", "human", "player one: human, random, minimax or expectimax")
	p2Kind := flag.String("p2", "minimax", "player two: human, random, minimax or expectimax")
	depth := flag.Int("depth", engine.DefaultDepth, "engine search depth in plies")
	flag.Parse()

	in := bufio.NewScanner(os.Stdin)
	players := map[domain.PlayerID]player{
		domain.PlayerOne: newPlayer(*p1Kind, domain.PlayerOne, *depth, in),
		domain.PlayerTwo: newPlayer(*p2Kind, domain.PlayerTwo, *depth, in),
	}

	var board domain.Board
	side := domain.PlayerOne

	for {
		render(board)

		p := players[side]
		fmt.Printf("%s to move\n", p.name())
		col := p.move(board)
		row, err := board.Drop(col, side)
		if err != nil {
			log.Fatalf("%s played illegal column %d: %v", p.name(), col, err)
		}
		fmt.Printf("%s drops in column %d\n", p.name(), col)

		if board.WinAt(row, col, side) {
			render(board)
			fmt.Printf("%s wins!\n", p.name())
			return
		}
		if board.IsFull() {
			render(board)
			fmt.Println("Draw.")
			return
		}

		side = side.Opponent()
	}
}
