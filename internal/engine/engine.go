package engine

import (
	"math/rand"
	"sync"
	"time"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

// Strategy selects how the engine searches for a move.
type Strategy string

const (
	// StrategyMinimax is depth-bounded minimax with alpha-beta pruning,
	// assuming a perfect adversary.
	StrategyMinimax Strategy = "minimax"
	// StrategyExpectimax replaces the adversary's ply with a uniform
	// expectation over all legal replies.
	StrategyExpectimax Strategy = "expectimax"
	// StrategyRandom picks a uniformly random legal column.
	StrategyRandom Strategy = "random"
)

func (s Strategy) Valid() bool {
	return s == StrategyMinimax || s == StrategyExpectimax || s == StrategyRandom
}

// TieBreak decides which column wins when several score equal at the root.
type TieBreak string

const (
	// TieBreakFirst keeps the first best column in ascending order. This is
	// the deterministic default; two calls on the same board return the same
	// column.
	TieBreakFirst TieBreak = "first"
	// TieBreakRandom rotates the root scan order by a random offset, so
	// equal scores resolve to a random column.
	TieBreakRandom TieBreak = "random"
)

const (
	// WinScore is the terminal sentinel. It must dominate any sum the window
	// heuristic can produce (69 windows x the largest weight) so a forced win
	// always beats a heuristic advantage.
	WinScore = 9999

	// DefaultDepth is the default ply bound. Node count grows as 7^depth, so
	// this is the main cost lever.
	DefaultDepth = 7
)

// Weights are the per-window scores of the static evaluator. Opponent weights
// are negative; note the asymmetry on threes: an opponent's open three is
// penalized harder than an own open three is rewarded, because the opponent's
// threat is the one that completes first.
type Weights struct {
	OwnFour  int
	OwnThree int
	OwnTwo   int
	OwnOne   int
	OppFour  int
	OppThree int
	OppTwo   int
	OppOne   int
}

func DefaultWeights() Weights {
	return Weights{
		OwnFour:  100,
		OwnThree: 69,
		OwnTwo:   30,
		OwnOne:   5,
		OppFour:  -95,
		OppThree: -80,
		OppTwo:   -30,
		OppOne:   -5,
	}
}

// Config carries every knob of the engine. Depth, weights and tie-break live
// here rather than in package constants so two engines with different
// settings can coexist in one process.
type Config struct {
	Strategy Strategy
	Depth    int
	TieBreak TieBreak
	Weights  Weights
	// Seed fixes the random source for TieBreakRandom and StrategyRandom.
	// Zero means seed from the clock.
	Seed int64
}

func DefaultConfig() Config {
	return Config{
		Strategy: StrategyMinimax,
		Depth:    DefaultDepth,
		TieBreak: TieBreakFirst,
		Weights:  DefaultWeights(),
	}
}

// Engine picks moves for one side of a Connect-4 game. It is stateless
// between calls: every decision searches from scratch, and the caller's board
// is never retained or modified.
type Engine struct {
	cfg Config

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

func New(cfg Config) *Engine {
	if cfg.Depth <= 0 {
		cfg.Depth = DefaultDepth
	}
	if !cfg.Strategy.Valid() {
		cfg.Strategy = StrategyMinimax
	}
	if cfg.TieBreak != TieBreakRandom {
		cfg.TieBreak = TieBreakFirst
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (e *Engine) Config() Config {
	return e.cfg
}

// ChooseMove returns the column the configured strategy picks for mover.
// It fails with domain.ErrNoLegalMoves on a full board.
func (e *Engine) ChooseMove(board domain.Board, mover domain.PlayerID) (int, error) {
	switch e.cfg.Strategy {
	case StrategyExpectimax:
		return e.ExpectimaxMove(board, mover)
	case StrategyRandom:
		return e.RandomMove(board)
	default:
		return e.AdversarialMove(board, mover)
	}
}

// moveOrder returns the root scan order. TieBreakFirst keeps the ascending
// order, so with the strict greater-than scan the left-most best column
// wins. TieBreakRandom rotates the order by a random offset: the scan still
// keeps the first of the equal-scored columns it meets, but which one comes
// first is now random.
func (e *Engine) moveOrder(moves []int) []int {
	if e.cfg.TieBreak != TieBreakRandom || len(moves) < 2 {
		return moves
	}
	offset := e.intn(len(moves))
	order := make([]int, 0, len(moves))
	order = append(order, moves[offset:]...)
	order = append(order, moves[:offset]...)
	return order
}

func (e *Engine) intn(n int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Intn(n)
}
