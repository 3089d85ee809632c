package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

type GameRepo struct {
	DB *sql.DB
}

func NewGameRepo(db *sql.DB) *GameRepo {
	return &GameRepo{DB: db}
}

// GameResult is a finished game as stored in the database.
type GameResult struct {
	GameID          string
	Strategy        string
	Depth           int
	HumanSide       int
	WinnerSide      *int
	Reason          string
	TotalMoves      int
	DurationSeconds int
	CreatedAt       time.Time
	FinishedAt      time.Time
	BoardState      [][]int
}

// SaveGame upserts a finished game. The UPSERT covers the case where a
// session is flushed twice (e.g. worker race at shutdown).
func (r *GameRepo) SaveGame(result GameResult) error {
	boardJSON, err := json.Marshal(result.BoardState)
	if err != nil {
		return fmt.Errorf("failed to marshal board state: %v", err)
	}

	query := `
	INSERT INTO games (game_id, strategy, depth, human_side, winner_side, reason, total_moves, duration_seconds, created_at, finished_at, board_state)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (game_id) DO UPDATE SET
		winner_side = EXCLUDED.winner_side,
		reason = EXCLUDED.reason,
		total_moves = EXCLUDED.total_moves,
		duration_seconds = EXCLUDED.duration_seconds,
		finished_at = EXCLUDED.finished_at,
		board_state = EXCLUDED.board_state;
	`

	_, err = r.DB.Exec(query,
		result.GameID, result.Strategy, result.Depth, result.HumanSide,
		result.WinnerSide, result.Reason, result.TotalMoves,
		result.DurationSeconds, result.CreatedAt, result.FinishedAt, boardJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert game record: %v", err)
	}
	return nil
}

// GetGameByID retrieves one finished game, or nil when unknown.
func (r *GameRepo) GetGameByID(gameID string) (*GameResult, error) {
	query := `
	SELECT game_id, strategy, depth, human_side, winner_side, reason,
	       total_moves, duration_seconds, created_at, finished_at, board_state
	FROM games
	WHERE game_id = $1;
	`

	var result GameResult
	var winnerSide sql.NullInt64
	var boardJSON []byte

	err := r.DB.QueryRow(query, gameID).Scan(
		&result.GameID,
		&result.Strategy,
		&result.Depth,
		&result.HumanSide,
		&winnerSide,
		&result.Reason,
		&result.TotalMoves,
		&result.DurationSeconds,
		&result.CreatedAt,
		&result.FinishedAt,
		&boardJSON,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game by ID: %v", err)
	}

	if winnerSide.Valid {
		side := int(winnerSide.Int64)
		result.WinnerSide = &side
	}
	if len(boardJSON) > 0 {
		if err := json.Unmarshal(boardJSON, &result.BoardState); err != nil {
			return nil, fmt.Errorf("failed to unmarshal board state: %v", err)
		}
	}

	return &result, nil
}

// ListRecent returns the most recent finished games, newest first.
func (r *GameRepo) ListRecent(limit int) ([]GameResult, error) {
	query := `
	SELECT game_id, strategy, depth, human_side, winner_side, reason,
	       total_moves, duration_seconds, created_at, finished_at
	FROM games
	ORDER BY finished_at DESC
	LIMIT $1;
	`

	rows, err := r.DB.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query game history: %v", err)
	}
	defer rows.Close()

	var games []GameResult
	for rows.Next() {
		var result GameResult
		var winnerSide sql.NullInt64

		err := rows.Scan(
			&result.GameID,
			&result.Strategy,
			&result.Depth,
			&result.HumanSide,
			&winnerSide,
			&result.Reason,
			&result.TotalMoves,
			&result.DurationSeconds,
			&result.CreatedAt,
			&result.FinishedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game row: %v", err)
		}
		if winnerSide.Valid {
			side := int(winnerSide.Int64)
			result.WinnerSide = &side
		}
		games = append(games, result)
	}
	return games, rows.Err()
}

// CleanupOldGames deletes games finished more than daysToKeep days ago and
// returns how many were removed.
func (r *GameRepo) CleanupOldGames(daysToKeep int) (int64, error) {
	query := `DELETE FROM games WHERE finished_at < NOW() - ($1 || ' days')::interval;`
	res, err := r.DB.Exec(query, daysToKeep)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old games: %v", err)
	}
	return res.RowsAffected()
}
