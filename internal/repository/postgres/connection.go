package postgres

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS games (
	game_id          TEXT PRIMARY KEY,
	strategy         TEXT NOT NULL,
	depth            INT NOT NULL,
	human_side       INT NOT NULL,
	winner_side      INT,
	reason           TEXT NOT NULL,
	total_moves      INT NOT NULL,
	duration_seconds INT NOT NULL,
	created_at       TIMESTAMPTZ NOT NULL,
	finished_at      TIMESTAMPTZ NOT NULL,
	board_state      JSONB
);

CREATE INDEX IF NOT EXISTS idx_games_finished_at ON games (finished_at DESC);
`

// InitDB opens the connection pool and bootstraps the schema.
func InitDB(connStr string, maxOpenConns, maxIdleConns, connMaxLifetimeMin int) (*sql.DB, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to initialize database schema: %v", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(time.Duration(connMaxLifetimeMin) * time.Minute)

	log.Println("Database connected successfully")
	return db, nil
}
