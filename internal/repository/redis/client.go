package redis

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client
var redisEnabled bool

// InitRedis initializes the Redis connection. Redis is optional: when it is
// unreachable the server keeps running without the cache and leaderboard.
func InitRedis(addr, password string) error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx := context.Background()
	if err := RedisClient.Ping(ctx).Err(); err != nil {
		log.Printf("[REDIS] Warning: Could not connect to Redis: %v. Running without cache.", err)
		redisEnabled = false
		return nil
	}

	redisEnabled = true
	log.Println("[REDIS] Connected successfully")
	return nil
}

// IsRedisEnabled returns whether Redis is available
func IsRedisEnabled() bool {
	return redisEnabled
}

// CloseRedis closes the Redis connection
func CloseRedis() error {
	if RedisClient != nil {
		return RedisClient.Close()
	}
	return nil
}

const leaderboardKey = "engine:leaderboard"

// Cache wraps redis.Client with the two things the game service needs: a
// session-state mirror and the per-strategy outcome leaderboard. A nil Cache
// is a valid no-op.
type Cache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// SetSession mirrors a session state blob with a TTL.
func (c *Cache) SetSession(ctx context.Context, gameID string, state []byte, ttl time.Duration) error {
	if c == nil {
		return nil
	}
	return c.client.Set(ctx, "session:"+gameID, state, ttl).Err()
}

// GetSession retrieves a mirrored session state blob.
func (c *Cache) GetSession(ctx context.Context, gameID string) (string, error) {
	if c == nil {
		return "", redis.Nil
	}
	return c.client.Get(ctx, "session:"+gameID).Result()
}

// DelSession drops a mirrored session.
func (c *Cache) DelSession(ctx context.Context, gameID string) error {
	if c == nil {
		return nil
	}
	return c.client.Del(ctx, "session:"+gameID).Err()
}

// RecordOutcome bumps the leaderboard counter for a strategy, e.g.
// "minimax:won" or "expectimax:lost".
func (c *Cache) RecordOutcome(ctx context.Context, strategy, outcome string) error {
	if c == nil {
		return nil
	}
	return c.client.ZIncrBy(ctx, leaderboardKey, 1, strategy+":"+outcome).Err()
}

// Leaderboard returns outcome counters, highest first.
func (c *Cache) Leaderboard(ctx context.Context) (map[string]int64, error) {
	if c == nil {
		return map[string]int64{}, nil
	}
	entries, err := c.client.ZRevRangeWithScores(ctx, leaderboardKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	board := make(map[string]int64, len(entries))
	for _, z := range entries {
		if member, ok := z.Member.(string); ok {
			board[member] = int64(z.Score)
		}
	}
	return board, nil
}
