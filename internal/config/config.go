package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/iamasit07/connect4-engine/internal/engine"
)

type Config struct {
	Port           string
	AllowedOrigins []string
	JWTSecret      string
	TokenTTL       time.Duration

	DatabaseURL          string
	DBMaxOpenConns       int
	DBMaxIdleConns       int
	DBConnMaxLifetimeMin int

	RedisURL      string
	RedisPassword string

	KafkaBrokers string
	KafkaTopic   string

	SessionTTL           time.Duration
	HistoryRetentionDays int

	Engine engine.Config
}

var AppConfig *Config

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")

	// Build allowed origins list (localhost + CSV values)
	allowedOrigins := []string{
		"http://localhost:5173", // Local development
	}
	if extras := GetEnv("ALLOWED_ORIGINS", ""); extras != "" {
		for _, origin := range strings.Split(extras, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	engineCfg := engine.DefaultConfig()
	engineCfg.Depth = GetEnvAsInt("ENGINE_DEPTH", engine.DefaultDepth)
	engineCfg.Strategy = engine.Strategy(GetEnv("ENGINE_STRATEGY", string(engine.StrategyMinimax)))
	engineCfg.TieBreak = engine.TieBreak(GetEnv("ENGINE_TIEBREAK", string(engine.TieBreakFirst)))

	AppConfig = &Config{
		Port:           port,
		AllowedOrigins: allowedOrigins,
		JWTSecret:      GetEnv("JWT_SECRET", "your-secret-key-change-this-in-production"),
		TokenTTL:       time.Duration(GetEnvAsInt("TOKEN_TTL_MINUTES", 24*60)) * time.Minute,

		DatabaseURL:          GetEnv("DATABASE_URL", ""),
		DBMaxOpenConns:       GetEnvAsInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:       GetEnvAsInt("DB_MAX_IDLE_CONNS", 25),
		DBConnMaxLifetimeMin: GetEnvAsInt("DB_CONN_MAX_LIFETIME_MINUTES", 5),

		RedisURL:      GetEnv("REDIS_URL", "localhost:6379"),
		RedisPassword: GetEnv("REDIS_PASSWORD", ""),

		KafkaBrokers: GetEnv("KAFKA_BROKERS", ""),
		KafkaTopic:   GetEnv("KAFKA_TOPIC", "engine-moves"),

		SessionTTL:           time.Duration(GetEnvAsInt("SESSION_TTL_MINUTES", 60)) * time.Minute,
		HistoryRetentionDays: GetEnvAsInt("HISTORY_RETENTION_DAYS", 30),

		Engine: engineCfg,
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
