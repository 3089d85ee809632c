package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-engine/internal/analytics"
	"github.com/iamasit07/connect4-engine/internal/config"
	"github.com/iamasit07/connect4-engine/internal/repository/postgres"
	redisrepo "github.com/iamasit07/connect4-engine/internal/repository/redis"
	"github.com/iamasit07/connect4-engine/internal/service/cleanup"
	"github.com/iamasit07/connect4-engine/internal/service/game"
	transportHttp "github.com/iamasit07/connect4-engine/internal/transport/http"
	"github.com/iamasit07/connect4-engine/internal/transport/http/middleware"
	"github.com/iamasit07/connect4-engine/internal/transport/websocket"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}

	cfg := config.LoadConfig()

	// Persistence is optional: without DATABASE_URL the server runs
	// memory-only and history endpoints report unavailable.
	var gameRepo *postgres.GameRepo
	if cfg.DatabaseURL != "" {
		db, err := postgres.InitDB(cfg.DatabaseURL, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBConnMaxLifetimeMin)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		defer db.Close()
		gameRepo = postgres.NewGameRepo(db)
	} else {
		log.Println("DATABASE_URL not set, running without persistence")
	}

	if err := redisrepo.InitRedis(cfg.RedisURL, cfg.RedisPassword); err != nil {
		log.Printf("Failed to initialize Redis: %v", err)
	}
	defer redisrepo.CloseRedis()

	var cache *redisrepo.Cache
	if redisrepo.IsRedisEnabled() && redisrepo.RedisClient != nil {
		cache = redisrepo.NewCache(redisrepo.RedisClient)
	}

	producer := analytics.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer producer.Close()

	manager := game.NewManager(cfg.Engine, gameRepo, cache, producer, cfg.SessionTTL)

	cleanupWorker := cleanup.NewWorker(manager, gameRepo, cfg.HistoryRetentionDays)
	cleanupWorker.Start()

	gameHandler := transportHttp.NewGameHandler(manager, cfg.JWTSecret, cfg.TokenTTL)
	historyHandler := transportHttp.NewHistoryHandler(gameRepo)
	leaderboardHandler := transportHttp.NewLeaderboardHandler(cache)
	wsHandler := websocket.NewHandler(manager, cfg.JWTSecret)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.CORSMiddleware())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "liveGames": manager.LiveCount()})
	})

	router.POST("/api/games", gameHandler.CreateGame)
	router.POST("/api/games/:id/moves", gameHandler.PlayMove)
	router.GET("/api/games/:id", gameHandler.GetGame)

	router.GET("/api/history", historyHandler.GetHistory)
	router.GET("/api/history/:id", historyHandler.GetGameDetails)
	router.GET("/api/leaderboard", leaderboardHandler.GetLeaderboard)

	router.GET("/ws", wsHandler.HandleWebSocket)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
