package main

import (
	"log"

	"github.com/ecosnap/ecosnap-backend/internal/ai"
	"github.com/ecosnap/ecosnap-backend/internal/config"
	"github.com/ecosnap/ecosnap-backend/internal/db"
	"github.com/ecosnap/ecosnap-backend/internal/logger"
	"github.com/ecosnap/ecosnap-backend/internal/model"
	"github.com/ecosnap/ecosnap-backend/internal/repository"
	"github.com/ecosnap/ecosnap-backend/internal/server"
	"github.com/ecosnap/ecosnap-backend/internal/service"
	"github.com/ecosnap/ecosnap-backend/internal/token"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatalf("logger init error: %v", err)
	}

	var (
		users    repository.UserRepository
		sessions repository.SessionRepository
		ledger   repository.LedgerRepository
	)
	if cfg.DBHost != "" {
		conn, err := db.Connect(cfg)
		if err != nil {
			logger.Log.Fatalw("db connect failed", "err", err)
		}
		if err := conn.AutoMigrate(&model.User{}, &model.Tree{}, &model.CategoryCount{}, &model.Session{}, &model.UploadHash{}); err != nil {
			logger.Log.Fatalw("auto migrate failed", "err", err)
		}
		users = repository.NewUserRepository(conn)
		sessions = repository.NewSessionRepository(conn)
		ledger = repository.NewLedgerRepository(conn, cfg.UploadHashCap)
	} else {
		logger.Log.Warnw("DB_HOST not set, using in-memory store")
		users = repository.NewMemoryUserRepository()
		sessions = repository.NewMemorySessionRepository()
		ledger = repository.NewMemoryLedgerRepository(cfg.UploadHashCap)
	}

	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		ledger = repository.NewRedisLedgerRepository(client, cfg.UploadHashCap)
		logger.Log.Infow("using redis upload-hash ledger", "addr", cfg.RedisAddr)
	}

	srv := server.New(server.Deps{
		Users:    users,
		Sessions: sessions,
		Ledger:   ledger,
		Analyzer: ai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel),
		JWT:      token.New(cfg.JWTSecret, cfg.JWTExp),
		Growth:   service.NewGrowthScheduler(cfg.GrowthDelay),
	})

	addr := ":" + cfg.Port
	logger.Log.Infow("starting server", "addr", addr)
	if err := srv.Start(addr); err != nil {
		logger.Log.Fatalw("server stopped", "err", err)
	}
}
