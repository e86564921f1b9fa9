package main

import (
	"context"

	"github.com/ahosmi/content-dashboard/internal/cache"
	"github.com/ahosmi/content-dashboard/internal/config"
	"github.com/ahosmi/content-dashboard/internal/database"
	"github.com/ahosmi/content-dashboard/internal/handler"
	"github.com/ahosmi/content-dashboard/internal/logger"
	"github.com/ahosmi/content-dashboard/internal/openai"
	"github.com/ahosmi/content-dashboard/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

type application struct {
	DB         *pgxpool.Pool
	Logger     *zap.Logger
	Config     *config.Config
	Repository *repository.Repository
	Handler    *handler.Handler
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s", cfg.Env)

	pool, err := database.Connect(ctx, cfg.DB.DSN, cfg.DB.MaxConns, cfg.DB.MaxConnLifetime)
	if err != nil {
		sugar.Fatal(err)
	}
	defer pool.Close()

	redisClient := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := cache.Ping(ctx, redisClient); err != nil {
		// the API works without the cache, every suggestion just hits the model
		sugar.Warnw("redis unreachable, suggestion caching disabled", "addr", cfg.Redis.Addr, "err", err)
		redisClient = nil
	}

	openaiClient := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.BaseURL, cfg.OpenAI.Timeout)

	repo := repository.NewRepository(pool)

	h := &handler.Handler{
		Logger:        log,
		Repo:          repo,
		JwtSecret:     cfg.JWT.Secret,
		JwtTTL:        cfg.JWT.TokenTTL,
		OpenAI:        openaiClient,
		Redis:         redisClient,
		SuggestionTTL: cfg.Redis.SuggestionTTL,
	}

	app := &application{
		DB:         pool,
		Logger:     log,
		Config:     cfg,
		Repository: repo,
		Handler:    h,
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
