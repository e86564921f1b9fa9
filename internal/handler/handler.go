package handler

import (
	"time"

	"github.com/ahosmi/content-dashboard/internal/openai"
	"github.com/ahosmi/content-dashboard/internal/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	Logger        *zap.Logger
	Repo          *repository.Repository
	JwtSecret     string
	JwtTTL        time.Duration
	OpenAI        *openai.Client
	Redis         *redis.Client
	SuggestionTTL time.Duration
}
