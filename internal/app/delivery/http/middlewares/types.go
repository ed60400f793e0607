package middlewares

import (
	"hospicare-service/internal/app/config"
	"hospicare-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log             *zap.Logger
	InternalConfig  *config.InternalConfig
	RedisRepository contracts.RedisRepository
}

func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig, redisRepository contracts.RedisRepository) *Middlewares {
	return &Middlewares{
		Log:             logger,
		InternalConfig:  internalConfig,
		RedisRepository: redisRepository,
	}
}
