package cache

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/goldworks/terminal/internal/domain/shared"
	"github.com/goldworks/terminal/internal/infrastructure/config"
)

// NewIdempotencyStore builds the configured idempotency store. The
// redis store falls back to memory when Redis is unreachable, with a
// warning, since a lost idempotency key only risks a duplicate submit
// that the operator can void at the back office.
func NewIdempotencyStore(cfg *config.Config, logger *zap.Logger) (shared.IdempotencyStore, error) {
	switch cfg.Idempotency.Store {
	case "memory":
		return NewMemoryIdempotencyStore(), nil
	case "redis":
		store, err := NewRedisIdempotencyStore(cfg.Redis)
		if err != nil {
			logger.Warn("Redis unavailable, falling back to in-memory idempotency store",
				zap.Error(err))
			return NewMemoryIdempotencyStore(), nil
		}
		logger.Info("using Redis idempotency store")
		return store, nil
	default:
		return nil, fmt.Errorf("unknown idempotency store %q", cfg.Idempotency.Store)
	}
}
