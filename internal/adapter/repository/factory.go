package adapter

import (
	"campus_security_backend/internal/config"
	"campus_security_backend/internal/core/port"
	"context"
	"fmt"
	"log"
)

// OpenStore connects to the configured document store backend.
// The caller owns the returned store and must Close it.
func OpenStore(ctx context.Context, cfg config.StoreConfig) (port.DocumentStore, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		return NewMongoStore(ctx, cfg.MongoURL, cfg.DBName)
	case config.DriverRedis:
		return NewRedisStore(ctx, cfg.RedisURL, cfg.DBName)
	case config.DriverMemory:
		log.Println("[Store] Using in-memory store, data is lost on exit")
		return NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
}
