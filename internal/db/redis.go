package db

import (
  "context"
  "fmt"
  "time"
  goredis "github.com/redis/go-redis/v9"
  "github.com/yungbote/rewire-backend/internal/logger"
  "github.com/yungbote/rewire-backend/internal/utils"
)

// NewRedisClient connects the shared redis client used for short-lived
// request-scoped state (two-step signup data).
func NewRedisClient(log *logger.Logger) (*goredis.Client, error) {
  serviceLog := log.With("service", "RedisClient")

  addr := utils.GetEnv("REDIS_ADDR", "localhost:6379", log)

  rdb := goredis.NewClient(&goredis.Options{
    Addr:        addr,
    DialTimeout: 5 * time.Second,
  })

  ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
  defer cancel()
  if err := rdb.Ping(ctx).Err(); err != nil {
    _ = rdb.Close()
    serviceLog.Error("Redis ping failed", "error", err)
    return nil, fmt.Errorf("redis ping: %w", err)
  }

  serviceLog.Info("Connected to Redis", "addr", addr)
  return rdb, nil
}
