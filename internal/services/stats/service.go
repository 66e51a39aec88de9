package stats

import (
	"context"
	"fmt"
	"strconv"

	"github.com/imagify-art/imagify-backend/internal/config"
	"github.com/imagify-art/imagify-backend/internal/models"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	requestsKey = "imagify:stats:requests"
	imagesKey   = "imagify:stats:images"
	modelsKey   = "imagify:stats:models"
)

// Service keeps operational counters in Redis: how many generation
// requests were served and how many image URLs were issued. Prompts and
// generated URLs are never stored. With no Redis address configured the
// service is a no-op.
type Service struct {
	client *redis.Client
	logger *zap.Logger
}

func NewService(cfg config.RedisConfig, logger *zap.Logger) *Service {
	if cfg.Addr == "" {
		return &Service{logger: logger}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &Service{client: client, logger: logger}
}

func (s *Service) Enabled() bool {
	return s != nil && s.client != nil
}

// RecordGeneration bumps the counters after a successful generation.
// Failures are logged and never surfaced to the caller.
func (s *Service) RecordGeneration(ctx context.Context, model string, images int) {
	if !s.Enabled() {
		return
	}

	pipe := s.client.Pipeline()
	pipe.Incr(ctx, requestsKey)
	pipe.IncrBy(ctx, imagesKey, int64(images))
	pipe.HIncrBy(ctx, modelsKey, model, 1)
	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Warn("failed to record usage stats", zap.Error(err))
	}
}

// Snapshot reads the current counters. A disabled or unreachable Redis
// yields zero counters with the cache state reported in the payload.
func (s *Service) Snapshot(ctx context.Context) (*models.UsageStats, error) {
	snapshot := &models.UsageStats{
		ByModel: map[string]int64{},
		Cache:   "not configured",
	}
	if !s.Enabled() {
		return snapshot, nil
	}

	if err := s.client.Ping(ctx).Err(); err != nil {
		snapshot.Cache = "unhealthy: " + err.Error()
		return snapshot, nil
	}
	snapshot.Cache = "healthy"

	requests, err := s.client.Get(ctx, requestsKey).Int64()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("stats get error: %w", err)
	}
	snapshot.Requests = requests

	images, err := s.client.Get(ctx, imagesKey).Int64()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("stats get error: %w", err)
	}
	snapshot.Images = images

	byModel, err := s.client.HGetAll(ctx, modelsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("stats get error: %w", err)
	}
	for name, raw := range byModel {
		if count, parseErr := strconv.ParseInt(raw, 10, 64); parseErr == nil {
			snapshot.ByModel[name] = count
		}
	}

	return snapshot, nil
}
