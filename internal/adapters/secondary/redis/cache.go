package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"contractor-service/internal/config"
	"contractor-service/internal/core/domain"
	ports "contractor-service/internal/core/ports/output"
)

type statsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache connects to Redis and returns the dashboard cache
// adapter. The caller decides whether to wire it at all (cfg.Enabled).
func NewStatsCache(cfg *config.RedisConfig) (ports.StatsCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &statsCache{client: client, ttl: ttl}, nil
}

func dashboardKey(contractorID uuid.UUID) string {
	return "dashboard:" + contractorID.String()
}

func (c *statsCache) GetDashboard(ctx context.Context, contractorID uuid.UUID) (*domain.DashboardStats, error) {
	raw, err := c.client.Get(ctx, dashboardKey(contractorID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get dashboard cache: %w", err)
	}

	stats := &domain.DashboardStats{}
	if err := json.Unmarshal(raw, stats); err != nil {
		return nil, fmt.Errorf("decode dashboard cache: %w", err)
	}
	return stats, nil
}

func (c *statsCache) SetDashboard(ctx context.Context, contractorID uuid.UUID, stats *domain.DashboardStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("encode dashboard cache: %w", err)
	}
	if err := c.client.Set(ctx, dashboardKey(contractorID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("set dashboard cache: %w", err)
	}
	return nil
}
