package database

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ds124wfegd/tomato-gateway/config"
	"github.com/ds124wfegd/tomato-gateway/internal/entity"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const labelFieldPrefix = "label:"

type redisStatsRepository struct {
	client *redis.Client
	prefix string
}

func NewRedisClient(cfg *config.RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	logrus.Infof("Redis client configured for %s", cfg.Addr)
	return client
}

func NewRedisStatsRepository(client *redis.Client, prefix string) StatsRepository {
	return &redisStatsRepository{client: client, prefix: prefix}
}

func (r *redisStatsRepository) key(kind entity.Kind) string {
	return r.prefix + ":stats:" + string(kind)
}

func (r *redisStatsRepository) Increment(ctx context.Context, ev *entity.ClassificationEvent) error {
	if !ev.Kind.Valid() {
		return fmt.Errorf("increment stats: %w: %q", entity.ErrUnknownKind, ev.Kind)
	}

	source := string(entity.SourceRemote)
	if ev.Source == entity.SourceSimulated {
		source = string(entity.SourceSimulated)
	}

	key := r.key(ev.Kind)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, key, "total", 1)
		pipe.HIncrBy(ctx, key, source, 1)
		pipe.HIncrBy(ctx, key, labelFieldPrefix+ev.Label, 1)
		return nil
	})
	return err
}

func (r *redisStatsRepository) Snapshot(ctx context.Context) (*entity.Stats, error) {
	out := emptyStats()

	for _, kind := range []entity.Kind{entity.KindDisease, entity.KindQuality} {
		fields, err := r.client.HGetAll(ctx, r.key(kind)).Result()
		if err != nil {
			return nil, fmt.Errorf("read %s stats: %w", kind, err)
		}
		fillKindStats(kindStats(out, kind), fields)
	}
	return out, nil
}

func fillKindStats(ks *entity.KindStats, fields map[string]string) {
	for field, raw := range fields {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		switch {
		case field == "total":
			ks.Total = n
		case field == string(entity.SourceRemote):
			ks.Remote = n
		case field == string(entity.SourceSimulated):
			ks.Simulated = n
		case strings.HasPrefix(field, labelFieldPrefix):
			ks.Labels[strings.TrimPrefix(field, labelFieldPrefix)] = n
		}
	}
}

func (r *redisStatsRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *redisStatsRepository) Name() string {
	return "redis"
}
