package database

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/ds124wfegd/tomato-gateway/internal/entity"
)

type memoryStatsRepository struct {
	mu    sync.RWMutex
	stats *entity.Stats
}

func NewMemoryStatsRepository() StatsRepository {
	return &memoryStatsRepository{stats: emptyStats()}
}

func (r *memoryStatsRepository) Increment(_ context.Context, ev *entity.ClassificationEvent) error {
	if !ev.Kind.Valid() {
		return fmt.Errorf("increment stats: %w: %q", entity.ErrUnknownKind, ev.Kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ks := kindStats(r.stats, ev.Kind)
	ks.Total++
	if ev.Source == entity.SourceSimulated {
		ks.Simulated++
	} else {
		ks.Remote++
	}
	ks.Labels[ev.Label]++
	return nil
}

func (r *memoryStatsRepository) Snapshot(_ context.Context) (*entity.Stats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := *r.stats
	out.Disease.Labels = maps.Clone(r.stats.Disease.Labels)
	out.Quality.Labels = maps.Clone(r.stats.Quality.Labels)
	return &out, nil
}

func (r *memoryStatsRepository) Ping(context.Context) error {
	return nil
}

func (r *memoryStatsRepository) Name() string {
	return "memory"
}
