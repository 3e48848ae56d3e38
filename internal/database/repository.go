package database

import (
	"context"

	"github.com/ds124wfegd/tomato-gateway/internal/entity"
)

// StatsRepository counts classifications per kind, source and label.
type StatsRepository interface {
	Increment(ctx context.Context, ev *entity.ClassificationEvent) error
	Snapshot(ctx context.Context) (*entity.Stats, error)
	Ping(ctx context.Context) error
	Name() string
}

func emptyStats() *entity.Stats {
	return &entity.Stats{
		Disease: entity.KindStats{Labels: map[string]int64{}},
		Quality: entity.KindStats{Labels: map[string]int64{}},
	}
}

func kindStats(s *entity.Stats, kind entity.Kind) *entity.KindStats {
	if kind == entity.KindQuality {
		return &s.Quality
	}
	return &s.Disease
}
