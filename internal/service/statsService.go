package service

import (
	"context"

	"github.com/ds124wfegd/tomato-gateway/internal/entity"
)

func (s *statsService) GetStats(ctx context.Context) (*entity.Stats, error) {
	return s.repo.Snapshot(ctx)
}
