package service

import (
	"context"

	"github.com/ds124wfegd/tomato-gateway/internal/classifier"
	"github.com/ds124wfegd/tomato-gateway/internal/database"
	"github.com/ds124wfegd/tomato-gateway/internal/entity"
	"github.com/ds124wfegd/tomato-gateway/internal/simulation"
)

type ClassificationService interface {
	Classify(ctx context.Context, req *entity.ClassificationRequest) (*entity.ClassificationResult, error)
}

type StatsService interface {
	GetStats(ctx context.Context) (*entity.Stats, error)
}

type HealthService interface {
	Check(ctx context.Context) *HealthReport
}

// Forwarder sends an image to the remote classifier.
type Forwarder interface {
	Forward(ctx context.Context, kind entity.Kind, payload entity.ImagePayload) (*entity.ClassificationResult, error)
}

type Simulator interface {
	Simulate(kind entity.Kind, rng simulation.Rand) (*entity.ClassificationResult, error)
}

// EventRecorder accepts classification events without blocking the caller.
type EventRecorder interface {
	Enqueue(ev entity.ClassificationEvent)
}

type HealthChecker interface {
	CheckHealth(ctx context.Context) (classifier.HealthStatus, error)
}

type classificationService struct {
	forwarder Forwarder
	simulator Simulator
	rng       simulation.Rand
	recorder  EventRecorder
}

func NewClassificationService(forwarder Forwarder, simulator Simulator, rng simulation.Rand, recorder EventRecorder) ClassificationService {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &classificationService{
		forwarder: forwarder,
		simulator: simulator,
		rng:       rng,
		recorder:  recorder,
	}
}

type statsService struct {
	repo database.StatsRepository
}

func NewStatsService(repo database.StatsRepository) StatsService {
	return &statsService{repo: repo}
}

type healthService struct {
	classifier   HealthChecker
	stats        database.StatsRepository
	events       EventPublisher
	eventsDriver string
}

func NewHealthService(checker HealthChecker, stats database.StatsRepository, events EventPublisher, eventsDriver string) HealthService {
	return &healthService{
		classifier:   checker,
		stats:        stats,
		events:       events,
		eventsDriver: eventsDriver,
	}
}

type noopRecorder struct{}

func (noopRecorder) Enqueue(entity.ClassificationEvent) {}
