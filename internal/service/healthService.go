package service

import (
	"context"

	"github.com/ds124wfegd/tomato-gateway/internal/classifier"
	"golang.org/x/sync/errgroup"
)

type HealthReport struct {
	Status          string                  `json:"status"`
	Classifier      classifier.HealthStatus `json:"classifier"`
	ClassifierError string                  `json:"classifier_error,omitempty"`
	Stats           string                  `json:"stats"`
	StatsOK         bool                    `json:"stats_ok"`
	StatsError      string                  `json:"stats_error,omitempty"`
	Events          string                  `json:"events"`
	EventsOK        bool                    `json:"events_ok"`
	EventsError     string                  `json:"events_error,omitempty"`
}

// Check runs all backend probes concurrently. A dead classifier keeps status "ok" since
// results are simulated; a failing stats backend or event sink makes it "degraded".
func (s *healthService) Check(ctx context.Context) *HealthReport {
	report := &HealthReport{
		Stats:  s.stats.Name(),
		Events: s.eventsDriver,
	}

	var g errgroup.Group

	g.Go(func() error {
		status, err := s.classifier.CheckHealth(ctx)
		report.Classifier = status
		if err != nil {
			report.ClassifierError = err.Error()
		}
		return nil
	})

	g.Go(func() error {
		if err := s.stats.Ping(ctx); err != nil {
			report.StatsError = err.Error()
			return nil
		}
		report.StatsOK = true
		return nil
	})

	g.Go(func() error {
		if err := s.events.HealthCheck(ctx); err != nil {
			report.EventsError = err.Error()
			return nil
		}
		report.EventsOK = true
		return nil
	})

	_ = g.Wait()

	report.Status = "ok"
	if !report.StatsOK || !report.EventsOK {
		report.Status = "degraded"
	}
	return report
}
