package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ds124wfegd/tomato-gateway/internal/entity"
	"github.com/sirupsen/logrus"
)

// Classify forwards the image once; when the classifier is unavailable the result is simulated.
func (s *classificationService) Classify(ctx context.Context, req *entity.ClassificationRequest) (*entity.ClassificationResult, error) {
	if !req.Kind.Valid() {
		return nil, fmt.Errorf("classify: %w: %q", entity.ErrUnknownKind, req.Kind)
	}

	start := time.Now()
	var reason string

	result, err := s.forwarder.Forward(ctx, req.Kind, req.Payload)
	if err == nil && result == nil {
		err = fmt.Errorf("%w: %w: empty result", entity.ErrRemoteUnavailable, entity.ErrMalformedResponse)
	}
	if err != nil {
		if !errors.Is(err, entity.ErrRemoteUnavailable) {
			return nil, err
		}
		reason = err.Error()

		logrus.WithFields(logrus.Fields{
			"request_id": req.ID,
			"kind":       req.Kind,
			"reason":     reason,
		}).Warn("Remote classifier unavailable, using simulation")

		result, err = s.simulator.Simulate(req.Kind, s.rng)
		if err != nil {
			return nil, fmt.Errorf("simulate %s: %w", req.Kind, err)
		}
	}

	s.recorder.Enqueue(entity.ClassificationEvent{
		RequestID:      req.ID,
		Kind:           req.Kind,
		Label:          result.Label(),
		Confidence:     result.Confidence(),
		Source:         result.Source,
		FallbackReason: reason,
		DurationMs:     time.Since(start).Milliseconds(),
		OccurredAt:     time.Now().UTC(),
	})

	return result, nil
}
