package service

import (
	"context"
	"errors"

	"github.com/ds124wfegd/tomato-gateway/internal/entity"
	"github.com/ds124wfegd/tomato-gateway/internal/pkg/kafka"
	"github.com/ds124wfegd/tomato-gateway/internal/pkg/rabbitMQ"
	"github.com/sirupsen/logrus"
)

// EventPublisher ships classification events to an external sink.
type EventPublisher interface {
	Publish(ctx context.Context, ev *entity.ClassificationEvent) error
	HealthCheck(ctx context.Context) error
	Close() error
}

// KafkaAdapter адаптирует kafka.Producer к EventPublisher
type KafkaAdapter struct {
	producer kafka.Producer
}

func NewKafkaAdapter(p kafka.Producer) *KafkaAdapter {
	return &KafkaAdapter{producer: p}
}

func (a *KafkaAdapter) Publish(ctx context.Context, ev *entity.ClassificationEvent) error {
	return a.producer.SendMessage(ctx, ev.RequestID, ev)
}

func (a *KafkaAdapter) HealthCheck(ctx context.Context) error {
	return a.producer.HealthCheck(ctx)
}

func (a *KafkaAdapter) Close() error {
	return a.producer.Close()
}

// RabbitAdapter адаптирует rabbitMQ.Queue к EventPublisher
type RabbitAdapter struct {
	queue rabbitMQ.Queue
}

func NewRabbitAdapter(q rabbitMQ.Queue) *RabbitAdapter {
	return &RabbitAdapter{queue: q}
}

func (a *RabbitAdapter) Publish(ctx context.Context, ev *entity.ClassificationEvent) error {
	if a.queue == nil {
		return nil
	}
	return a.queue.Publish(ctx, ev)
}

func (a *RabbitAdapter) HealthCheck(_ context.Context) error {
	if a.queue == nil {
		return errors.New("rabbitmq queue is not configured")
	}
	return a.queue.HealthCheck()
}

func (a *RabbitAdapter) Close() error {
	if a.queue == nil {
		return nil
	}
	return a.queue.Close()
}

// LogPublisher only writes events to the log.
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, ev *entity.ClassificationEvent) error {
	logrus.WithFields(logrus.Fields{
		"request_id":  ev.RequestID,
		"kind":        ev.Kind,
		"label":       ev.Label,
		"confidence":  ev.Confidence,
		"source":      ev.Source,
		"duration_ms": ev.DurationMs,
	}).Info("Classification recorded")
	return nil
}

func (LogPublisher) HealthCheck(context.Context) error {
	return nil
}

func (LogPublisher) Close() error {
	return nil
}
