package worker

import (
	"context"
	"time"

	"github.com/ds124wfegd/tomato-gateway/internal/database"
	"github.com/ds124wfegd/tomato-gateway/internal/entity"
	"github.com/ds124wfegd/tomato-gateway/internal/service"

	"github.com/sirupsen/logrus"
)

const drainTimeout = 5 * time.Second

// EventDispatcher moves classification events off the request path to the sink and stats.
type EventDispatcher struct {
	events    chan entity.ClassificationEvent
	publisher service.EventPublisher
	stats     database.StatsRepository
	done      chan struct{}
}

func NewEventDispatcher(publisher service.EventPublisher, stats database.StatsRepository, bufferSize int) *EventDispatcher {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &EventDispatcher{
		events:    make(chan entity.ClassificationEvent, bufferSize),
		publisher: publisher,
		stats:     stats,
		done:      make(chan struct{}),
	}
}

// Enqueue never blocks; when the buffer is full the event is dropped.
func (d *EventDispatcher) Enqueue(ev entity.ClassificationEvent) {
	select {
	case d.events <- ev:
	default:
		logrus.WithFields(logrus.Fields{
			"request_id": ev.RequestID,
			"kind":       ev.Kind,
		}).Warn("Event buffer full, dropping classification event")
	}
}

func (d *EventDispatcher) Start(ctx context.Context) {
	defer close(d.done)

	logrus.Info("Event dispatcher started")

	for {
		select {
		case <-ctx.Done():
			d.drain()
			logrus.Info("Event dispatcher stopped")
			return
		case ev := <-d.events:
			d.handle(ctx, &ev)
		}
	}
}

// Done is closed once Start has returned.
func (d *EventDispatcher) Done() <-chan struct{} {
	return d.done
}

func (d *EventDispatcher) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	for {
		select {
		case ev := <-d.events:
			d.handle(ctx, &ev)
		default:
			return
		}
	}
}

func (d *EventDispatcher) handle(ctx context.Context, ev *entity.ClassificationEvent) {
	if err := d.stats.Increment(ctx, ev); err != nil {
		logrus.Errorf("Failed to update stats for %s: %v", ev.RequestID, err)
	}
	if err := d.publisher.Publish(ctx, ev); err != nil {
		logrus.Errorf("Failed to publish event %s: %v", ev.RequestID, err)
	}
}
