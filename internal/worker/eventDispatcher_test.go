package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ds124wfegd/tomato-gateway/internal/database"
	"github.com/ds124wfegd/tomato-gateway/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []entity.ClassificationEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, ev *entity.ClassificationEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, *ev)
	return p.err
}

func (p *recordingPublisher) HealthCheck(context.Context) error { return nil }
func (p *recordingPublisher) Close() error                      { return nil }

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}

func TestDispatcherPublishesAndCounts(t *testing.T) {
	pub := &recordingPublisher{}
	stats := database.NewMemoryStatsRepository()
	d := NewEventDispatcher(pub, stats, 8)

	ctx, cancel := context.WithCancel(context.Background())
	go d.Start(ctx)

	d.Enqueue(entity.ClassificationEvent{RequestID: "a", Kind: entity.KindDisease, Label: "Hoja sana", Source: entity.SourceSimulated})
	d.Enqueue(entity.ClassificationEvent{RequestID: "b", Kind: entity.KindQuality, Label: "Premium", Source: entity.SourceRemote})

	assert.Eventually(t, func() bool { return pub.count() == 2 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-d.Done():
	case <-time.After(time.Second):
		t.Fatal("dispatcher did not stop")
	}

	snap, err := stats.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), snap.Disease.Simulated)
	assert.Equal(t, int64(1), snap.Quality.Remote)
}

// TestDispatcherEnqueueNeverBlocks переполненный буфер не блокирует запрос
func TestDispatcherEnqueueNeverBlocks(t *testing.T) {
	d := NewEventDispatcher(&recordingPublisher{}, database.NewMemoryStatsRepository(), 1)

	finished := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			d.Enqueue(entity.ClassificationEvent{Kind: entity.KindDisease})
		}
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Enqueue blocked with a full buffer")
	}
	assert.Len(t, d.events, 1)
}

func TestDispatcherDrainsOnStop(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("broker down")}
	d := NewEventDispatcher(pub, database.NewMemoryStatsRepository(), 4)

	for i := 0; i < 3; i++ {
		d.Enqueue(entity.ClassificationEvent{Kind: entity.KindQuality, Label: "Regular"})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d.Start(ctx)

	assert.Equal(t, 3, pub.count())
}
