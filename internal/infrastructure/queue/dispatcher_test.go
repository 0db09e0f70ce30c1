package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/planwise/scheduling-api/internal/core/ports"
)

type memoryAuditRepo struct {
	mu     sync.Mutex
	events []ports.AuditEvent
}

func (r *memoryAuditRepo) Insert(_ context.Context, event ports.AuditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *memoryAuditRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func (r *memoryAuditRepo) bySubject(subject string) []ports.AuditEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []ports.AuditEvent
	for _, e := range r.events {
		if e.Subject == subject {
			out = append(out, e)
		}
	}
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within deadline")
}

func TestAuditDispatcher_PersistsEvents(t *testing.T) {
	repo := &memoryAuditRepo{}
	d := NewAuditDispatcher(2, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	for i := 0; i < 10; i++ {
		d.Enqueue(ports.AuditEvent{
			ID:      fmt.Sprintf("e%d", i),
			Kind:    ports.AuditLoginSuccess,
			Subject: fmt.Sprintf("user%d@x.com", i%3),
		})
	}

	waitFor(t, func() bool { return repo.count() == 10 })

	cancel()
	d.Wait()
}

func TestAuditDispatcher_OrderPerSubject(t *testing.T) {
	repo := &memoryAuditRepo{}
	d := NewAuditDispatcher(4, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	const n = 20
	for i := 0; i < n; i++ {
		d.Enqueue(ports.AuditEvent{
			ID:      fmt.Sprintf("e%d", i),
			Kind:    ports.AuditLoginFailure,
			Subject: "bob@x.com",
		})
	}

	waitFor(t, func() bool { return len(repo.bySubject("bob@x.com")) == n })

	// Same subject hashes to the same worker, so order is preserved.
	events := repo.bySubject("bob@x.com")
	for i, e := range events {
		if e.ID != fmt.Sprintf("e%d", i) {
			t.Fatalf("event %d out of order: %s", i, e.ID)
		}
	}

	cancel()
	d.Wait()
}

func TestAuditDispatcher_DropsWhenFull(t *testing.T) {
	repo := &memoryAuditRepo{}
	// Workers never started: shards fill up and further events must be
	// dropped instead of blocking the caller.
	d := NewAuditDispatcher(1, repo, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < channelBuffer+10; i++ {
			d.Enqueue(ports.AuditEvent{ID: fmt.Sprintf("e%d", i), Subject: "bob@x.com"})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("enqueue blocked on a full shard")
	}
}

func TestAuditDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewAuditDispatcher(0, &memoryAuditRepo{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
