package resources

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/resource"
	"github.com/cipherswarm/cipherswarm/pkg/events"
)

// Poller periodically refreshes line counts for resources the async counting
// pipeline has not reported yet, so attacks the matcher skipped for unready
// resources become dispatchable. One poller per process; passes are
// idempotent, so running it on multiple replicas is wasteful but harmless.
type Poller struct {
	client    *ent.Client
	registry  Registry
	publisher events.Publisher
	interval  time.Duration
	logger    *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}

	mu          sync.Mutex
	lastScan    time.Time
	lastUpdated int
}

// NewPoller creates a resource readiness poller.
func NewPoller(client *ent.Client, registry Registry, publisher events.Publisher, interval time.Duration, logger *slog.Logger) *Poller {
	if publisher == nil {
		publisher = events.NewLogPublisher(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Poller{
		client:    client,
		registry:  registry,
		publisher: publisher,
		interval:  interval,
		logger:    logger,
	}
}

// Start launches the background polling loop. Calling Start on a running
// poller is a no-op.
func (p *Poller) Start(ctx context.Context) {
	if p.cancel != nil {
		return
	}
	ctx, p.cancel = context.WithCancel(ctx)
	p.done = make(chan struct{})
	go p.run(ctx)
	p.logger.Info("resource readiness poller started", "interval", p.interval)
}

// Stop signals the loop to exit and waits for it to finish. After Stop
// returns, Start may be called again.
func (p *Poller) Stop() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	<-p.done
	p.cancel = nil
	p.done = nil
	p.logger.Info("resource readiness poller stopped")
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.done)

	p.RefreshOnce(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.RefreshOnce(ctx)
		}
	}
}

// RefreshOnce runs one poll pass: every resource with an unknown line_count
// is asked of the registry; counts that became known are persisted and a
// resource_ready event is published for each.
func (p *Poller) RefreshOnce(ctx context.Context) {
	pending, err := p.client.Resource.Query().
		Where(resource.LineCountIsNil()).
		All(ctx)
	if err != nil {
		p.logger.Error("resource poll: query failed", "error", err)
		return
	}

	updated := 0
	for _, res := range pending {
		count, err := p.registry.LineCount(ctx, res.FileHandle)
		if err != nil {
			p.logger.Warn("resource poll: line count lookup failed",
				"resource_id", res.ID, "file_handle", res.FileHandle, "error", err)
			continue
		}
		if count == nil {
			continue
		}
		if err := p.client.Resource.UpdateOneID(res.ID).SetLineCount(*count).Exec(ctx); err != nil {
			p.logger.Error("resource poll: failed to persist line count",
				"resource_id", res.ID, "error", err)
			continue
		}
		p.publisher.PublishResourceReady(ctx, events.ResourceReadyPayload{
			Type: events.TypeResourceReady, ResourceID: res.ID, LineCount: *count,
		})
		updated++
	}

	p.mu.Lock()
	p.lastScan = time.Now()
	p.lastUpdated = updated
	p.mu.Unlock()

	if updated > 0 {
		p.logger.Info("resource poll: line counts resolved", "count", updated)
	}
}

// LastScan reports the completion time and update count of the most recent
// pass, for the operator health probe.
func (p *Poller) LastScan() (time.Time, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastScan, p.lastUpdated
}
