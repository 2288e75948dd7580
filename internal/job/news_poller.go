package job

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// NewsPoller runs background goroutines that periodically refresh the
// headline feed and sweep out expired rows.
type NewsPoller struct {
	tracer       trace.Tracer
	feedService  FeedRefresher
	pollInterval time.Duration
}

type FeedRefresher interface {
	Refresh(ctx context.Context) error
	RetentionSweep(ctx context.Context) error
}

func NewNewsPoller(tracer trace.Tracer, feedService FeedRefresher, pollIntervalSecs int) *NewsPoller {
	if pollIntervalSecs <= 0 {
		pollIntervalSecs = 150
	}
	return &NewsPoller{
		tracer:       tracer,
		feedService:  feedService,
		pollInterval: time.Duration(pollIntervalSecs) * time.Second,
	}
}

// Start launches the polling goroutines. Blocks until ctx is cancelled.
func (p *NewsPoller) Start(ctx context.Context) {
	log.Println("News poller starting...")

	// Feed refresh every pollInterval (default 150s)
	go p.pollLoop(ctx, "feed-refresh", p.pollInterval, func(ctx context.Context) error {
		return p.feedService.Refresh(ctx)
	})

	// Retention sweep once a day; stagger the first run so it does not
	// race the initial refresh.
	go p.sweepLoop(ctx)

	<-ctx.Done()
	log.Println("News poller stopped")
}

func (p *NewsPoller) pollLoop(ctx context.Context, name string, interval time.Duration, fn func(context.Context) error) {
	// Run immediately on start
	if err := fn(ctx); err != nil {
		log.Printf("poller %s initial run error: %v", name, err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := fn(ctx); err != nil {
				log.Printf("poller %s error: %v", name, err)
			}
		}
	}
}

func (p *NewsPoller) sweepLoop(ctx context.Context) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(time.Minute):
	}

	p.runSweep(ctx)

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.runSweep(ctx)
		}
	}
}

func (p *NewsPoller) runSweep(ctx context.Context) {
	ctx, span := p.tracer.Start(ctx, "news-poller.retention-sweep")
	defer span.End()

	if err := p.feedService.RetentionSweep(ctx); err != nil {
		log.Printf("retention sweep error: %v", err)
	}
}
