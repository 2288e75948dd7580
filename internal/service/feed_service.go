package service

import (
	"context"
	"log"
	"time"

	"headline-lens/internal/domain"
	"headline-lens/internal/provider"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

// seenKeyTTL bounds the Redis dedup window; anything older falls back
// to the unique index on external_id.
const seenKeyTTL = 72 * time.Hour

type MarketNewsReader interface {
	FetchMarketNews(ctx context.Context, category string, maxItems int) ([]provider.HeadlineItem, error)
}

type RSSReader interface {
	FetchFeed(ctx context.Context, feedURL string, maxItems int) ([]provider.HeadlineItem, error)
}

type RedditReader interface {
	FetchHot(ctx context.Context, subreddit string, limit int) ([]provider.HeadlineItem, error)
}

type HeadlineStore interface {
	InsertHeadlines(ctx context.Context, headlines []domain.Headline) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Headline, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Annotator is the deterministic headline pipeline.
type Annotator interface {
	Annotate(ctx context.Context, h domain.Headline) domain.Annotation
}

type RedisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

type FeedConfig struct {
	NewsCategory     string
	NewsFeeds        []string
	RedditSubs       []string
	MaxPerSource     int
	DefaultFeedLimit int
	RetentionDays    int
}

// FeedService orchestrates the fetch side (providers, dedup, storage)
// and the read side (load recent, annotate on the fly, filter).
// Annotations are recomputed on every read and never stored.
type FeedService struct {
	tracer    trace.Tracer
	market    MarketNewsReader
	rss       RSSReader
	reddit    RedditReader
	store     HeadlineStore
	redis     RedisClient
	annotator Annotator
	cfg       FeedConfig
}

func NewFeedService(
	tracer trace.Tracer,
	market MarketNewsReader,
	rss RSSReader,
	reddit RedditReader,
	store HeadlineStore,
	redisClient RedisClient,
	annotator Annotator,
	cfg FeedConfig,
) *FeedService {
	if cfg.MaxPerSource <= 0 {
		cfg.MaxPerSource = 40
	}
	if cfg.DefaultFeedLimit <= 0 {
		cfg.DefaultFeedLimit = 50
	}
	if cfg.RetentionDays <= 0 {
		cfg.RetentionDays = 7
	}
	return &FeedService{
		tracer:    tracer,
		market:    market,
		rss:       rss,
		reddit:    reddit,
		store:     store,
		redis:     redisClient,
		annotator: annotator,
		cfg:       cfg,
	}
}

// Refresh pulls every configured source, drops already-seen ids and
// stores the rest. Individual source failures are logged and skipped
// so one flaky feed never blocks the cycle.
func (s *FeedService) Refresh(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "feed-service.refresh")
	defer span.End()

	var collected []provider.HeadlineItem

	if s.market != nil {
		items, err := s.market.FetchMarketNews(ctx, s.cfg.NewsCategory, s.cfg.MaxPerSource)
		if err != nil {
			log.Printf("market news fetch error: %v", err)
		} else {
			collected = append(collected, items...)
		}
	}
	if s.rss != nil {
		for _, feedURL := range s.cfg.NewsFeeds {
			items, err := s.rss.FetchFeed(ctx, feedURL, s.cfg.MaxPerSource)
			if err != nil {
				log.Printf("rss fetch error for %s: %v", feedURL, err)
				continue
			}
			collected = append(collected, items...)
		}
	}
	if s.reddit != nil {
		for _, sub := range s.cfg.RedditSubs {
			items, err := s.reddit.FetchHot(ctx, sub, s.cfg.MaxPerSource)
			if err != nil {
				log.Printf("reddit fetch error for %s: %v", sub, err)
				continue
			}
			collected = append(collected, items...)
		}
	}

	fresh := make([]domain.Headline, 0, len(collected))
	for _, item := range collected {
		if item.ExternalID == "" || item.Title == "" {
			continue
		}
		if !s.markSeen(ctx, item.ExternalID) {
			continue
		}
		fresh = append(fresh, domain.Headline{
			ExternalID:     item.ExternalID,
			Text:           item.Title,
			RelatedSymbols: item.RelatedSymbols,
			Category:       item.Category,
			Source:         item.Source,
			URL:            item.URL,
			PublishedAt:    item.PublishedAt,
		})
	}

	if len(fresh) == 0 {
		return nil
	}

	inserted, err := s.store.InsertHeadlines(ctx, fresh)
	if err != nil {
		return err
	}
	log.Printf("feed refresh: %d fetched, %d new", len(collected), inserted)
	return nil
}

// Feed returns the newest annotated headlines. With marketsOnly set,
// headlines whose relevance decision is hide are dropped after
// annotation.
func (s *FeedService) Feed(ctx context.Context, marketsOnly bool, limit int) ([]domain.AnnotatedHeadline, error) {
	ctx, span := s.tracer.Start(ctx, "feed-service.feed")
	defer span.End()

	if limit <= 0 {
		limit = s.cfg.DefaultFeedLimit
	}

	headlines, err := s.store.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	out := make([]domain.AnnotatedHeadline, 0, len(headlines))
	for _, h := range headlines {
		annotated := domain.AnnotatedHeadline{
			Headline:   h,
			Annotation: s.annotator.Annotate(ctx, h),
		}
		if marketsOnly && !annotated.Annotation.Relevance.Keep {
			continue
		}
		out = append(out, annotated)
	}
	return out, nil
}

// AnnotateHeadline runs the pipeline for one ad-hoc headline.
func (s *FeedService) AnnotateHeadline(ctx context.Context, h domain.Headline) domain.AnnotatedHeadline {
	ctx, span := s.tracer.Start(ctx, "feed-service.annotate-headline")
	defer span.End()

	return domain.AnnotatedHeadline{Headline: h, Annotation: s.annotator.Annotate(ctx, h)}
}

// RetentionSweep deletes headlines older than the retention window.
func (s *FeedService) RetentionSweep(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "feed-service.retention-sweep")
	defer span.End()

	cutoff := time.Now().UTC().AddDate(0, 0, -s.cfg.RetentionDays)
	deleted, err := s.store.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}
	if deleted > 0 {
		log.Printf("retention sweep: deleted %d headlines before %s", deleted, cutoff.Format(time.RFC3339))
	}
	return nil
}

// markSeen reports whether the id was newly claimed. Redis being down
// or absent degrades to the database unique index.
func (s *FeedService) markSeen(ctx context.Context, externalID string) bool {
	if s.redis == nil {
		return true
	}
	ok, err := s.redis.SetNX(ctx, "news:seen:"+externalID, 1, seenKeyTTL).Result()
	if err != nil {
		log.Printf("redis seen-key error: %v", err)
		return true
	}
	return ok
}
