package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"headline-lens/internal/cache"
	"headline-lens/internal/config"
	"headline-lens/internal/db"
	"headline-lens/internal/handler"
	"headline-lens/internal/job"
	"headline-lens/internal/newsintel"
	"headline-lens/internal/provider"
	"headline-lens/internal/repository"
	"headline-lens/internal/service"
	"headline-lens/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	_ "headline-lens/docs"
)

var (
	loadEnvFunc            = godotenv.Load
	loadConfigFunc         = config.Load
	initPostgresFunc       = db.InitPostgres
	initRedisFunc          = cache.InitRedis
	initTracerFunc         = tracing.InitTracer
	newHeadlineRepoFunc    = repository.NewHeadlineRepository
	newFinnhubProviderFunc = func(tracer trace.Tracer, apiKey string) service.MarketNewsReader {
		if apiKey == "" {
			return nil
		}
		return provider.NewFinnhubProvider(apiKey, tracer)
	}
	newRSSProviderFunc     = provider.NewRSSProvider
	newRedditProviderFunc  = provider.NewRedditProvider
	newFeedServiceFunc     = service.NewFeedService
	newNewsPollerFunc      = job.NewNewsPoller
	startPollerFunc        = func(p *job.NewsPoller, ctx context.Context) { go p.Start(ctx) }
	newHandlerFunc         = handler.New
	newRouterFunc          = gin.Default
	setupSignalNotify      = signal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

// @title           Headline Lens API
// @version         1.0
// @description     Deterministic market-relevance and entity extraction for news headlines.

// @host      localhost:8080
// @BasePath  /
func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init Postgres and Redis
	os.Setenv("DATABASE_URL", cfg.DatabaseURL)
	os.Setenv("REDIS_URL", cfg.RedisURL)
	initPostgresFunc(ctx)
	initRedisFunc(ctx)

	// Init tracing
	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	// Create repository and run migrations
	headlineRepo := newHeadlineRepoFunc(db.Pool, tracer)
	if db.Pool != nil {
		if err := headlineRepo.RunMigrations(ctx); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Providers and the annotation pipeline
	finnhub := newFinnhubProviderFunc(tracer, cfg.FinnhubAPIKey)
	rss := newRSSProviderFunc(tracer)
	reddit := newRedditProviderFunc(tracer)
	annotator := newsintel.NewService(tracer)

	feedService := newFeedServiceFunc(tracer, finnhub, rss, reddit, headlineRepo, cache.Client, annotator, service.FeedConfig{
		NewsCategory:     cfg.NewsCategory,
		NewsFeeds:        cfg.NewsFeeds,
		RedditSubs:       cfg.RedditSubs,
		MaxPerSource:     cfg.NewsFeedItemLimit,
		DefaultFeedLimit: cfg.FeedLimit,
		RetentionDays:    cfg.RetentionDays,
	})

	// Start news poller (background goroutines, stopped by ctx cancel)
	poller := newNewsPollerFunc(tracer, feedService, cfg.NewsPollSecs)
	startPollerFunc(poller, ctx)

	// Create handlers and routes
	h := newHandlerFunc(tracer, feedService)

	r := newRouterFunc()
	r.Use(otelgin.Middleware("headline-lens"))
	r.Use(handler.APIKeyAuth(cfg.APIKey))

	h.RegisterRoutes(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    ":8080",
		Handler: r,
	}

	go func() {
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Println("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
