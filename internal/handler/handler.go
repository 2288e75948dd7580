package handler

import (
	"context"

	"headline-lens/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

// FeedReader is the slice of the feed service the HTTP layer needs.
type FeedReader interface {
	Feed(ctx context.Context, marketsOnly bool, limit int) ([]domain.AnnotatedHeadline, error)
	AnnotateHeadline(ctx context.Context, h domain.Headline) domain.AnnotatedHeadline
}

type Handler struct {
	tracer      trace.Tracer
	feedService FeedReader
}

func New(tracer trace.Tracer, feedService FeedReader) *Handler {
	return &Handler{
		tracer:      tracer,
		feedService: feedService,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
	r.GET("/api/news", h.GetNews)
	r.POST("/api/news/annotate", h.AnnotateNews)
}
