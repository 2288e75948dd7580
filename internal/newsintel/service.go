// Package newsintel is the headline market-relevance and
// entity-extraction engine: a deterministic, side-effect-free pipeline
// from one raw headline to instrument matches, a relevance decision,
// topic/impact labels and highlight segments.
package newsintel

import (
	"context"

	"headline-lens/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

// Service bundles the four pure stages behind a traced entry point.
// It holds no mutable state; concurrent use needs no coordination.
type Service struct {
	tracer trace.Tracer
}

func NewService(tracer trace.Tracer) *Service {
	return &Service{tracer: tracer}
}

// Annotate runs the full pipeline for one headline. It is total: any
// input, including the empty string, produces a complete Annotation
// with neutral defaults rather than an error.
func (s *Service) Annotate(ctx context.Context, h domain.Headline) domain.Annotation {
	_, span := s.tracer.Start(ctx, "newsintel.annotate")
	defer span.End()

	matches := Extract(h.Text, h.RelatedSymbols)
	return domain.Annotation{
		Matches:   matches,
		Relevance: Classify(h.Text, matches),
		Topic:     ClassifyTopic(h.Text, h.Category),
		Impact:    ClassifyImpact(h.Text),
		Segments:  Highlight(h.Text, matches),
	}
}
