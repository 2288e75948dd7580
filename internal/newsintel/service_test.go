package newsintel

import (
	"context"
	"reflect"
	"testing"

	"headline-lens/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

func newTestService() *Service {
	return NewService(trace.NewNoopTracerProvider().Tracer("test"))
}

func TestAnnotateFullPipeline(t *testing.T) {
	svc := newTestService()
	h := domain.Headline{
		Text:     "AI chip boom lifts Nvidia and rivals",
		Category: "technology",
	}

	ann := svc.Annotate(context.Background(), h)

	if len(ann.Matches) != 2 || ann.Matches[0].Symbol != "NVDA" || ann.Matches[1].Symbol != "SOXX" {
		t.Fatalf("unexpected matches: %v", ann.Matches)
	}
	if !ann.Relevance.Keep {
		t.Fatal("expected headline to be kept")
	}
	var joined string
	for _, s := range ann.Segments {
		joined += s.Text
	}
	if joined != h.Text {
		t.Fatalf("segments do not reassemble headline: %q", joined)
	}
}

func TestAnnotateNeutralDefaults(t *testing.T) {
	svc := newTestService()
	ann := svc.Annotate(context.Background(), domain.Headline{Text: "10 tips to save on your next vacation"})

	if len(ann.Matches) != 0 {
		t.Fatalf("expected no matches, got %v", ann.Matches)
	}
	if ann.Relevance.Keep {
		t.Fatal("expected keep=false")
	}
	if ann.Topic != domain.TopicNews {
		t.Fatalf("expected default news topic, got %q", ann.Topic)
	}
	if ann.Impact != domain.ImpactNone {
		t.Fatalf("expected no impact label, got %q", ann.Impact)
	}
}

func TestAnnotateIsDeterministic(t *testing.T) {
	svc := newTestService()
	h := domain.Headline{Text: "Bank of America raised guidance", RelatedSymbols: "BAC"}

	first := svc.Annotate(context.Background(), h)
	second := svc.Annotate(context.Background(), h)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("annotation not deterministic:\n%+v\nvs\n%+v", first, second)
	}
}
