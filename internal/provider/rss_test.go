package provider

import (
	"context"
	"net/http"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
)

func TestRSSFetchFeed(t *testing.T) {
	p := NewRSSProvider(trace.NewNoopTracerProvider().Tracer("test"))
	p.client = &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		xml := `<?xml version="1.0"?><rss version="2.0"><channel><title>Example Markets</title><item><title>Fed signals rate cut</title><link>https://news.example/fed</link><guid>guid-1</guid><pubDate>Fri, 13 Feb 2026 10:00:00 +0000</pubDate></item></channel></rss>`
		return jsonResponse(http.StatusOK, xml), nil
	})}

	items, err := p.FetchFeed(context.Background(), "https://news.example/rss", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	item := items[0]
	if item.ExternalID != "rss:guid-1" {
		t.Fatalf("unexpected external id: %q", item.ExternalID)
	}
	if item.Source != "Example Markets" || item.Title != "Fed signals rate cut" {
		t.Fatalf("unexpected item: %+v", item)
	}
	if item.RelatedSymbols != "" {
		t.Fatalf("rss items carry no symbol hint, got %q", item.RelatedSymbols)
	}
	want := time.Date(2026, 2, 13, 10, 0, 0, 0, time.UTC)
	if !item.PublishedAt.Equal(want) {
		t.Fatalf("unexpected published time: %v", item.PublishedAt)
	}
}

func TestRSSFetchFeedRequiresURL(t *testing.T) {
	p := NewRSSProvider(trace.NewNoopTracerProvider().Tracer("test"))
	if _, err := p.FetchFeed(context.Background(), "  ", 10); err == nil {
		t.Fatal("expected error for empty feed url")
	}
}

func TestRSSFetchFeedFallbackID(t *testing.T) {
	p := NewRSSProvider(trace.NewNoopTracerProvider().Tracer("test"))
	p.client = &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		xml := `<?xml version="1.0"?><rss version="2.0"><channel><title>F</title><item><title>Untagged headline</title></item></channel></rss>`
		return jsonResponse(http.StatusOK, xml), nil
	})}

	items, err := p.FetchFeed(context.Background(), "https://news.example/rss", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].ExternalID == "rss:" {
		t.Fatalf("expected hashed fallback id, got %+v", items)
	}
}
