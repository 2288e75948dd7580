package provider

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	"go.opentelemetry.io/otel/trace"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
}

func TestFinnhubFetchMarketNews(t *testing.T) {
	p := NewFinnhubProvider("test-key", trace.NewNoopTracerProvider().Tracer("test"))
	p.client = &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		if got := req.URL.Query().Get("token"); got != "test-key" {
			t.Fatalf("expected token query param, got %q", got)
		}
		body := `[{"id":101,"category":"general","datetime":1700000000,"headline":"Apple earnings beat","related":"AAPL","source":"Example","url":"https://news.example/a"}]`
		return jsonResponse(http.StatusOK, body), nil
	})}

	items, err := p.FetchMarketNews(context.Background(), "general", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	item := items[0]
	if item.ExternalID != "finnhub:101" {
		t.Fatalf("unexpected external id: %q", item.ExternalID)
	}
	if item.RelatedSymbols != "AAPL" || item.Title != "Apple earnings beat" {
		t.Fatalf("unexpected item: %+v", item)
	}
}

func TestFinnhubRequiresAPIKey(t *testing.T) {
	p := NewFinnhubProvider("", trace.NewNoopTracerProvider().Tracer("test"))
	if _, err := p.FetchMarketNews(context.Background(), "general", 10); err == nil {
		t.Fatal("expected error without api key")
	}
}

func TestFinnhubPropagatesAPIError(t *testing.T) {
	p := NewFinnhubProvider("test-key", trace.NewNoopTracerProvider().Tracer("test"))
	p.client = &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusTooManyRequests, `{"error":"limit"}`), nil
	})}

	if _, err := p.FetchMarketNews(context.Background(), "general", 10); err == nil {
		t.Fatal("expected API error to surface")
	}
}

func TestFinnhubCapsItems(t *testing.T) {
	p := NewFinnhubProvider("test-key", trace.NewNoopTracerProvider().Tracer("test"))
	p.client = &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		body := `[{"id":1,"headline":"one","datetime":1700000000},{"id":2,"headline":"two","datetime":1700000000},{"id":3,"headline":"three","datetime":1700000000}]`
		return jsonResponse(http.StatusOK, body), nil
	})}

	items, err := p.FetchMarketNews(context.Background(), "general", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
}
