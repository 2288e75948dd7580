package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"
)

const finnhubBaseURL = "https://finnhub.io/api/v1"

// FinnhubProvider fetches market news from the Finnhub free API. Its
// payload carries the "related" field — the exchange-supplied
// comma-separated symbol hint the extractor treats as its
// highest-priority source.
type FinnhubProvider struct {
	client  *http.Client
	baseURL string
	apiKey  string
	tracer  trace.Tracer
	limiter *RateLimiter
}

// NewFinnhubProvider creates a provider with built-in rate limiting.
// The free tier allows 60 calls/minute; we stay well under it.
func NewFinnhubProvider(apiKey string, tracer trace.Tracer) *FinnhubProvider {
	return &FinnhubProvider{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: finnhubBaseURL,
		apiKey:  strings.TrimSpace(apiKey),
		tracer:  tracer,
		limiter: NewRateLimiter(20, 3*time.Second),
	}
}

// FetchMarketNews returns up to maxItems current headlines for the
// given category ("general", "forex", "crypto", "merger").
func (p *FinnhubProvider) FetchMarketNews(ctx context.Context, category string, maxItems int) ([]HeadlineItem, error) {
	_, span := p.tracer.Start(ctx, "finnhub.fetch-market-news")
	defer span.End()

	if p.apiKey == "" {
		return nil, fmt.Errorf("finnhub api key is required")
	}
	category = strings.TrimSpace(category)
	if category == "" {
		category = "general"
	}
	if maxItems <= 0 {
		maxItems = 40
	}

	u := fmt.Sprintf("%s/news?category=%s&token=%s", p.baseURL, url.QueryEscape(category), url.QueryEscape(p.apiKey))
	body, err := p.doRequest(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("fetch market news: %w", err)
	}

	var raw []struct {
		ID       int64  `json:"id"`
		Category string `json:"category"`
		Datetime int64  `json:"datetime"`
		Headline string `json:"headline"`
		Related  string `json:"related"`
		Source   string `json:"source"`
		URL      string `json:"url"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse market news: %w", err)
	}

	items := make([]HeadlineItem, 0, min(maxItems, len(raw)))
	for i, row := range raw {
		if i >= maxItems {
			break
		}
		title := sanitizeText(row.Headline, 300)
		if title == "" {
			continue
		}
		externalID := strconv.FormatInt(row.ID, 10)
		if row.ID == 0 {
			externalID = hashID(title, row.URL)
		}
		items = append(items, HeadlineItem{
			ExternalID:     "finnhub:" + externalID,
			Title:          title,
			RelatedSymbols: sanitizeText(row.Related, 120),
			Category:       sanitizeText(row.Category, 60),
			Source:         sanitizeText(row.Source, 120),
			URL:            sanitizeText(row.URL, 500),
			PublishedAt:    time.Unix(row.Datetime, 0).UTC(),
		})
	}
	return items, nil
}

func (p *FinnhubProvider) doRequest(ctx context.Context, url string) ([]byte, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("finnhub API error %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
