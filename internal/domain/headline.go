package domain

import "time"

// Headline is one raw news record as delivered by a provider. Only raw
// fields are persisted; annotations are recomputed on every read.
type Headline struct {
	ID             int64     `json:"id"`
	ExternalID     string    `json:"external_id"`
	Text           string    `json:"text"`
	RelatedSymbols string    `json:"related_symbols,omitempty"`
	Category       string    `json:"category,omitempty"`
	Source         string    `json:"source,omitempty"`
	URL            string    `json:"url,omitempty"`
	PublishedAt    time.Time `json:"published_at"`
}

type MatchKind string

const (
	KindEquity MatchKind = "equity"
	KindETF    MatchKind = "etf"
)

// InstrumentMatch is one instrument a headline concerns. Symbol is
// always 1-5 uppercase letters.
type InstrumentMatch struct {
	Symbol string    `json:"symbol"`
	Kind   MatchKind `json:"kind"`
}

// RelevanceDecision is the keep/hide verdict for the markets-only
// filter. Keep is true exactly when Signals is non-empty; Reason is
// informational only and never influences Keep.
type RelevanceDecision struct {
	Keep    bool     `json:"keep"`
	Signals []string `json:"signals,omitempty"`
	Reason  string   `json:"reason,omitempty"`
}

type TopicLabel string

const (
	TopicMarketsUp   TopicLabel = "markets-up"
	TopicMarketsDown TopicLabel = "markets-down"
	TopicMacro       TopicLabel = "macro"
	TopicEarnings    TopicLabel = "earnings"
	TopicCommodities TopicLabel = "commodities"
	TopicNews        TopicLabel = "news"
)

type ImpactLabel string

const (
	ImpactNone          ImpactLabel = ""
	ImpactMarketMoving  ImpactLabel = "market-moving"
	ImpactHigh          ImpactLabel = "high-impact"
	ImpactAnalystSignal ImpactLabel = "analyst-signal"
)

// Segment is one run of headline text. Symbol is empty for plain text
// and set to the matched instrument for linkable runs. Concatenating
// the Text of all segments reproduces the original headline exactly.
type Segment struct {
	Text   string `json:"text"`
	Symbol string `json:"symbol,omitempty"`
}

// Annotation is everything the rendering layer needs for one headline.
type Annotation struct {
	Matches   []InstrumentMatch `json:"matches"`
	Relevance RelevanceDecision `json:"relevance"`
	Topic     TopicLabel        `json:"topic"`
	Impact    ImpactLabel       `json:"impact,omitempty"`
	Segments  []Segment         `json:"segments"`
}

type AnnotatedHeadline struct {
	Headline   Headline   `json:"headline"`
	Annotation Annotation `json:"annotation"`
}
