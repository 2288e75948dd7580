package newsintel

import (
	"regexp"
	"strings"

	"headline-lens/internal/domain"
)

// Topic and impact are independent first-matching-bucket lookups; no
// scoring, no interaction with the relevance decision.

var (
	earningsTermsRx  = regexp.MustCompile(`(?i)\b(earnings|eps|quarterly (?:results|report)|q[1-4] (?:results|report)|revenue (?:beat|miss)|guidance|profit reports?|forecast raised|forecast cut)\b`)
	commodityTermsRx = regexp.MustCompile(`(?i)\b(gold|silver|copper|crude|brent|wti|oil|natural gas|commodit(?:y|ies)|opec|bullion|bitcoin|ethereum|crypto)\b`)
	macroTopicRx     = regexp.MustCompile(`(?i)\b(fed|federal reserve|fomc|inflation|cpi|ppi|gdp|interest rates?|rate (?:cut|hike)s?|jobs report|payrolls|unemployment|treasury|recession|central banks?)\b`)
	bullishMoveRx    = regexp.MustCompile(`(?i)\b(rall(?:y|ies)|surge[sd]?|soar(?:s|ed)?|jump(?:s|ed)?|climb(?:s|ed)?|gains?|rebound(?:s|ed)?|record high|all-time high|rises?|extends? winning streak)\b`)
	bearishMoveRx    = regexp.MustCompile(`(?i)\b(falls?|fell|drops?|plunge[sd]?|slides?|sinks?|tumble[sd]?|slump[sd]?|sell-?off|crash(?:es|ed)?|losses|record low|skids?)\b`)
)

var (
	breakingTermsRx = regexp.MustCompile(`(?i)\b(breaking|just in|urgent|alert|flash)\b`)
	bigMoveTermsRx  = regexp.MustCompile(`(?i)\b(surge[sd]?|plunge[sd]?|soar(?:s|ed)?|crash(?:es|ed)?|record (?:high|low)|all-time (?:high|low)|halted|collapse[sd]?|wipes? out)\b`)
	analystTermsRx  = regexp.MustCompile(`(?i)\b(upgrade[sd]?|downgrade[sd]?|price target|initiat(?:es|ed) coverage|overweight|underweight|outperform|underperform|raises? guidance|cuts? guidance)\b`)
)

// ClassifyTopic assigns the display topic. The provider category can
// satisfy the earnings/commodities/macro buckets directly; otherwise
// the headline wording decides, first bucket wins.
func ClassifyTopic(text, category string) domain.TopicLabel {
	cat := strings.ToLower(strings.TrimSpace(category))

	switch {
	case earningsTermsRx.MatchString(text) || strings.Contains(cat, "earnings"):
		return domain.TopicEarnings
	case commodityTermsRx.MatchString(text) || strings.Contains(cat, "commodit") || strings.Contains(cat, "crypto"):
		return domain.TopicCommodities
	case macroTopicRx.MatchString(text) || strings.Contains(cat, "macro") || strings.Contains(cat, "econom"):
		return domain.TopicMacro
	case bullishMoveRx.MatchString(text):
		return domain.TopicMarketsUp
	case bearishMoveRx.MatchString(text):
		return domain.TopicMarketsDown
	default:
		return domain.TopicNews
	}
}

// ClassifyImpact assigns the optional badge. Most headlines get none.
func ClassifyImpact(text string) domain.ImpactLabel {
	switch {
	case breakingTermsRx.MatchString(text):
		return domain.ImpactMarketMoving
	case bigMoveTermsRx.MatchString(text):
		return domain.ImpactHigh
	case analystTermsRx.MatchString(text):
		return domain.ImpactAnalystSignal
	default:
		return domain.ImpactNone
	}
}
