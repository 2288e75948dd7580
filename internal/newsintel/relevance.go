package newsintel

import (
	"regexp"
	"strings"

	"headline-lens/internal/domain"
)

// Relevance is a strict allow-list: a headline is kept only when at
// least one positive signal fires. The suppression table below never
// decides anything; it only labels why an already-hidden headline was
// hidden.

var macroTermsRx = regexp.MustCompile(`(?i)\b(fed|federal reserve|fomc|interest rates?|rate (?:cut|hike)s?|inflation|cpi|ppi|gdp|jobs report|payrolls|unemployment|treasury yields?|recession|soft landing|central banks?|monetary policy)\b`)

var equityTermsRx = regexp.MustCompile(`(?i)\b(stocks?|shares?|equit(?:y|ies)|nasdaq|s&p|dow|wall street|index|earnings|revenue|profits?|guidance|ipo|buybacks?|dividends?|mergers?|acquisitions?|valuations?|rall(?:y|ies)|sell-?off|crash(?:es)?|short sellers?|market cap)\b`)

var policyTermsRx = regexp.MustCompile(`(?i)\b(tariffs?|sanctions?|export controls?|chip bans?|trade war|opec|crude|oil prices?|supply chains?|shipping disruptions?|embargo(?:es)?|subsid(?:y|ies)|antitrust)\b`)

// suppressTermsRx labels obviously non-market content: life advice,
// personal finance listicles, entertainment, horse-race politics.
var suppressTermsRx = regexp.MustCompile(`(?i)\b(tips to|how to save|ways to|best credit cards?|retirement advice|personal finance|side hustles?|celebrit(?:y|ies)|box office|red carpet|royal family|horoscopes?|vacations?|travel deals?|recipes?|lottery|dating|campaign trail|poll numbers|endorsements?)\b`)

// Classify decides keep/hide for the markets-only filter. Extracted
// instruments and the three keyword families each contribute an
// independent signal; keep is true exactly when any signal fired.
func Classify(text string, matches []domain.InstrumentMatch) domain.RelevanceDecision {
	var signals []string

	for _, m := range matches {
		if m.Kind == domain.KindETF {
			signals = append(signals, "etf:"+m.Symbol)
		} else {
			signals = append(signals, "ticker:"+m.Symbol)
		}
	}
	if macroTermsRx.MatchString(text) {
		signals = append(signals, "macro")
	}
	if equityTermsRx.MatchString(text) {
		signals = append(signals, "equity")
	}
	if policyTermsRx.MatchString(text) {
		signals = append(signals, "policy")
	}

	if len(signals) > 0 {
		return domain.RelevanceDecision{Keep: true, Signals: signals}
	}

	decision := domain.RelevanceDecision{Keep: false}
	if hit := suppressTermsRx.FindString(text); hit != "" {
		decision.Reason = "non-market content: " + strings.ToLower(hit)
	}
	return decision
}
