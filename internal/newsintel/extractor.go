package newsintel

import (
	"regexp"
	"strings"

	"headline-lens/internal/domain"
	"headline-lens/internal/lexicon"
)

// maxMatches caps how many instruments one headline may yield.
const maxMatches = 2

var (
	dollarTickerRx  = regexp.MustCompile(`\$([A-Z]{1,5})\b`)
	exchangeParenRx = regexp.MustCompile(`\((?:NYSE|NASDAQ|Nasdaq|AMEX|CBOE|OTC)\s*:\s*([A-Za-z]{1,5})\)`)
	bareParenRx     = regexp.MustCompile(`\(([A-Z]{1,5})\)`)
)

// symbolSet keeps symbols in discovery order; result assembly depends
// on that order.
type symbolSet struct {
	order []string
	seen  map[string]struct{}
}

func newSymbolSet() *symbolSet {
	return &symbolSet{seen: make(map[string]struct{}, maxMatches*2)}
}

func (s *symbolSet) add(sym string) {
	if _, ok := s.seen[sym]; ok {
		return
	}
	s.seen[sym] = struct{}{}
	s.order = append(s.order, sym)
}

func (s *symbolSet) len() int { return len(s.order) }

// Extract finds the instruments a headline concerns. Sources are tried
// in a fixed priority order; explicit symbols and company names feed
// the exact set, descriptive theme wording feeds the ETF set. The
// result is at most maxMatches instruments, equities first.
func Extract(text, relatedSymbols string) []domain.InstrumentMatch {
	exact := newSymbolSet()
	etfs := newSymbolSet()
	lower := strings.ToLower(text)

	// 1. Exchange-supplied related symbols.
	for _, raw := range strings.Split(relatedSymbols, ",") {
		tok := strings.ToUpper(strings.TrimSpace(raw))
		if tok == "" || !lexicon.ValidTickerSyntax(tok) || lexicon.Blacklisted(tok) {
			continue
		}
		exact.add(tok)
	}

	// 2. $AAPL syntax anywhere in the text. Only an all-caps run
	// after the dollar sign counts; $apple is a price, not a ticker.
	for _, m := range dollarTickerRx.FindAllStringSubmatch(text, -1) {
		if lexicon.ValidTickerSyntax(m[1]) {
			exact.add(m[1])
		}
	}

	// 3. Parenthesized forms: (NASDAQ: TSLA) and bare (AAPL).
	for _, m := range exchangeParenRx.FindAllStringSubmatch(text, -1) {
		tok := strings.ToUpper(m[1])
		if lexicon.ValidTickerSyntax(tok) {
			exact.add(tok)
		}
	}
	for _, m := range bareParenRx.FindAllStringSubmatch(text, -1) {
		if !lexicon.Blacklisted(m[1]) {
			exact.add(m[1])
		}
	}

	// 4. Bare well-known tickers. The token must be uppercase in the
	// original text and whitelisted, so words like "Go" never match.
	for _, tok := range tokenize(text) {
		if tok == strings.ToUpper(tok) && lexicon.ValidTickerSyntax(tok) && lexicon.KnownTicker(tok) {
			exact.add(tok)
		}
	}

	// 5. Company-name phrases, longest name first.
	for _, matched := range lexicon.CompanyNameRx.FindAllString(text, -1) {
		if sym, ok := lexicon.TickerForName(matched); ok {
			exact.add(sym)
		}
	}

	// 6. Theme/sector phrases resolve to proxy ETFs.
	for _, matched := range lexicon.ThemePhraseRx.FindAllString(text, -1) {
		if sym, ok := lexicon.ETFForTheme(matched); ok {
			etfs.add(sym)
		}
	}

	// 7. Theme inference, only while a slot is still open. First rule
	// with a strong-phrase hit or two distinct weak keywords wins.
	if exact.len()+etfs.len() < maxMatches {
		for _, rule := range lexicon.ThemeRules {
			if rule.StrongRx != nil && rule.StrongRx.MatchString(lower) {
				etfs.add(rule.Symbol)
				break
			}
			if distinctWeakHits(lower, rule.WeakRx) >= 2 {
				etfs.add(rule.Symbol)
				break
			}
		}
	}

	return assemble(exact, etfs)
}

// assemble emits equities before ETFs, dropping broad-market index
// funds whenever any specific equity matched, and never exceeds
// maxMatches.
func assemble(exact, etfs *symbolSet) []domain.InstrumentMatch {
	out := make([]domain.InstrumentMatch, 0, maxMatches)

	hasEquity := false
	for _, sym := range exact.order {
		if kindFor(sym) == domain.KindEquity {
			hasEquity = true
			break
		}
	}

	for _, sym := range exact.order {
		if len(out) >= maxMatches {
			break
		}
		if lexicon.BroadMarketETF(sym) && hasEquity {
			continue
		}
		out = append(out, domain.InstrumentMatch{Symbol: sym, Kind: kindFor(sym)})
	}

	for _, sym := range etfs.order {
		if len(out) >= maxMatches {
			break
		}
		if containsSymbol(out, sym) {
			continue
		}
		out = append(out, domain.InstrumentMatch{Symbol: sym, Kind: domain.KindETF})
	}

	return out
}

func kindFor(sym string) domain.MatchKind {
	if lexicon.ETFSymbol(sym) {
		return domain.KindETF
	}
	return domain.KindEquity
}

func containsSymbol(matches []domain.InstrumentMatch, sym string) bool {
	for _, m := range matches {
		if m.Symbol == sym {
			return true
		}
	}
	return false
}

func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'))
	})
}

// distinctWeakHits counts distinct weak keywords present as whole
// words. Matches are reduced to a singular stem so "chip" and "chips"
// in one headline count as a single hit.
func distinctWeakHits(lower string, rx *regexp.Regexp) int {
	if rx == nil {
		return 0
	}
	stems := make(map[string]struct{})
	for _, m := range rx.FindAllString(lower, -1) {
		stems[strings.TrimSuffix(m, "s")] = struct{}{}
	}
	return len(stems)
}
