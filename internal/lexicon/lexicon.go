// Package lexicon holds the static instrument tables the extraction
// pipeline matches against. Everything here is built once at package
// init and is read-only afterwards.
package lexicon

import (
	"regexp"
	"sort"
	"strings"
)

// tickerSyntaxRx is the shape of a plausible US ticker: 1-5 uppercase letters.
var tickerSyntaxRx = regexp.MustCompile(`^[A-Z]{1,5}$`)

// tickerBlacklist lists common English words and finance jargon that
// collide with valid ticker syntax. Tokens from loosely-validated
// sources (related-symbols field, bare parentheses) are rejected when
// they appear here.
var tickerBlacklist = map[string]struct{}{
	"A": {}, "I": {}, "AM": {}, "AN": {}, "AND": {}, "ARE": {}, "AS": {}, "AT": {},
	"BE": {}, "BIG": {}, "BUY": {}, "BY": {}, "CAN": {}, "CEO": {}, "CFO": {}, "CTO": {},
	"DO": {}, "EPS": {}, "ETF": {}, "EU": {}, "EV": {}, "FED": {}, "FOR": {}, "GDP": {},
	"GO": {}, "HAS": {}, "HOW": {}, "IPO": {}, "IS": {}, "IT": {}, "LOW": {}, "NEW": {},
	"NOW": {}, "OF": {}, "OFF": {}, "ON": {}, "ONE": {}, "OR": {}, "OUT": {}, "OWN": {},
	"PPI": {}, "CPI": {}, "SAY": {}, "SEC": {}, "SEE": {}, "SET": {}, "SO": {}, "THE": {},
	"TO": {}, "TOP": {}, "UP": {}, "US": {}, "USA": {}, "VS": {}, "WHO": {}, "WHY": {},
	"AI": {}, "ALL": {}, "ANY": {}, "ARK": {}, "CUT": {}, "DAY": {}, "END": {}, "GAIN": {},
	"HIT": {}, "JOBS": {}, "MAY": {}, "NEXT": {}, "OPEC": {}, "OVER": {}, "PLAY": {},
	"REAL": {}, "RISE": {}, "SAVE": {}, "TECH": {}, "WELL": {}, "YOU": {},
}

// knownTickers is the whitelist that lets bare uppercase words in a
// headline count as symbols. Intentionally conservative: only
// widely-reported names, so tokens like "A" or "GO" never match.
var knownTickers = map[string]struct{}{
	"AAPL": {}, "MSFT": {}, "GOOGL": {}, "GOOG": {}, "AMZN": {}, "NVDA": {}, "META": {},
	"TSLA": {}, "AMD": {}, "INTC": {}, "NFLX": {}, "DIS": {}, "BA": {}, "JPM": {},
	"BAC": {}, "GS": {}, "MS": {}, "WFC": {}, "C": {}, "V": {}, "MA": {}, "AXP": {},
	"PYPL": {}, "KO": {}, "PEP": {}, "MCD": {}, "SBUX": {}, "WMT": {}, "TGT": {},
	"COST": {}, "NKE": {}, "XOM": {}, "CVX": {}, "OXY": {}, "PFE": {}, "JNJ": {},
	"MRNA": {}, "UNH": {}, "LLY": {}, "T": {}, "VZ": {}, "TMUS": {}, "F": {}, "GM": {},
	"RIVN": {}, "LCID": {}, "UBER": {}, "LYFT": {}, "ABNB": {}, "COIN": {}, "HOOD": {},
	"PLTR": {}, "SNOW": {}, "CRM": {}, "ORCL": {}, "IBM": {}, "QCOM": {}, "AVGO": {},
	"MU": {}, "TSM": {}, "ASML": {}, "BABA": {}, "NIO": {}, "JD": {}, "SHOP": {},
	"SQ": {}, "SPOT": {}, "ROKU": {}, "ZM": {}, "CRWD": {}, "PANW": {}, "NET": {},
	"DDOG": {}, "GE": {}, "CAT": {}, "DE": {}, "MMM": {}, "HON": {}, "UPS": {},
	"FDX": {}, "DAL": {}, "UAL": {}, "AAL": {}, "LUV": {}, "MAR": {}, "HLT": {},
	"SPY": {}, "QQQ": {}, "DIA": {}, "IWM": {}, "VTI": {}, "VOO": {}, "GLD": {},
	"SLV": {}, "USO": {}, "TLT": {}, "GDX": {}, "SOXX": {}, "SMH": {}, "XLE": {},
	"XLF": {}, "XBI": {}, "XRT": {}, "XHB": {}, "XLU": {}, "KRE": {}, "TAN": {},
	"ICLN": {}, "HACK": {}, "JETS": {}, "URA": {}, "LIT": {}, "UNG": {}, "IBIT": {},
	"BOTZ": {},
}

// broadMarketETFs are index-tracking funds that dilute a
// specific-company headline; result assembly skips them once an equity
// has been emitted.
var broadMarketETFs = map[string]struct{}{
	"SPY": {}, "QQQ": {}, "DIA": {}, "IWM": {}, "VTI": {}, "VOO": {},
}

// companyTicker maps lowercase company names and common aliases to
// their primary listing. Multi-word names matter: the alternation is
// built longest-first so "bank of america" wins before any shorter
// contained name could match.
var companyTicker = map[string]string{
	"apple":                  "AAPL",
	"microsoft":              "MSFT",
	"alphabet":               "GOOGL",
	"google":                 "GOOGL",
	"amazon":                 "AMZN",
	"nvidia":                 "NVDA",
	"meta platforms":         "META",
	"facebook":               "META",
	"instagram":              "META",
	"tesla":                  "TSLA",
	"advanced micro devices": "AMD",
	"intel":                  "INTC",
	"netflix":                "NFLX",
	"disney":                 "DIS",
	"walt disney":            "DIS",
	"boeing":                 "BA",
	"jpmorgan":               "JPM",
	"jp morgan":              "JPM",
	"jpmorgan chase":         "JPM",
	"bank of america":        "BAC",
	"goldman sachs":          "GS",
	"morgan stanley":         "MS",
	"wells fargo":            "WFC",
	"citigroup":              "C",
	"american express":       "AXP",
	"visa":                   "V",
	"mastercard":             "MA",
	"paypal":                 "PYPL",
	"coca-cola":              "KO",
	"coca cola":              "KO",
	"pepsico":                "PEP",
	"pepsi":                  "PEP",
	"mcdonald's":             "MCD",
	"mcdonalds":              "MCD",
	"starbucks":              "SBUX",
	"walmart":                "WMT",
	"target":                 "TGT",
	"costco":                 "COST",
	"nike":                   "NKE",
	"exxon mobil":            "XOM",
	"exxon":                  "XOM",
	"chevron":                "CVX",
	"occidental petroleum":   "OXY",
	"pfizer":                 "PFE",
	"johnson & johnson":      "JNJ",
	"moderna":                "MRNA",
	"unitedhealth":           "UNH",
	"eli lilly":              "LLY",
	"verizon":                "VZ",
	"t-mobile":               "TMUS",
	"ford":                   "F",
	"general motors":         "GM",
	"rivian":                 "RIVN",
	"lucid motors":           "LCID",
	"uber":                   "UBER",
	"lyft":                   "LYFT",
	"airbnb":                 "ABNB",
	"coinbase":               "COIN",
	"robinhood":              "HOOD",
	"palantir":               "PLTR",
	"snowflake":              "SNOW",
	"salesforce":             "CRM",
	"oracle":                 "ORCL",
	"qualcomm":               "QCOM",
	"broadcom":               "AVGO",
	"micron":                 "MU",
	"taiwan semiconductor":   "TSM",
	"tsmc":                   "TSM",
	"alibaba":                "BABA",
	"shopify":                "SHOP",
	"spotify":                "SPOT",
	"crowdstrike":            "CRWD",
	"palo alto networks":     "PANW",
	"datadog":                "DDOG",
	"general electric":       "GE",
	"caterpillar":            "CAT",
	"john deere":             "DE",
	"fedex":                  "FDX",
	"delta air lines":        "DAL",
	"united airlines":        "UAL",
	"american airlines":      "AAL",
	"southwest airlines":     "LUV",
	"marriott":               "MAR",
	"hilton":                 "HLT",
}

// themeETF maps lowercase sector/commodity/theme phrases to the ETF
// used as their proxy symbol.
var themeETF = map[string]string{
	"gold miner":       "GDX",
	"gold miners":      "GDX",
	"gold price":       "GLD",
	"gold prices":      "GLD",
	"bullion":          "GLD",
	"silver price":     "SLV",
	"silver prices":    "SLV",
	"crude oil":        "USO",
	"oil price":        "USO",
	"oil prices":       "USO",
	"natural gas":      "UNG",
	"semiconductor":    "SOXX",
	"semiconductors":   "SOXX",
	"chipmaker":        "SOXX",
	"chipmakers":       "SOXX",
	"chip stocks":      "SOXX",
	"bank stocks":      "XLF",
	"big banks":        "XLF",
	"regional bank":    "KRE",
	"regional banks":   "KRE",
	"biotech":          "XBI",
	"solar":            "TAN",
	"clean energy":     "ICLN",
	"renewable energy": "ICLN",
	"cybersecurity":    "HACK",
	"homebuilder":      "XHB",
	"homebuilders":     "XHB",
	"retail sector":    "XRT",
	"retailers":        "XRT",
	"airline stocks":   "JETS",
	"airlines":         "JETS",
	"utilities":        "XLU",
	"energy sector":    "XLE",
	"oil and gas":      "XLE",
	"treasury bonds":   "TLT",
	"long-term bonds":  "TLT",
	"uranium":          "URA",
	"lithium":          "LIT",
	"bitcoin":          "IBIT",
	"crypto market":    "IBIT",
	"robotics":         "BOTZ",
}

// ThemeRule infers a proxy ETF from clustered topical wording when no
// explicit name or symbol matched. One strong-phrase hit is enough; a
// rule without a strong hit needs at least two distinct weak keywords.
type ThemeRule struct {
	Symbol string
	Strong []string
	Weak   []string

	StrongRx *regexp.Regexp
	WeakRx   *regexp.Regexp
}

// ThemeRules is evaluated in order; the first rule that fires wins and
// contributes at most one ETF.
var ThemeRules = buildThemeRules([]ThemeRule{
	{
		Symbol: "SOXX",
		Strong: []string{"ai chip boom", "chip shortage", "semiconductor cycle", "foundry capacity"},
		Weak:   []string{"chip", "chips", "semiconductor", "foundry", "wafer", "gpu", "gpus"},
	},
	{
		Symbol: "XLE",
		Strong: []string{"opec production cut", "opec output cut", "oil supply shock"},
		Weak:   []string{"oil", "crude", "opec", "barrel", "drilling", "rig"},
	},
	{
		Symbol: "GLD",
		Strong: []string{"flight to safety", "safe haven demand"},
		Weak:   []string{"gold", "bullion", "safe haven", "haven demand"},
	},
	{
		Symbol: "XLF",
		Strong: []string{"bank earnings season", "loan loss provisions"},
		Weak:   []string{"bank", "banks", "lending", "deposits", "loan"},
	},
	{
		Symbol: "TLT",
		Strong: []string{"bond market rout", "yield curve inversion"},
		Weak:   []string{"treasury", "treasuries", "yield", "yields", "bond", "bonds", "duration"},
	},
	{
		Symbol: "JETS",
		Strong: []string{"summer travel boom", "air travel demand"},
		Weak:   []string{"airline", "airlines", "bookings", "passenger", "travel demand"},
	},
	{
		Symbol: "IBIT",
		Strong: []string{"bitcoin halving", "spot bitcoin etf"},
		Weak:   []string{"bitcoin", "btc", "crypto", "blockchain", "stablecoin"},
	},
})

var (
	// CompanyNameRx matches any known company name or alias, longest
	// name first, with an optional trailing possessive.
	CompanyNameRx *regexp.Regexp

	// ThemePhraseRx matches any known theme/sector phrase.
	ThemePhraseRx *regexp.Regexp

	etfSymbols     map[string]struct{}
	namesBySymbol  map[string][]string
	themesBySymbol map[string][]string
	strongBySymbol map[string][]string
)

func init() {
	CompanyNameRx = BuildPhraseRx(mapKeys(companyTicker))
	ThemePhraseRx = BuildPhraseRx(mapKeys(themeETF))

	etfSymbols = make(map[string]struct{})
	for sym := range broadMarketETFs {
		etfSymbols[sym] = struct{}{}
	}
	for _, sym := range themeETF {
		etfSymbols[sym] = struct{}{}
	}
	for _, rule := range ThemeRules {
		etfSymbols[rule.Symbol] = struct{}{}
	}

	namesBySymbol = invert(companyTicker)
	themesBySymbol = invert(themeETF)
	strongBySymbol = make(map[string][]string, len(ThemeRules))
	for _, rule := range ThemeRules {
		strongBySymbol[rule.Symbol] = append(strongBySymbol[rule.Symbol], rule.Strong...)
	}
}

// BuildPhraseRx compiles a case-insensitive, word-boundary-delimited
// alternation over the given phrases. The longest-first sort is
// load-bearing: it guarantees "bank of america" matches before a
// shorter contained phrase ever could.
func BuildPhraseRx(phrases []string) *regexp.Regexp {
	sorted := append([]string(nil), phrases...)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})
	quoted := make([]string, len(sorted))
	for i, p := range sorted {
		quoted[i] = regexp.QuoteMeta(p)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)(?:['’]s)?\b`)
}

func buildThemeRules(rules []ThemeRule) []ThemeRule {
	out := make([]ThemeRule, len(rules))
	for i, rule := range rules {
		if len(rule.Strong) > 0 {
			rule.StrongRx = BuildPhraseRx(rule.Strong)
		}
		if len(rule.Weak) > 0 {
			rule.WeakRx = BuildPhraseRx(rule.Weak)
		}
		out[i] = rule
	}
	return out
}

// ValidTickerSyntax reports whether tok looks like a ticker: 1-5
// uppercase letters.
func ValidTickerSyntax(tok string) bool {
	return tickerSyntaxRx.MatchString(tok)
}

// Blacklisted reports whether an uppercase token is a common word that
// merely collides with ticker syntax.
func Blacklisted(tok string) bool {
	_, ok := tickerBlacklist[tok]
	return ok
}

// KnownTicker reports whether sym is in the well-known symbol whitelist.
func KnownTicker(sym string) bool {
	_, ok := knownTickers[sym]
	return ok
}

// BroadMarketETF reports whether sym tracks a broad index (SPY, QQQ, ...).
func BroadMarketETF(sym string) bool {
	_, ok := broadMarketETFs[sym]
	return ok
}

// ETFSymbol reports whether sym is any ETF known to the lexicon.
func ETFSymbol(sym string) bool {
	_, ok := etfSymbols[sym]
	return ok
}

// TickerForName resolves matched company-name text to its symbol.
func TickerForName(matched string) (string, bool) {
	sym, ok := companyTicker[NormalizePhrase(matched)]
	return sym, ok
}

// ETFForTheme resolves matched theme-phrase text to its proxy ETF.
func ETFForTheme(matched string) (string, bool) {
	sym, ok := themeETF[NormalizePhrase(matched)]
	return sym, ok
}

// NamesForSymbol returns the company names/aliases that map to sym.
func NamesForSymbol(sym string) []string {
	return namesBySymbol[sym]
}

// ThemesForSymbol returns the theme phrases that map to sym.
func ThemesForSymbol(sym string) []string {
	return themesBySymbol[sym]
}

// StrongPhrasesForSymbol returns the strong inference phrases for sym.
func StrongPhrasesForSymbol(sym string) []string {
	return strongBySymbol[sym]
}

// NormalizePhrase lowercases matched text and strips a trailing
// possessive so it can key the lookup maps.
func NormalizePhrase(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, "'s")
	s = strings.TrimSuffix(s, "’s")
	return s
}

func mapKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func invert(m map[string]string) map[string][]string {
	out := make(map[string][]string)
	for k, v := range m {
		out[v] = append(out[v], k)
	}
	for _, names := range out {
		sort.Strings(names)
	}
	return out
}
