package newsintel

import (
	"regexp"
	"sort"

	"headline-lens/internal/domain"
	"headline-lens/internal/lexicon"
)

type span struct {
	start  int
	end    int
	symbol string
}

// Highlight re-scans the headline with only the patterns that could
// have produced the already-extracted matches and splits the text into
// plain and linked runs. Concatenating the segment texts always
// reproduces the original headline byte for byte.
func Highlight(text string, matches []domain.InstrumentMatch) []domain.Segment {
	if len(matches) == 0 {
		return []domain.Segment{{Text: text}}
	}

	var spans []span
	for _, m := range matches {
		for _, rx := range patternsFor(m.Symbol) {
			for _, loc := range rx.FindAllStringIndex(text, -1) {
				spans = append(spans, span{start: loc[0], end: loc[1], symbol: m.Symbol})
			}
		}
	}
	if len(spans) == 0 {
		return []domain.Segment{{Text: text}}
	}

	// Sort by start; on ties the longest hit comes first, so the greedy
	// sweep below always keeps the best hit at each position.
	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].end-spans[i].start > spans[j].end-spans[j].start
	})

	// Non-overlapping interval selection: keep a hit only if it starts
	// at or after the end of the last kept hit.
	var segments []domain.Segment
	last := 0
	for _, s := range spans {
		if s.start < last {
			continue
		}
		if s.start > last {
			segments = append(segments, domain.Segment{Text: text[last:s.start]})
		}
		segments = append(segments, domain.Segment{Text: text[s.start:s.end], Symbol: s.symbol})
		last = s.end
	}
	if last < len(text) {
		segments = append(segments, domain.Segment{Text: text[last:]})
	}
	return segments
}

// patternsFor rebuilds the pattern subset that can produce a given
// symbol: its company names, theme phrases, strong inference phrases,
// and the bare or $-prefixed ticker form.
func patternsFor(symbol string) []*regexp.Regexp {
	var patterns []*regexp.Regexp
	if names := lexicon.NamesForSymbol(symbol); len(names) > 0 {
		patterns = append(patterns, lexicon.BuildPhraseRx(names))
	}
	if themes := lexicon.ThemesForSymbol(symbol); len(themes) > 0 {
		patterns = append(patterns, lexicon.BuildPhraseRx(themes))
	}
	if strong := lexicon.StrongPhrasesForSymbol(symbol); len(strong) > 0 {
		patterns = append(patterns, lexicon.BuildPhraseRx(strong))
	}
	patterns = append(patterns, regexp.MustCompile(`\$?\b`+symbol+`\b`))
	return patterns
}
