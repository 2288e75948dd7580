package newsintel

import (
	"strings"
	"testing"

	"headline-lens/internal/domain"
)

func TestClassifySignalsFromMatches(t *testing.T) {
	matches := []domain.InstrumentMatch{
		{Symbol: "NVDA", Kind: domain.KindEquity},
		{Symbol: "SOXX", Kind: domain.KindETF},
	}
	decision := Classify("AI chip boom lifts Nvidia and rivals", matches)
	if !decision.Keep {
		t.Fatal("expected keep=true")
	}
	if !containsSignal(decision.Signals, "ticker:NVDA") || !containsSignal(decision.Signals, "etf:SOXX") {
		t.Fatalf("expected ticker:NVDA and etf:SOXX signals, got %v", decision.Signals)
	}
}

func TestClassifyMacroOnly(t *testing.T) {
	decision := Classify("Fed signals rate cut as inflation cools", nil)
	if !decision.Keep {
		t.Fatal("expected keep=true for macro headline")
	}
	if len(decision.Signals) != 1 || decision.Signals[0] != "macro" {
		t.Fatalf("expected exactly [macro], got %v", decision.Signals)
	}
}

func TestClassifyEquityAndPolicyTerms(t *testing.T) {
	decision := Classify("Stocks slip as new tariffs hit supply chains", nil)
	if !decision.Keep {
		t.Fatal("expected keep=true")
	}
	if !containsSignal(decision.Signals, "equity") || !containsSignal(decision.Signals, "policy") {
		t.Fatalf("expected equity and policy signals, got %v", decision.Signals)
	}
}

func TestClassifyNoSignalAlwaysHides(t *testing.T) {
	decision := Classify("10 tips to save on your next vacation", nil)
	if decision.Keep {
		t.Fatal("suppression content must never be kept")
	}
	if len(decision.Signals) != 0 {
		t.Fatalf("expected no signals, got %v", decision.Signals)
	}
	if !strings.Contains(decision.Reason, "non-market content") {
		t.Fatalf("expected suppression reason, got %q", decision.Reason)
	}
}

func TestClassifyHidesWithoutSuppressionHit(t *testing.T) {
	decision := Classify("Local bakery wins pie contest", nil)
	if decision.Keep {
		t.Fatal("expected keep=false")
	}
	if decision.Reason != "" {
		t.Fatalf("no suppression hit should leave reason empty, got %q", decision.Reason)
	}
}

// Keep must track the signal list and never the suppression table: a
// headline matching both positive and suppression wording stays kept.
func TestClassifySuppressionNeverOverridesSignals(t *testing.T) {
	decision := Classify("Stocks rally: tips to ride the bull market", nil)
	if !decision.Keep {
		t.Fatal("positive signal must win over suppression wording")
	}
	if decision.Reason != "" {
		t.Fatalf("kept headlines carry no suppression reason, got %q", decision.Reason)
	}
}

func TestClassifyEmptyInput(t *testing.T) {
	decision := Classify("", nil)
	if decision.Keep || len(decision.Signals) != 0 {
		t.Fatalf("empty input must yield keep=false with no signals, got %+v", decision)
	}
}

func containsSignal(signals []string, want string) bool {
	for _, s := range signals {
		if s == want {
			return true
		}
	}
	return false
}
