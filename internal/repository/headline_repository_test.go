package repository

import "testing"

func TestNormalizeRelated(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"  ", ""},
		{"aapl, msft ,", "AAPL,MSFT"},
		{"TSLA", "TSLA"},
		{",,NVDA,", "NVDA"},
	}
	for _, tc := range cases {
		if got := normalizeRelated(tc.in); got != tc.want {
			t.Errorf("normalizeRelated(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
