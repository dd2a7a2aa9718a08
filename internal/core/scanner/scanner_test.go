package scanner

import (
	"strings"
	"testing"

	"postguard/internal/core/risk"
	"postguard/internal/core/rulepack"
)

func newScanner(t *testing.T) *Scanner {
	t.Helper()
	return New(rulepack.MustLoad())
}

func phrases(ms []Match) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.Phrase
	}
	return out
}

func TestScan_TableOrderNotTextOrder(t *testing.T) {
	s := newScanner(t)
	ms, lvl := s.Scan("最悪だ、バカかよ、クソ")
	got := strings.Join(phrases(ms), ",")
	if got != "バカ,クソ,最悪" {
		t.Fatalf("order = %s", got)
	}
	if lvl != risk.High {
		t.Fatalf("level = %v", lvl)
	}
	if ms[0].Issue != "「バカ」という表現が含まれています" {
		t.Fatalf("issue = %q", ms[0].Issue)
	}
}

func TestScan_OneMatchPerEntry(t *testing.T) {
	ms, lvl := newScanner(t).Scan("バカバカバカ")
	if len(ms) != 1 || lvl != risk.Medium {
		t.Fatalf("matches = %v level = %v", phrases(ms), lvl)
	}
}

func TestScan_SeverityReduction(t *testing.T) {
	cases := []struct {
		text string
		want risk.Level
	}{
		{"", risk.Low},
		{"今日はいい天気", risk.Low},
		{"最悪", risk.Low},
		{"最悪で嫌い、勘違い", risk.Low},
		{"うざい", risk.Medium},
		{"最悪、うざい", risk.Medium},
		{"死ね", risk.High},
		{"死ね、最悪、バカ、アホ", risk.High},
		{"バカ、死ね", risk.High},
	}
	s := newScanner(t)
	for _, c := range cases {
		if _, got := s.Scan(c.text); got != c.want {
			t.Fatalf("Scan(%q) level = %v want %v", c.text, got, c.want)
		}
	}
}

func TestScan_CaseAndWidthSensitive(t *testing.T) {
	// half-width katakana is a different byte sequence
	if ms, _ := newScanner(t).Scan("ﾊﾞｶ"); len(ms) != 0 {
		t.Fatalf("half-width should not match: %v", phrases(ms))
	}
}

func TestScan_OverlappingPatterns(t *testing.T) {
	p := rulepack.MustLoad()
	p.Phrases = []rulepack.Phrase{
		{Text: "he", Level: risk.Low},
		{Text: "she", Level: risk.Medium},
		{Text: "hers", Level: risk.High},
		{Text: "His", Level: risk.High},
	}
	ms, lvl := New(p).Scan("ushers his")
	if got := strings.Join(phrases(ms), ","); got != "he,she,hers" {
		t.Fatalf("matches = %s", got)
	}
	if lvl != risk.High {
		t.Fatalf("level = %v", lvl)
	}
}
