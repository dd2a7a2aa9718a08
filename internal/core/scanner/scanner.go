// Package scanner finds rulepack phrases in text and reduces them to one severity
package scanner

import (
	"postguard/internal/core/risk"
	"postguard/internal/core/rulepack"
)

// Match is one phrase table entry present in the text
type Match struct {
	Phrase string
	Level  risk.Level
	Issue  string
}

// Scanner is safe for concurrent use once built
type Scanner struct {
	ac      *automaton
	phrases []rulepack.Phrase
	issue   func(string) string
}

// New compiles the phrase table of p
func New(p *rulepack.Pack) *Scanner {
	ac := newAutomaton()
	for i, ph := range p.Phrases {
		ac.add(ph.Text, i)
	}
	ac.build()
	return &Scanner{ac: ac, phrases: p.Phrases, issue: p.Issue}
}

// Scan returns one match per table entry contained in text, in table order,
// and the highest level among them (Low when nothing matched)
func (s *Scanner) Scan(text string) ([]Match, risk.Level) {
	if text == "" {
		return nil, risk.Low
	}
	hit := make([]bool, len(s.phrases))
	s.ac.each(text, func(id int) { hit[id] = true })

	var out []Match
	level := risk.Low
	for i, ok := range hit {
		if !ok {
			continue
		}
		ph := s.phrases[i]
		out = append(out, Match{Phrase: ph.Text, Level: ph.Level, Issue: s.issue(ph.Text)})
		level = risk.Max(level, ph.Level)
	}
	return out, level
}
