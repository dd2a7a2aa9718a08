// Package suggest turns issues and a final level into remediation advice
package suggest

import (
	"strings"

	"postguard/internal/core/risk"
	"postguard/internal/core/rulepack"
)

// Generator is immutable and safe for concurrent use
type Generator struct {
	categories []rulepack.Category
	banners    map[risk.Level]string
	fallback   string
}

// New returns a generator over the categories, banners and fallback of p
func New(p *rulepack.Pack) *Generator {
	return &Generator{categories: p.Categories, banners: p.Banners, fallback: p.Fallback}
}

// Suggest returns, in order: one suggestion per issue that matches a category
// (first matching category wins), the banner for High or Medium, and the fallback
// only when nothing else was produced. The result is never empty
func (g *Generator) Suggest(issues []string, level risk.Level) []string {
	out := make([]string, 0, len(issues)+1)
	for _, issue := range issues {
		if c, ok := g.categorize(issue); ok {
			out = append(out, c.Suggestion)
		}
	}
	if level == risk.High || level == risk.Medium {
		if b := g.banners[level]; b != "" {
			out = append(out, b)
		}
	}
	if len(out) == 0 {
		out = append(out, g.fallback)
	}
	return out
}

// Category returns the name of the first category issue falls in, or ""
func (g *Generator) Category(issue string) string {
	c, _ := g.categorize(issue)
	return c.Name
}

func (g *Generator) categorize(issue string) (rulepack.Category, bool) {
	for _, c := range g.categories {
		for _, kw := range c.Keywords {
			if strings.Contains(issue, kw) {
				return c, true
			}
		}
	}
	return rulepack.Category{}, false
}
