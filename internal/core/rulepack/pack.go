// Package rulepack loads the phrase table and the canned texts the assessors use.
// The defaults are embedded; an optional YAML or JSON file can override parts of them
package rulepack

import (
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"postguard/internal/core/risk"

	"gopkg.in/yaml.v3"
)

//go:embed rules.json
var embedded []byte

// Phrase is one lexical table entry
type Phrase struct {
	Text  string     `json:"text" yaml:"text"`
	Level risk.Level `json:"severity" yaml:"severity"`
}

// Amplifier is the two-marker escalation rule
type Amplifier struct {
	ContextMarker string     `json:"context_marker" yaml:"context_marker"`
	TextMarker    string     `json:"text_marker" yaml:"text_marker"`
	Issue         string     `json:"issue" yaml:"issue"`
	Floor         risk.Level `json:"floor" yaml:"floor"`
}

// ImageRule fires when payload length mod 10 is at least MinMod
type ImageRule struct {
	MinMod int        `json:"min_mod" yaml:"min_mod"`
	Level  risk.Level `json:"severity" yaml:"severity"`
	Issue  string     `json:"issue" yaml:"issue"`
}

// Category maps issues containing any keyword to one suggestion
type Category struct {
	Name       string   `json:"name" yaml:"name"`
	Keywords   []string `json:"keywords" yaml:"keywords"`
	Suggestion string   `json:"suggestion" yaml:"suggestion"`
}

type rawPack struct {
	Version       string            `json:"version" yaml:"version"`
	IssueTemplate string            `json:"issue_template" yaml:"issue_template"`
	Phrases       []Phrase          `json:"phrases" yaml:"phrases"`
	Amplifier     Amplifier         `json:"amplifier" yaml:"amplifier"`
	Image         []ImageRule       `json:"image" yaml:"image"`
	Categories    []Category        `json:"categories" yaml:"categories"`
	Banners       map[string]string `json:"banners" yaml:"banners"`
	Fallback      string            `json:"fallback" yaml:"fallback"`
}

// Pack is a validated rule set
type Pack struct {
	Version       string
	IssueTemplate string
	Phrases       []Phrase
	Amplifier     Amplifier
	Image         []ImageRule
	Categories    []Category
	Banners       map[risk.Level]string
	Fallback      string

	// Source is "embedded" or the override path
	Source   string
	Checksum string
}

// Load returns the embedded pack
func Load() (*Pack, error) {
	var rp rawPack
	if err := json.Unmarshal(embedded, &rp); err != nil {
		return nil, fmt.Errorf("rulepack: parse rules.json: %w", err)
	}
	return compile(rp, "embedded", embedded)
}

// MustLoad is Load for package init and tests
func MustLoad() *Pack {
	p, err := Load()
	if err != nil {
		panic(err)
	}
	return p
}

// LoadFile overlays the file at path on the embedded defaults.
// Fields present in the file replace the defaults, lists as a whole; banners merge per level.
// .yaml and .yml are read as YAML, anything else as JSON. An empty path returns Load()
func LoadFile(path string) (*Pack, error) {
	if path == "" {
		return Load()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rulepack: read override: %w", err)
	}
	return Overlay(b, filepath.Ext(path), path)
}

// Overlay applies override bytes in the given format (".yaml", ".yml" or ".json") on the defaults
func Overlay(override []byte, ext, source string) (*Pack, error) {
	var rp rawPack
	if err := json.Unmarshal(embedded, &rp); err != nil {
		return nil, fmt.Errorf("rulepack: parse rules.json: %w", err)
	}
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(override, &rp); err != nil {
			return nil, fmt.Errorf("rulepack: parse override %s: %w", source, err)
		}
	default:
		if err := json.Unmarshal(override, &rp); err != nil {
			return nil, fmt.Errorf("rulepack: parse override %s: %w", source, err)
		}
	}
	return compile(rp, source, append(append([]byte{}, embedded...), override...))
}

func compile(rp rawPack, source string, raw []byte) (*Pack, error) {
	p := &Pack{
		Version:       rp.Version,
		IssueTemplate: rp.IssueTemplate,
		Phrases:       rp.Phrases,
		Amplifier:     rp.Amplifier,
		Image:         rp.Image,
		Categories:    rp.Categories,
		Banners:       map[risk.Level]string{},
		Fallback:      rp.Fallback,
		Source:        source,
	}
	for k, v := range rp.Banners {
		lvl, err := risk.ParseLevel(k)
		if err != nil {
			return nil, fmt.Errorf("rulepack: banner key: %w", err)
		}
		p.Banners[lvl] = v
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	sum := sha256.Sum256(raw)
	p.Checksum = hex.EncodeToString(sum[:8])
	return p, nil
}

func (p *Pack) validate() error {
	var errs []error
	if strings.Count(p.IssueTemplate, "%s") != 1 {
		errs = append(errs, errors.New("issue_template must contain exactly one %s"))
	}
	if len(p.Phrases) == 0 {
		errs = append(errs, errors.New("phrases is empty"))
	}
	for i, ph := range p.Phrases {
		if ph.Text == "" {
			errs = append(errs, fmt.Errorf("phrases[%d]: empty text", i))
		}
		if !ph.Level.Valid() {
			errs = append(errs, fmt.Errorf("phrases[%d]: bad severity", i))
		}
	}
	a := p.Amplifier
	if a != (Amplifier{}) && (a.ContextMarker == "" || a.TextMarker == "" || a.Issue == "") {
		errs = append(errs, errors.New("amplifier needs context_marker, text_marker and issue"))
	}
	prev := 10
	for i, r := range p.Image {
		if r.MinMod < 0 || r.MinMod > 9 {
			errs = append(errs, fmt.Errorf("image[%d]: min_mod %d outside 0..9", i, r.MinMod))
		}
		if r.MinMod >= prev {
			errs = append(errs, fmt.Errorf("image[%d]: min_mod must be strictly descending", i))
		}
		if r.Issue == "" {
			errs = append(errs, fmt.Errorf("image[%d]: empty issue", i))
		}
		prev = r.MinMod
	}
	for i, c := range p.Categories {
		if len(c.Keywords) == 0 || c.Suggestion == "" {
			errs = append(errs, fmt.Errorf("categories[%d] %q: needs keywords and suggestion", i, c.Name))
		}
	}
	if p.Banners[risk.High] == "" || p.Banners[risk.Medium] == "" {
		errs = append(errs, errors.New("banners need HIGH and MEDIUM"))
	}
	if p.Fallback == "" {
		errs = append(errs, errors.New("fallback is empty"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("rulepack: invalid %s: %w", p.Source, err)
	}
	return nil
}

// Issue renders the issue text for a matched phrase
func (p *Pack) Issue(phrase string) string { return fmt.Sprintf(p.IssueTemplate, phrase) }

// ImageRuleFor returns the first rule whose MinMod is at most mod
func (p *Pack) ImageRuleFor(mod int) (ImageRule, bool) {
	for _, r := range p.Image {
		if mod >= r.MinMod {
			return r, true
		}
	}
	return ImageRule{}, false
}

// Summary is the public description served by /meta/rulepack
type Summary struct {
	Version    string         `json:"version"`
	Source     string         `json:"source"`
	Checksum   string         `json:"checksum"`
	Phrases    int            `json:"phrases"`
	BySeverity map[string]int `json:"bySeverity"`
	Categories []string       `json:"categories"`
	ImageRules int            `json:"imageRules"`
	Amplifier  bool           `json:"amplifier"`
}

// Summary describes p without the phrase texts
func (p *Pack) Summary() Summary {
	s := Summary{
		Version:    p.Version,
		Source:     p.Source,
		Checksum:   p.Checksum,
		Phrases:    len(p.Phrases),
		BySeverity: map[string]int{},
		ImageRules: len(p.Image),
		Amplifier:  p.Amplifier.ContextMarker != "",
	}
	for _, ph := range p.Phrases {
		s.BySeverity[ph.Level.String()]++
	}
	for _, c := range p.Categories {
		s.Categories = append(s.Categories, c.Name)
	}
	return s
}
