// Package risk defines risk levels, assessments and the canonical clean result
package risk

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Level is an ordered severity, Low < Medium < High
type Level int

const (
	Low Level = iota
	Medium
	High
)

// Wire labels used in JSON bodies
const (
	LabelLow    = "小"
	LabelMedium = "中"
	LabelHigh   = "重"
)

// Sentinels of the clean result; callers compare against these exactly
const (
	NoIssues   = "特に問題は見つかりませんでした"
	SafeToPost = "このまま投稿しても問題ないでしょう"
)

func (l Level) String() string {
	switch l {
	case Medium:
		return "MEDIUM"
	case High:
		return "HIGH"
	default:
		return "LOW"
	}
}

// Label returns the wire label
func (l Level) Label() string {
	switch l {
	case Medium:
		return LabelMedium
	case High:
		return LabelHigh
	default:
		return LabelLow
	}
}

// Valid reports whether l is one of the three levels
func (l Level) Valid() bool { return l >= Low && l <= High }

// ParseLevel accepts a wire label or LOW/MEDIUM/HIGH in any case
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case LabelLow, "LOW":
		return Low, nil
	case LabelMedium, "MEDIUM":
		return Medium, nil
	case LabelHigh, "HIGH":
		return High, nil
	}
	return Low, fmt.Errorf("risk: unknown level %q", s)
}

// Max returns the higher of a and b
func Max(a, b Level) Level {
	if b > a {
		return b
	}
	return a
}

// MarshalJSON writes the wire label
func (l Level) MarshalJSON() ([]byte, error) { return json.Marshal(l.Label()) }

// UnmarshalJSON reads anything ParseLevel accepts
func (l *Level) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("risk: level must be a string: %w", err)
	}
	v, err := ParseLevel(s)
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// UnmarshalYAML lets rulepack overrides spell levels the same way
func (l *Level) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	v, err := ParseLevel(s)
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// Assessment is the verdict for one piece of content
type Assessment struct {
	RiskLevel   Level    `json:"riskLevel"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

// Clean returns the canonical nothing-found result
func Clean() Assessment {
	return Assessment{RiskLevel: Low, Issues: []string{NoIssues}, Suggestions: []string{SafeToPost}}
}

// IsClean reports whether a is the canonical clean result
func (a Assessment) IsClean() bool {
	return len(a.Issues) == 1 && a.Issues[0] == NoIssues
}

// Findings returns the issues that are real detections, dropping the clean sentinel
func (a Assessment) Findings() []string {
	if a.IsClean() {
		return nil
	}
	return a.Issues
}

// Segment is one timed utterance of a transcript
type Segment struct {
	ID    int     `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// TimeRange is a flagged segment window and its leading issue
type TimeRange struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Issue string  `json:"issue"`
}

// VideoAssessment adds the flagged ranges to the transcript verdict
type VideoAssessment struct {
	Assessment
	TimeRanges []TimeRange `json:"timeRanges"`
}

// Modality names the kind of content assessed
type Modality string

const (
	Text  Modality = "text"
	Image Modality = "image"
	Video Modality = "video"
)
