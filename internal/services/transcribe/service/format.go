package service

import (
	"fmt"
	"math"
	"strings"

	"postguard/internal/services/transcribe/domain"
)

// FormatTimestamp renders seconds as HH:MM:SS.mmm, truncating sub-millisecond digits
func FormatTimestamp(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	whole := math.Floor(seconds)
	ms := int(math.Floor((seconds - whole) * 1000))
	s := int64(whole)
	return fmt.Sprintf("%02d:%02d:%02d.%03d", s/3600, (s%3600)/60, s%60, ms)
}

// Format renders one "[start --> end] text" line per segment, or the plain text without segments
func Format(r domain.Result) string {
	if len(r.Segments) == 0 {
		return r.Text
	}
	lines := make([]string, len(r.Segments))
	for i, sg := range r.Segments {
		lines[i] = fmt.Sprintf("[%s --> %s] %s", FormatTimestamp(sg.Start), FormatTimestamp(sg.End), sg.Text)
	}
	return strings.Join(lines, "\n")
}

// ExtractByTimeRange joins the texts of the segments overlapping [from, to]
func ExtractByTimeRange(r domain.Result, from, to float64) string {
	var parts []string
	for _, sg := range r.Segments {
		if sg.End >= from && sg.Start <= to {
			parts = append(parts, sg.Text)
		}
	}
	return strings.Join(parts, " ")
}
