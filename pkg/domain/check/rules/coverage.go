package rules

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/felixgeelhaar/speclint/pkg/domain/check"
	"github.com/felixgeelhaar/speclint/pkg/domain/spec"
)

const (
	coveragePoints = 15
	uncoveredPts   = 2
)

// CoverageRule requires every declared input and output to be mentioned by a scenario.
// Matching is plain substring containment against the JSON form of the scenarios.
type CoverageRule struct{}

// ID is the name used in the checks configuration.
func (r *CoverageRule) ID() string {
	return "coverage"
}

// MaxPoints is the most this rule can contribute to a score.
func (r *CoverageRule) MaxPoints() int {
	return coveragePoints
}

// Run deducts points for every input or output label no scenario mentions.
func (r *CoverageRule) Run(doc *spec.Document) check.Result {
	scope := doc.Scope()
	text := ScenarioText(doc)

	res := check.Result{Points: coveragePoints}
	uncovered := 0
	for _, in := range scope.In {
		label := Label(in)
		if label == "" || strings.Contains(text, label) {
			continue
		}
		uncovered++
		res.Messages = append(res.Messages, check.LevelWarning.Sprintf("Input '%s' not covered (-%dpts)", label, uncoveredPts))
		res.Hints = append(res.Hints, "Add a scenario using input '"+label+"'.")
	}
	for _, out := range scope.Out {
		label := Label(out)
		if label == "" || strings.Contains(text, label) {
			continue
		}
		uncovered++
		res.Messages = append(res.Messages, check.LevelWarning.Sprintf("Output '%s' not covered (-%dpts)", label, uncoveredPts))
		res.Hints = append(res.Hints, "Add a scenario verifying output '"+label+"'.")
	}

	if uncovered == 0 {
		res.Messages = append(res.Messages, check.LevelOK.Sprintf("Behavior coverage OK"))
	}
	res.Points = max(0, coveragePoints-uncoveredPts*uncovered)
	return res
}

// Label strips the kind prefix (everything up to the first colon) from a scope entry.
func Label(entry string) string {
	if _, after, ok := strings.Cut(entry, ":"); ok {
		entry = after
	}
	return strings.TrimSpace(entry)
}

// ScenarioText flattens the scenarios section into a single JSON string.
// Non-ASCII characters are written as \uXXXX escapes, so a label like
// "Café" only matches scenarios that spell it out escaped.
func ScenarioText(doc *spec.Document) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc.Scenarios()); err != nil {
		return ""
	}
	return asciiEscape(strings.TrimSpace(buf.String()))
}

func asciiEscape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x80 {
			b.WriteRune(r)
			continue
		}
		if r1, r2 := utf16.EncodeRune(r); r1 != '\uFFFD' {
			fmt.Fprintf(&b, "\\u%04x\\u%04x", r1, r2)
			continue
		}
		fmt.Fprintf(&b, "\\u%04x", r)
	}
	return b.String()
}
