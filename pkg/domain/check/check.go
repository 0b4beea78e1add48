package check

import (
	"fmt"

	"github.com/felixgeelhaar/speclint/pkg/domain/spec"
)

// Level is the severity of a report message.
type Level string

// Message levels, rendered as ✔, ⚠ and ❌.
const (
	LevelOK      Level = "ok"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

var glyphs = map[Level]string{
	LevelOK:      "✔",
	LevelWarning: "⚠",
	LevelError:   "❌",
}

// Sprintf formats a report message prefixed with the level's glyph.
func (l Level) Sprintf(format string, args ...any) string {
	return glyphs[l] + " " + fmt.Sprintf(format, args...)
}

// Result is the contribution of one check to a document's score.
type Result struct {
	Points   int      `json:"points"`
	Messages []string `json:"messages"`
	Hints    []string `json:"hints"`
}

// Check is an independent scoring rule evaluated against a specification.
type Check interface {
	ID() string
	MaxPoints() int
	Run(doc *spec.Document) Result
}

// FileResolver reports whether a path relative to the repository root names an existing file.
type FileResolver interface {
	Exists(path string) bool
}

// Outcome pairs a check with the result it produced.
type Outcome struct {
	CheckID   string
	MaxPoints int
	Result
}

// Registry is the ordered set of checks applied to every document.
type Registry struct {
	Checks []Check
}

// Run evaluates every check in order. Each result is floored at zero.
func (r *Registry) Run(doc *spec.Document) []Outcome {
	outcomes := make([]Outcome, 0, len(r.Checks))
	for _, c := range r.Checks {
		res := c.Run(doc)
		if res.Points < 0 {
			res.Points = 0
		}
		outcomes = append(outcomes, Outcome{CheckID: c.ID(), MaxPoints: c.MaxPoints(), Result: res})
	}
	return outcomes
}

// MaxPoints is the best total a document can reach with this registry.
func (r *Registry) MaxPoints() int {
	total := 0
	for _, c := range r.Checks {
		total += c.MaxPoints()
	}
	return total
}
