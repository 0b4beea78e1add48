package rules

import (
	"fmt"

	"github.com/felixgeelhaar/speclint/pkg/domain/check"
	"github.com/felixgeelhaar/speclint/pkg/domain/spec"
)

const (
	structuralPoints  = 40
	missingSectionPts = 10
)

// StructuralRule requires every top-level section to be present.
type StructuralRule struct{}

// ID is the name used in the checks configuration.
func (r *StructuralRule) ID() string {
	return "structural"
}

// MaxPoints is the most this rule can contribute to a score.
func (r *StructuralRule) MaxPoints() int {
	return structuralPoints
}

// Run deducts points for every missing required section.
func (r *StructuralRule) Run(doc *spec.Document) check.Result {
	missing := doc.Missing()
	if len(missing) == 0 {
		return check.Result{
			Points:   structuralPoints,
			Messages: []string{check.LevelOK.Sprintf("Structural completeness OK")},
		}
	}

	var res check.Result
	for _, section := range missing {
		res.Messages = append(res.Messages, check.LevelWarning.Sprintf("Missing section: %s (-%dpts)", section, missingSectionPts))
		res.Hints = append(res.Hints, fmt.Sprintf("%s: %s", section, spec.SectionHint(section)))
	}
	res.Points = max(0, structuralPoints-missingSectionPts*len(missing))
	return res
}
